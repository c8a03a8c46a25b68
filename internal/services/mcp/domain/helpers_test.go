package domain

import (
	"context"

	"github.com/immotools/propstack-mcp/internal/propstack"
)

// fakePropertyService records calls and returns canned responses.
type fakePropertyService struct {
	searchResult propstack.SearchResult
	searchErr    error
	searchCalls  []propstack.SearchParams

	unit      propstack.Unit
	unitErr   error
	gotUnitID string

	statuses    []propstack.Status
	statusesErr error
}

func (f *fakePropertyService) Search(_ context.Context, params propstack.SearchParams) (propstack.SearchResult, error) {
	f.searchCalls = append(f.searchCalls, params)
	if f.searchErr != nil {
		return propstack.SearchResult{}, f.searchErr
	}
	return f.searchResult, nil
}

func (f *fakePropertyService) UnitByID(_ context.Context, unitID string) (propstack.Unit, error) {
	f.gotUnitID = unitID
	if f.unitErr != nil {
		return nil, f.unitErr
	}
	return f.unit, nil
}

func (f *fakePropertyService) ListStatuses(_ context.Context) ([]propstack.Status, error) {
	if f.statusesErr != nil {
		return nil, f.statusesErr
	}
	return f.statuses, nil
}

// testUnit builds a raw record with coordinates, broker contact data, and
// media attached.
func testUnit(id float64, unitID string) propstack.Unit {
	return propstack.Unit{
		"id":                 id,
		"unit_id":            unitID,
		"name":               "Wohnung " + unitID,
		"title":              "Helle 3-Zimmer-Wohnung",
		"city":               "Berlin",
		"street":             "Hauptstraße",
		"house_number":       "12",
		"price":              float64(450000),
		"living_space":       float64(92.5),
		"rooms":              float64(3),
		"lat":                52.5200661,
		"lng":                13.4049539,
		"status":             map[string]any{"id": float64(133880), "name": "Vermarktung"},
		"broker":             map[string]any{"name": "Max Makler", "email": "max@example.com"},
		"openimmo_firstname": "Max",
		"openimmo_lastname":  "Makler",
		"openimmo_email":     "max@example.com",
		"openimmo_phone":     "+49 30 1234567",
		"images":             []any{map[string]any{"url": "https://cdn.example.com/1.jpg"}},
		"documents":          []any{},
		"videos":             []any{},
		"360_views":          []any{},
	}
}
