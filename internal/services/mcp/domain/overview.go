package domain

import "github.com/immotools/propstack-mcp/internal/propstack"

// OverviewStatus is the reduced status sub-object on an overview entry.
type OverviewStatus struct {
	ID   any `json:"id"`
	Name any `json:"name"`
}

// OverviewEntry is the curated field subset returned by searches and listing
// resources. Field values stay loosely typed: the upstream delivers some of
// them as bare scalars and some as {label, value} wrappers depending on the
// expansion level, and unwrapValue resolves both to the scalar.
type OverviewEntry struct {
	ID          any             `json:"id"`
	UnitID      any             `json:"unit_id"`
	Name        any             `json:"name"`
	Title       any             `json:"title"`
	City        any             `json:"city"`
	Street      any             `json:"street"`
	HouseNumber any             `json:"house_number"`
	Status      *OverviewStatus `json:"status"`
	Price       any             `json:"price"`
	LivingSpace any             `json:"living_space"`
	Rooms       any             `json:"rooms"`
}

// overviewFromUnit extracts the overview subset from a raw record. The status
// sub-object lives under "status" in summary responses and "property_status"
// in detail responses.
func overviewFromUnit(unit propstack.Unit) OverviewEntry {
	entry := OverviewEntry{
		ID:          unwrapValue(unit["id"]),
		UnitID:      unwrapValue(unit["unit_id"]),
		Name:        unwrapValue(unit["name"]),
		Title:       unwrapValue(unit["title"]),
		City:        unwrapValue(unit["city"]),
		Street:      unwrapValue(unit["street"]),
		HouseNumber: unwrapValue(unit["house_number"]),
		Price:       unwrapValue(unit["price"]),
		LivingSpace: unwrapValue(unit["living_space"]),
		Rooms:       unwrapValue(unit["rooms"]),
	}

	statusValue := unit["status"]
	if statusValue == nil {
		statusValue = unit["property_status"]
	}
	if status, ok := statusValue.(map[string]any); ok {
		entry.Status = &OverviewStatus{
			ID:   unwrapValue(status["id"]),
			Name: unwrapValue(status["name"]),
		}
	}
	return entry
}

// unwrapValue resolves a field that may arrive either as a bare scalar or as
// a {label, value} wrapper, returning the scalar or nil.
func unwrapValue(v any) any {
	if wrapper, ok := v.(map[string]any); ok {
		if value, ok := wrapper["value"]; ok {
			return value
		}
		return nil
	}
	return v
}

// overviewEntries maps raw units to overview entries in order.
func overviewEntries(units []propstack.Unit) []OverviewEntry {
	entries := make([]OverviewEntry, 0, len(units))
	for _, unit := range units {
		entries = append(entries, overviewFromUnit(unit))
	}
	return entries
}
