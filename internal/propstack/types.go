package propstack

// Unit is a single property record. Summary responses carry ~30 fields and
// expanded ones ~275, most of which this adapter never touches, so records
// stay generic maps and the few fields the MCP layer shapes are read by key.
type Unit map[string]any

// Status is one entry of the property status catalog.
type Status struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color,omitempty"`
	Position  int    `json:"position,omitempty"`
	Nonpublic bool   `json:"nonpublic,omitempty"`
}

// SearchParams are the optional unit search filters. Nil numeric fields and
// empty strings are omitted from the query entirely.
type SearchParams struct {
	PriceFrom    *int
	PriceTo      *int
	PlotAreaFrom *int
	PropertyType string
	// Status accepts catalog IDs, stage names, or a comma-separated mix;
	// it is normalized via NormalizeStatusParam before hitting the wire.
	Status string
	Page   int
	// Per caps the page size; zero means the default of 500.
	Per int
}

// SearchResult is the normalized outcome of a unit search.
type SearchResult struct {
	Units []Unit
	Total int
}
