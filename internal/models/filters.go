package models

// FilterOption is a value/label pair for a browse filter dropdown.
type FilterOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// AnimeFilterOptions lists the supported sort orders, formats, statuses and
// genres for the anime browsing flow. The values mirror what the upstream
// anime catalog accepts as query variables.
type AnimeFilterOptions struct {
	Sorts    []FilterOption `json:"sorts"`
	Formats  []FilterOption `json:"formats"`
	Statuses []FilterOption `json:"statuses"`
	Genres   []string       `json:"genres"`
}
