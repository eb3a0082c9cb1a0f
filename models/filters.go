package models

// FilterState is the request-scoped bag of everything the storefront can
// filter/sort/paginate by. It is rebuilt from the query string on every
// request and is the sole input to cache-key derivation; never persisted.
type FilterState struct {
	Types      []string              `json:"type,omitempty"`     // product type ids
	Categories []string              `json:"category,omitempty"` // category ids
	Terms      map[string][]string   `json:"terms,omitempty"`    // group code → term ids
	PriceMin   *int64                `json:"price_min,omitempty"`
	PriceMax   *int64                `json:"price_max,omitempty"`
	Ranges     map[string]RangeBound `json:"range,omitempty"` // extra_attrs code → numeric bounds
	Query      string                `json:"q,omitempty"`
	Sort       string                `json:"sort,omitempty"`
	Page       int                   `json:"page,omitempty"`
	PerPage    int                   `json:"per_page,omitempty"`
	Cursor     *int                  `json:"cursor,omitempty"`
}

// RangeBound is an inclusive numeric range over an extra_attrs value.
type RangeBound struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// HasSearch reports whether a non-blank search term is present.
func (f FilterState) HasSearch() bool {
	return f.Query != ""
}

// HasFilters reports whether any narrowing filter is active.
// Sort/pagination are not filters.
func (f FilterState) HasFilters() bool {
	if len(f.Types) > 0 || len(f.Categories) > 0 {
		return true
	}
	for _, ids := range f.Terms {
		if len(ids) > 0 {
			return true
		}
	}
	if f.PriceMin != nil || f.PriceMax != nil {
		return true
	}
	for _, r := range f.Ranges {
		if r.Min != nil || r.Max != nil {
			return true
		}
	}
	return f.HasSearch()
}
