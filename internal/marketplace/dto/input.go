package dto

const (
	DefaultPageSize = 12
	MaxPageSize     = 100

	// AllSentinel is the literal the frontend sends for "no filter".
	AllSentinel = "All"
)

// SearchFilters carries the optional marketplace query parameters. Zero
// values mean "unfiltered"; price bounds are pointers so 0 remains a valid
// bound.
type SearchFilters struct {
	Query      string
	Category   string
	Technology string
	Location   string
	MinPrice   *float64
	MaxPrice   *float64
	MinQty     float64
	Sort       string
	Page       int
	PageSize   int
}

// Normalize clamps pagination and defaults the sort key. Called before the
// filters are used as a cache key so equivalent requests share an entry.
func (f *SearchFilters) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}
	if f.Sort == "" {
		f.Sort = "newest"
	}
}
