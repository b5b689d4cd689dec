package domain

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// QueryOptions shapes a paginated list request. Zero or negative Page and
// Limit fall back to the defaults. Filters is an open field-to-value
// mapping; which fields a provider matches on is implementation-defined.
type QueryOptions struct {
	Page      int               `json:"page"`
	Limit     int               `json:"limit"`
	SortBy    string            `json:"sort_by,omitempty"`
	SortOrder SortOrder         `json:"sort_order,omitempty"`
	Filters   map[string]string `json:"filters,omitempty"`
}

// Normalized returns a copy with Page and Limit clamped to their defaults
// and SortOrder defaulting to ascending when a sort field is set.
func (q QueryOptions) Normalized() QueryOptions {
	if q.Page <= 0 {
		q.Page = DefaultPage
	}
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if q.SortBy != "" && q.SortOrder != SortDesc {
		q.SortOrder = SortAsc
	}
	return q
}

// PaginatedResult is one page of an ordered collection along with the
// unpaginated total.
type PaginatedResult[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"total_pages"`
}

// NewPaginatedResult slices the page [ (page-1)*limit, page*limit ) out of
// items, which must already be in their final order. Options are assumed
// normalized.
func NewPaginatedResult[T any](items []T, opts QueryOptions) PaginatedResult[T] {
	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	page := make([]T, end-start)
	copy(page, items[start:end])

	return PaginatedResult[T]{
		Data:       page,
		Total:      len(items),
		Page:       opts.Page,
		Limit:      opts.Limit,
		TotalPages: (len(items) + opts.Limit - 1) / opts.Limit,
	}
}
