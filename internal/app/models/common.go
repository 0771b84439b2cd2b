package models

type WebResponse[T any] struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Detail  map[string]string `json:"detail,omitempty"`
	Data    T                 `json:"data,omitempty"`
}

// PageRequest carries the advisory paging parameters of a list request.
// Values below 1 are replaced with the defaults instead of being rejected.
type PageRequest struct {
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
}

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
)

// Normalize replaces out-of-range paging values with the defaults.
func (r PageRequest) Normalize() PageRequest {
	if r.PageNumber < 1 {
		r.PageNumber = DefaultPageNumber
	}
	if r.PageSize < 1 {
		r.PageSize = DefaultPageSize
	}
	return r
}

// PageResult is the envelope returned by every paginated listing.
// PrevPage and NextPage are query-string locators, nil at the edges.
type PageResult[T any] struct {
	Data            []T     `json:"data"`
	TotalCount      int64   `json:"totalCount"`
	CurrentPage     int     `json:"currentPage"`
	TotalPages      int     `json:"totalPages"`
	HasNextPage     bool    `json:"hasNextPage"`
	HasPreviousPage bool    `json:"hasPreviousPage"`
	PrevPage        *string `json:"prevPage"`
	NextPage        *string `json:"nextPage"`
}
