// Package page turns an ordered result set into a 1-based page window with
// the metadata clients need to render pagers.
package page

import "errors"

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// ErrInvalidArgs is returned when page or limit is not positive.
var ErrInvalidArgs = errors.New("page and limit must be positive")

// Page is one window over an ordered result set.
type Page[T any] struct {
	Docs        []T  `json:"docs"`
	TotalDocs   int  `json:"totalDocs"`
	Limit       int  `json:"limit"`
	Page        int  `json:"page"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
	NextPage    *int `json:"nextPage"`
	PrevPage    *int `json:"prevPage"`
	// PagingCounter is the 1-based ordinal of the first item on this page
	// within the full result set; nil when the page is empty.
	PagingCounter *int `json:"pagingCounter"`
}

// Paginate slices items to the window [(p-1)*limit, p*limit). A page past
// the end yields an empty window with HasNextPage false rather than an error.
func Paginate[T any](items []T, p, limit int) (Page[T], error) {
	if p <= 0 || limit <= 0 {
		return Page[T]{}, ErrInvalidArgs
	}

	total := len(items)
	totalPages := (total + limit - 1) / limit

	start := (p - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	out := Page[T]{
		Docs:        items[start:end],
		TotalDocs:   total,
		Limit:       limit,
		Page:        p,
		TotalPages:  totalPages,
		HasNextPage: p < totalPages,
		HasPrevPage: p > 1,
	}

	// Boundary pages carry nil neighbours.
	if out.HasNextPage {
		next := p + 1
		out.NextPage = &next
	}
	if out.HasPrevPage {
		prev := p - 1
		out.PrevPage = &prev
	}

	if len(out.Docs) > 0 {
		counter := start + 1
		out.PagingCounter = &counter
	}

	return out, nil
}
