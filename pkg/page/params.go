package page

import (
	"strconv"
	"strings"
)

// SortAsc and SortDesc are the accepted sortType values.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Params are the standard list query parameters.
type Params struct {
	Page     int
	Limit    int
	SortBy   string
	SortType string
	Query    string
}

// ParseParams fills defaults for absent values: page=1, limit=10,
// sortBy=createdAt, sortType=desc. Non-numeric page/limit fall back to the
// defaults; out-of-range values are left for Paginate to reject.
func ParseParams(pageStr, limitStr, sortBy, sortType, query string) Params {
	p := Params{
		Page:     DefaultPage,
		Limit:    DefaultLimit,
		SortBy:   "createdAt",
		SortType: SortDesc,
		Query:    strings.TrimSpace(query),
	}

	if v, err := strconv.Atoi(strings.TrimSpace(pageStr)); err == nil {
		p.Page = v
	}
	if v, err := strconv.Atoi(strings.TrimSpace(limitStr)); err == nil {
		p.Limit = v
	}
	if s := strings.TrimSpace(sortBy); s != "" {
		p.SortBy = s
	}
	if strings.EqualFold(strings.TrimSpace(sortType), SortAsc) {
		p.SortType = SortAsc
	}
	return p
}
