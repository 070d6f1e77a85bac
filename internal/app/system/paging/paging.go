// internal/app/system/paging/paging.go

// Package paging implements the offset pagination used by every list
// endpoint. Responses share one envelope:
//
//	{ "currentPage": 1, "totalPages": 5, "totalItemCount": 42, "data": [...] }
package paging

import (
	"net/http"
	"strconv"
)

// DefaultPageSize is used when the client omits or mangles pageSize.
const DefaultPageSize = 10

// Params holds the parsed page/pageSize query values.
type Params struct {
	Page     int
	PageSize int
}

// Parse reads page and pageSize from the query string, substituting
// defaults for missing or non-positive values.
func Parse(r *http.Request) Params {
	p := Params{Page: 1, PageSize: DefaultPageSize}
	if n, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && n > 0 {
		p.Page = n
	}
	if n, err := strconv.Atoi(r.URL.Query().Get("pageSize")); err == nil && n > 0 {
		p.PageSize = n
	}
	return p
}

// ParseStrict is like Parse but reports invalid explicit values instead
// of substituting defaults. The comment list endpoint rejects bad
// paging input with 400 rather than silently correcting it.
func ParseStrict(r *http.Request) (Params, bool) {
	p := Params{Page: 1, PageSize: DefaultPageSize}
	if s := r.URL.Query().Get("page"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return Params{}, false
		}
		p.Page = n
	}
	if s := r.URL.Query().Get("pageSize"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return Params{}, false
		}
		p.PageSize = n
	}
	return p, true
}

// Skip returns the number of documents to skip for Mongo Find().
func (p Params) Skip() int64 {
	return int64(p.Page-1) * int64(p.PageSize)
}

// Limit returns the page size as int64 for Mongo Find().SetLimit().
func (p Params) Limit() int64 {
	return int64(p.PageSize)
}

// Pages returns the total page count for the given item count.
func (p Params) Pages(totalItems int64) int {
	if totalItems <= 0 {
		return 0
	}
	return int((totalItems + int64(p.PageSize) - 1) / int64(p.PageSize))
}

// Envelope is the shared list-response body.
type Envelope struct {
	CurrentPage    int   `json:"currentPage"`
	TotalPages     int   `json:"totalPages"`
	TotalItemCount int64 `json:"totalItemCount"`
	Data           any   `json:"data"`
}

// NewEnvelope assembles the response envelope for one page of data.
func NewEnvelope(p Params, totalItems int64, data any) Envelope {
	return Envelope{
		CurrentPage:    p.Page,
		TotalPages:     p.Pages(totalItems),
		TotalItemCount: totalItems,
		Data:           data,
	}
}
