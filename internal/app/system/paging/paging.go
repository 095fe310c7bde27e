// internal/app/system/paging/paging.go
//
// Package paging implements the offset pagination every list endpoint uses:
// ?page=N&limit=M in, a pagination block (page, limit, totalPages, hasNext,
// hasPrev) out. Handlers run Find with Skip/Limit plus CountDocuments on the
// same filter and feed the total into Info.
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// DefaultLimit is the page size used when a resource does not specify one.
const DefaultLimit = 10

// MaxLimit caps the page size a client may request.
const MaxLimit = 100

// Params holds the parsed page/limit pair. Page is 1-based.
type Params struct {
	Page  int
	Limit int
}

// Parse reads "page" and "limit" from the query string. Missing or invalid
// values fall back to page 1 and defaultLimit; limit is clamped to MaxLimit.
func Parse(r *http.Request, defaultLimit int) Params {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}

	p := Params{Page: 1, Limit: defaultLimit}

	if s := query.Get(r, "page"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 {
			p.Page = n
		}
	}
	if s := query.Get(r, "limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 {
			p.Limit = n
		}
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Skip returns the number of documents to skip for the current page.
func (p Params) Skip() int64 {
	return int64(p.Page-1) * int64(p.Limit)
}

// Limit64 returns the limit as int64 for Mongo FindOptions.
func (p Params) Limit64() int64 {
	return int64(p.Limit)
}

// Info is the pagination block of the list response envelope.
type Info struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int64 `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// Info computes the pagination block for a total match count.
// TotalPages is ceil(total/limit); zero matches means zero pages.
func (p Params) Info(total int64) Info {
	totalPages := (total + int64(p.Limit) - 1) / int64(p.Limit)
	return Info{
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: totalPages,
		HasNext:    int64(p.Page) < totalPages,
		HasPrev:    p.Page > 1 && total > 0,
	}
}
