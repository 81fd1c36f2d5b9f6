package pagination

import (
	"math"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params is a normalized page request.
type Params struct {
	Page  int
	Limit int
}

// Parse reads raw query values, falling back to defaults for missing,
// unparsable or non-positive input and capping limit at MaxLimit.
func Parse(page, limit string) Params {
	p, err := strconv.Atoi(page)
	if err != nil || p <= 0 {
		p = DefaultPage
	}
	l, err := strconv.Atoi(limit)
	if err != nil || l <= 0 {
		l = DefaultLimit
	}
	return New(p, l)
}

// New normalizes already-parsed values.
func New(page, limit int) Params {
	if page <= 0 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Params{Page: page, Limit: limit}
}

// Offset is the number of rows to skip.
func (p Params) Offset() int { return (p.Page - 1) * p.Limit }

// Meta describes where a page sits in the full result.
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// Result is one page of T plus its metadata.
type Result[T any] struct {
	Data       []T  `json:"data"`
	Pagination Meta `json:"pagination"`
}

// NewResult builds a Result; data is never serialized as null.
func NewResult[T any](data []T, total int64, p Params) *Result[T] {
	if data == nil {
		data = []T{}
	}
	totalPages := int(math.Ceil(float64(total) / float64(p.Limit)))
	return &Result[T]{
		Data: data,
		Pagination: Meta{
			Page:       p.Page,
			Limit:      p.Limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    p.Page < totalPages,
			HasPrev:    p.Page > 1,
		},
	}
}

// Map converts a page of T into a page of U keeping the metadata.
func Map[T, U any](r *Result[T], fn func(T) U) *Result[U] {
	out := make([]U, 0, len(r.Data))
	for _, v := range r.Data {
		out = append(out, fn(v))
	}
	return &Result[U]{Data: out, Pagination: r.Pagination}
}
