package vault

import (
	"errors"
	"fmt"
)

const DefaultPageSize = 10

var (
	ErrInvalidPage     = errors.New("page must be at least 1")
	ErrInvalidPageSize = errors.New("page size must be greater than 0")
)

// Pagination is the paging state. Total is always the filtered count.
type Pagination struct {
	Page     int
	PageSize int
	Total    int
}

// TotalPages is ceil(Total / PageSize).
func (p Pagination) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return (p.Total + p.PageSize - 1) / p.PageSize
}

// PaginationOption sets one paging key.
type PaginationOption func(*Pagination)

func WithPage(n int) PaginationOption {
	return func(p *Pagination) { p.Page = n }
}

func WithPageSize(n int) PaginationOption {
	return func(p *Pagination) { p.PageSize = n }
}

func (p Pagination) validate() error {
	if p.Page < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, p.Page)
	}
	if p.PageSize < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, p.PageSize)
	}
	return nil
}

// Window returns src[(page-1)*size : page*size], clipped to src. A page
// past the end yields an empty window.
func Window[T any](src []T, page, size int) []T {
	if page < 1 || size < 1 {
		return nil
	}
	start := (page - 1) * size
	if start >= len(src) {
		return []T{}
	}
	end := min(start+size, len(src))
	return src[start:end]
}
