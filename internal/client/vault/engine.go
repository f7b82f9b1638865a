package vault

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/gophvault/internal/client/models"
	"github.com/dmitrijs2005/gophvault/internal/logging"
)

// Engine holds entries, filters and pagination and derives the visible
// page from them. Reads return copies.
type Engine struct {
	mu         sync.RWMutex
	repo       Repository
	log        logging.Logger
	entries    []models.Entry
	filters    Filters
	pagination Pagination
	filtered   []models.Entry
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithRepository sets the source used by Reload.
func WithRepository(r Repository) EngineOption {
	return func(e *Engine) { e.repo = r }
}

// WithEntries sets the initial entry list.
func WithEntries(entries []models.Entry) EngineOption {
	return func(e *Engine) { e.entries = slices.Clone(entries) }
}

// WithInitialPageSize overrides DefaultPageSize. Values below 1 are ignored.
func WithInitialPageSize(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.pagination.PageSize = n
		}
	}
}

func WithLogger(l logging.Logger) EngineOption {
	return func(e *Engine) { e.log = l }
}

func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		log:        logging.Discard(),
		pagination: Pagination{Page: 1, PageSize: DefaultPageSize},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.recompute()
	return e
}

// recompute must be called with mu held for writing.
func (e *Engine) recompute() {
	e.filtered = Filter(e.entries, e.filters)
	e.pagination.Total = len(e.filtered)
}

// SetEntries replaces the entry list. Filters and page are kept.
func (e *Engine) SetEntries(entries []models.Entry) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.entries = slices.Clone(entries)
	e.recompute()
}

// Reload replaces the entry list with the repository contents. On error
// the current entries are kept.
func (e *Engine) Reload(ctx context.Context) error {
	if e.repo == nil {
		return fmt.Errorf("vault.Reload: no repository configured")
	}
	entries, err := e.repo.List(ctx)
	if err != nil {
		e.log.Error(ctx, "loading vault entries failed", "error", err)
		return fmt.Errorf("vault.Reload: %w", err)
	}
	e.SetEntries(entries)
	e.log.Debug(ctx, "vault entries loaded", "count", len(entries))
	return nil
}

// UpdateFilters applies opts and resets the page to 1, whether or not the
// result set changed.
func (e *Engine) UpdateFilters(opts ...FilterOption) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, opt := range opts {
		opt(&e.filters)
	}
	e.pagination.Page = 1
	e.recompute()
}

// UpdatePagination applies opts. Filters are untouched. The update is
// rejected as a whole if the resulting page or page size is out of range.
func (e *Engine) UpdatePagination(opts ...PaginationOption) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.pagination
	for _, opt := range opts {
		opt(&next)
	}
	if err := next.validate(); err != nil {
		return err
	}
	next.Total = len(e.filtered)
	e.pagination = next
	return nil
}

func (e *Engine) Filters() Filters {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.filters
}

func (e *Engine) Pagination() Pagination {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.pagination
}

func (e *Engine) TotalPages() int {
	return e.Pagination().TotalPages()
}

// Entries returns every entry regardless of filters.
func (e *Engine) Entries() []models.Entry {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.entries)
}

// Filtered returns the entries passing the current filters.
func (e *Engine) Filtered() []models.Entry {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.filtered)
}

// Page returns the current pagination window of Filtered.
func (e *Engine) Page() []models.Entry {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(Window(e.filtered, e.pagination.Page, e.pagination.PageSize))
}

// Get looks an entry up by id among all entries.
func (e *Engine) Get(id string) (models.Entry, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	i := slices.IndexFunc(e.entries, func(x models.Entry) bool { return x.ID == id })
	if i < 0 {
		return models.Entry{}, false
	}
	return e.entries[i], true
}
