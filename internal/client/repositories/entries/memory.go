package entries

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/client/models"
	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/google/uuid"
)

// MemoryRepository keeps entries in process memory.
type MemoryRepository struct {
	mu      sync.Mutex
	entries []models.Entry
	now     func() time.Time
}

// NewMemoryRepository returns a repository holding a copy of initial.
func NewMemoryRepository(initial []models.Entry) *MemoryRepository {
	return &MemoryRepository{entries: slices.Clone(initial), now: time.Now}
}

func (r *MemoryRepository) index(id string) int {
	return slices.IndexFunc(r.entries, func(e models.Entry) bool { return e.ID == id })
}

func (r *MemoryRepository) List(context.Context) ([]models.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := slices.Clone(r.entries)
	if out == nil {
		out = []models.Entry{}
	}
	return out, nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (models.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return models.Entry{}, common.ErrorNotFound
	}
	return r.entries[i], nil
}

func (r *MemoryRepository) Create(_ context.Context, e models.Entry) (models.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = r.now().UTC()
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = e.CreatedAt
	}
	r.entries = append(r.entries, e)
	return e, nil
}

func (r *MemoryRepository) Update(_ context.Context, e models.Entry) (models.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(e.ID)
	if i < 0 {
		return models.Entry{}, common.ErrorNotFound
	}
	e.CreatedAt = r.entries[i].CreatedAt
	e.UpdatedAt = r.now().UTC()
	r.entries[i] = e
	return e, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return common.ErrorNotFound
	}
	r.entries = slices.Delete(r.entries, i, i+1)
	return nil
}

func (r *MemoryRepository) Count(context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries), nil
}
