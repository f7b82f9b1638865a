package entries

import (
	"context"

	"github.com/dmitrijs2005/gophvault/internal/client/models"
	"github.com/dmitrijs2005/gophvault/internal/client/vault"
)

// Repository extends vault.Repository with lookup and counting used by the
// services layer.
type Repository interface {
	vault.Repository

	// Get returns the entry with id or common.ErrorNotFound.
	Get(ctx context.Context, id string) (models.Entry, error)

	// Count returns the number of stored entries.
	Count(ctx context.Context) (int, error)
}

var (
	_ Repository = (*SQLiteRepository)(nil)
	_ Repository = (*MemoryRepository)(nil)
)
