package vault

import (
	"context"

	"github.com/dmitrijs2005/gophvault/internal/client/models"
)

// Repository is the source of vault entries.
type Repository interface {
	// List returns every entry in a stable order.
	List(ctx context.Context) ([]models.Entry, error)
	// Create stores e and returns it with its id and timestamps set.
	Create(ctx context.Context, e models.Entry) (models.Entry, error)
	// Update replaces the entry with e.ID and returns the stored version.
	Update(ctx context.Context, e models.Entry) (models.Entry, error)
	// Delete removes the entry with id.
	Delete(ctx context.Context, id string) error
}
