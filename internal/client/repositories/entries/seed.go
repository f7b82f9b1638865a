package entries

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/gophvault/internal/client/models"
	"github.com/dmitrijs2005/gophvault/internal/dbx"
)

// SeedIfEmpty inserts seed in one transaction when the entries table is
// empty. It reports whether anything was inserted.
func SeedIfEmpty(ctx context.Context, db *sql.DB, seed []models.Entry) (bool, error) {
	seeded := false
	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		n, err := repo.Count(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		for _, e := range seed {
			if _, err := repo.Create(ctx, e); err != nil {
				return err
			}
		}
		seeded = len(seed) > 0
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to seed entries: %w", err)
	}
	return seeded, nil
}
