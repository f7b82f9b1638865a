// Package entries stores vault entries on the client.
//
// Two implementations of vault.Repository are provided:
//
//   - SQLiteRepository persists entries in the local SQLite database through
//     a dbx.DBTX (either *sql.DB or *sql.Tx).
//   - MemoryRepository keeps them in a slice and backs the service tests.
//
// Both list entries in insertion order and generate ids with google/uuid
// when Create is called with an empty id. Update and Delete return
// common.ErrorNotFound for unknown ids.
//
// Typical Usage
//
//	repo := entries.NewSQLiteRepository(db)
//	created, _ := repo.Create(ctx, models.Entry{Name: "GitHub", ...})
//	list, _ := repo.List(ctx)
//	_ = repo.Delete(ctx, created.ID)
package entries
