package entries

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/client/db"
	"github.com/dmitrijs2005/gophvault/internal/client/models"
	"github.com/dmitrijs2005/gophvault/internal/client/vault"
	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// repoContract runs the behaviour shared by every Repository.
func repoContract(t *testing.T, newRepo func(t *testing.T) Repository) {
	ctx := context.Background()

	t.Run("create assigns id and keeps order", func(t *testing.T) {
		r := newRepo(t)

		a, err := r.Create(ctx, models.Entry{Name: "A", Username: "a", Password: "pa"})
		require.NoError(t, err)
		b, err := r.Create(ctx, models.Entry{ID: "fixed", Name: "B", Username: "b", Password: "pb", Category: "Finance"})
		require.NoError(t, err)

		assert.NotEmpty(t, a.ID)
		assert.Equal(t, "fixed", b.ID)
		assert.False(t, a.CreatedAt.IsZero())
		assert.Equal(t, a.CreatedAt, a.UpdatedAt)

		list, err := r.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "A", list[0].Name)
		assert.Equal(t, "B", list[1].Name)
		assert.Equal(t, "Finance", list[1].Category)
		assert.Empty(t, list[0].Category)

		n, err := r.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("empty list is not nil", func(t *testing.T) {
		list, err := newRepo(t).List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})

	t.Run("update replaces fields", func(t *testing.T) {
		r := newRepo(t)
		e, err := r.Create(ctx, models.Entry{Name: "A", Username: "a", Password: "pa", Notes: "old"})
		require.NoError(t, err)

		e.Password = "new"
		e.Notes = ""
		e.URL = "https://a.example"
		updated, err := r.Update(ctx, e)
		require.NoError(t, err)
		assert.Equal(t, "new", updated.Password)
		assert.Empty(t, updated.Notes)

		got, err := r.Get(ctx, e.ID)
		require.NoError(t, err)
		assert.Equal(t, "https://a.example", got.URL)
		assert.True(t, got.CreatedAt.Equal(e.CreatedAt))
	})

	t.Run("unknown ids are not found", func(t *testing.T) {
		r := newRepo(t)

		_, err := r.Get(ctx, "nope")
		require.ErrorIs(t, err, common.ErrorNotFound)
		_, err = r.Update(ctx, models.Entry{ID: "nope"})
		require.ErrorIs(t, err, common.ErrorNotFound)
		require.ErrorIs(t, r.Delete(ctx, "nope"), common.ErrorNotFound)
	})

	t.Run("delete removes", func(t *testing.T) {
		r := newRepo(t)
		e, err := r.Create(ctx, models.Entry{Name: "A", Username: "a", Password: "pa"})
		require.NoError(t, err)

		require.NoError(t, r.Delete(ctx, e.ID))

		list, err := r.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestSQLiteRepository(t *testing.T) {
	repoContract(t, func(t *testing.T) Repository {
		return NewSQLiteRepository(setupDB(t))
	})
}

func TestMemoryRepository(t *testing.T) {
	repoContract(t, func(t *testing.T) Repository {
		return NewMemoryRepository(nil)
	})
}

func TestSQLiteRepository_RoundTripsSampleEntries(t *testing.T) {
	ctx := context.Background()
	r := NewSQLiteRepository(setupDB(t))

	for _, e := range vault.SampleEntries() {
		_, err := r.Create(ctx, e)
		require.NoError(t, err)
	}

	got, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 6)
	for i, want := range vault.SampleEntries() {
		assert.Equal(t, want.ID, got[i].ID)
		assert.Equal(t, want.Email, got[i].Email)
		assert.Equal(t, want.Notes, got[i].Notes)
		assert.True(t, want.CreatedAt.Equal(got[i].CreatedAt))
	}
}

func TestSQLiteRepository_UpdateBumpsUpdatedAt(t *testing.T) {
	ctx := context.Background()
	r := NewSQLiteRepository(setupDB(t))
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r.now = fixedClock(t0)

	e, err := r.Create(ctx, models.Entry{Name: "A", Username: "a", Password: "p"})
	require.NoError(t, err)

	r.now = fixedClock(t0.Add(time.Hour))
	updated, err := r.Update(ctx, e)
	require.NoError(t, err)

	assert.True(t, updated.CreatedAt.Equal(t0))
	assert.True(t, updated.UpdatedAt.Equal(t0.Add(time.Hour)))
}

func TestSQLiteRepository_ErrorsAreWrapped(t *testing.T) {
	conn := setupDB(t)
	r := NewSQLiteRepository(conn)
	ctx := context.Background()
	require.NoError(t, conn.Close())

	_, err := r.List(ctx)
	require.ErrorContains(t, err, "failed to select entries")
	_, err = r.Create(ctx, models.Entry{Name: "A"})
	require.ErrorContains(t, err, "failed to insert entry")
	require.ErrorContains(t, r.Delete(ctx, "x"), "failed to delete entry")
	_, err = r.Count(ctx)
	require.ErrorContains(t, err, "failed to count entries")
}

func TestSeedIfEmpty(t *testing.T) {
	ctx := context.Background()
	conn := setupDB(t)

	seeded, err := SeedIfEmpty(ctx, conn, vault.SampleEntries())
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = SeedIfEmpty(ctx, conn, vault.SampleEntries())
	require.NoError(t, err)
	assert.False(t, seeded, "second run must not duplicate")

	n, err := NewSQLiteRepository(conn).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

func TestSeedIfEmpty_RollsBackOnConflict(t *testing.T) {
	ctx := context.Background()
	conn := setupDB(t)
	dup := []models.Entry{
		{ID: "same", Name: "A", Username: "a", Password: "p"},
		{ID: "same", Name: "B", Username: "b", Password: "p"},
	}

	_, err := SeedIfEmpty(ctx, conn, dup)
	require.Error(t, err)

	n, err := NewSQLiteRepository(conn).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
