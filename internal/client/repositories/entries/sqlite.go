package entries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/client/models"
	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/dbx"
	"github.com/google/uuid"
)

const selectColumns = `id, name, username, email, password, url, category, notes, created_at, updated_at`

// SQLiteRepository implements Repository using a DBTX.
type SQLiteRepository struct {
	db  dbx.DBTX
	now func() time.Time
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db, now: time.Now}
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (models.Entry, error) {
	var (
		e                      models.Entry
		email, url, cat, notes sql.NullString
		createdAt, updatedAt   string
	)
	if err := row.Scan(&e.ID, &e.Name, &e.Username, &email, &e.Password, &url, &cat, &notes, &createdAt, &updatedAt); err != nil {
		return models.Entry{}, err
	}
	e.Email, e.URL, e.Category, e.Notes = email.String, url.String, cat.String, notes.String

	var err error
	if e.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return models.Entry{}, fmt.Errorf("bad created_at for entry %s: %w", e.ID, err)
	}
	if e.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return models.Entry{}, fmt.Errorf("bad updated_at for entry %s: %w", e.ID, err)
	}
	return e, nil
}

// List returns all entries in insertion order.
func (r *SQLiteRepository) List(ctx context.Context) ([]models.Entry, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+selectColumns+` FROM entries ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	result := []models.Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Get returns a single entry.
func (r *SQLiteRepository) Get(ctx context.Context, id string) (models.Entry, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM entries WHERE id = ?`, id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Entry{}, common.ErrorNotFound
	}
	if err != nil {
		return models.Entry{}, fmt.Errorf("failed to get entry %s: %w", id, err)
	}
	return e, nil
}

// Create inserts e at the end of the list. Missing id and timestamps are
// filled in.
func (r *SQLiteRepository) Create(ctx context.Context, e models.Entry) (models.Entry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	now := r.now().UTC()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = e.CreatedAt
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO entries (id, seq, name, username, email, password, url, category, notes, created_at, updated_at)
		VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM entries), ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Name, e.Username, nullable(e.Email), e.Password, nullable(e.URL),
		nullable(e.Category), nullable(e.Notes), formatTime(e.CreatedAt), formatTime(e.UpdatedAt))
	if err != nil {
		return models.Entry{}, fmt.Errorf("failed to insert entry: %w", err)
	}
	return e, nil
}

// Update replaces every field of the stored entry except id, position and
// creation time, and bumps updated_at.
func (r *SQLiteRepository) Update(ctx context.Context, e models.Entry) (models.Entry, error) {
	e.UpdatedAt = r.now().UTC()

	res, err := r.db.ExecContext(ctx, `
		UPDATE entries SET name = ?, username = ?, email = ?, password = ?, url = ?,
			category = ?, notes = ?, updated_at = ?
		WHERE id = ?`,
		e.Name, e.Username, nullable(e.Email), e.Password, nullable(e.URL),
		nullable(e.Category), nullable(e.Notes), formatTime(e.UpdatedAt), e.ID)
	if err != nil {
		return models.Entry{}, fmt.Errorf("failed to update entry: %w", err)
	}
	if err := expectOne(res); err != nil {
		return models.Entry{}, err
	}
	return r.Get(ctx, e.ID)
}

// Delete removes an entry.
func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return expectOne(res)
}

func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return n, nil
}

func expectOne(res sql.Result) error {
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrorNotFound
	}
	return nil
}
