package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/dmitrijs2005/gophvault/internal/filex"
)

// FileStore provides atomic file-based token storage with secure permissions.
type FileStore struct {
	filePath string
}

var _ TokenStore = (*FileStore)(nil)

// NewFileStore creates a FileStore for the given path, creating parent
// directories with 0700 permissions if they don't exist.
func NewFileStore(filePath string) (*FileStore, error) {
	if filePath == "" {
		return nil, fmt.Errorf("file path cannot be empty")
	}

	if _, err := filex.EnsureParentDir(filePath, 0o700); err != nil {
		return nil, err
	}

	return &FileStore{filePath: filePath}, nil
}

// Get returns the stored token. A missing or blank file means no token.
// A file readable by others is rejected.
func (f *FileStore) Get(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	info, err := os.Stat(f.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if info.Mode().Perm() != 0o600 {
		return "", false, fmt.Errorf("insecure permissions on %s: %04o (expected 0600)", f.filePath, info.Mode().Perm())
	}

	data, err := os.ReadFile(f.filePath)
	if err != nil {
		return "", false, err
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", false, nil
	}
	return token, true, nil
}

// Set replaces the token file atomically.
func (f *FileStore) Set(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return filex.WriteAtomic(f.filePath, []byte(strings.TrimSpace(token)+"\n"), 0o600)
}

func (f *FileStore) Remove(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Remove(f.filePath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
