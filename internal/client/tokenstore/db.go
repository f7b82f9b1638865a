package tokenstore

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophvault/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophvault/internal/common"
)

// DBStore keeps the token in the metadata table of the client database.
type DBStore struct {
	repo metadata.Repository
}

var _ TokenStore = (*DBStore)(nil)

func NewDBStore(repo metadata.Repository) *DBStore {
	return &DBStore{repo: repo}
}

func (s *DBStore) Get(ctx context.Context) (string, bool, error) {
	v, ok, err := s.repo.Get(ctx, common.AuthTokenKey)
	if err != nil {
		return "", false, fmt.Errorf("read token: %w", err)
	}
	if !ok || len(v) == 0 {
		return "", false, nil
	}
	return string(v), true, nil
}

func (s *DBStore) Set(ctx context.Context, token string) error {
	if err := s.repo.Set(ctx, common.AuthTokenKey, []byte(token)); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

func (s *DBStore) Remove(ctx context.Context) error {
	if err := s.repo.Delete(ctx, common.AuthTokenKey); err != nil {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}
