package tokenstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/zalando/go-keyring"
)

// KeyringStore keeps the token in the OS-native credential store.
type KeyringStore struct {
	service string
	user    string
}

var _ TokenStore = (*KeyringStore)(nil)

// NewKeyringStore creates a KeyringStore for the given OS user. The service
// name is derived from the application name and common.AuthTokenKey.
func NewKeyringStore(user string) (*KeyringStore, error) {
	if user == "" {
		return nil, fmt.Errorf("user cannot be empty")
	}

	return &KeyringStore{
		service: common.AppName + "." + common.AuthTokenKey,
		user:    user,
	}, nil
}

func (k *KeyringStore) Get(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	token, err := keyring.Get(k.service, k.user)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if token == "" {
		return "", false, nil
	}
	return token, true, nil
}

func (k *KeyringStore) Set(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return keyring.Set(k.service, k.user, token)
}

func (k *KeyringStore) Remove(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := keyring.Delete(k.service, k.user); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return err
	}
	return nil
}
