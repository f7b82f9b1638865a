package config

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophvault/internal/client/tokenstore"
	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/dbx"
	"github.com/go-playground/validator/v10"
)

// TokenStorage selects where the auth token is persisted.
type TokenStorage string

const (
	TokenStorageDB      TokenStorage = "db"
	TokenStorageFile    TokenStorage = "file"
	TokenStorageKeyring TokenStorage = "keyring"
)

// Default configuration values.
const (
	DefaultServerURL      = "http://127.0.0.1:8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultDatabase       = "vault.db"
	DefaultPageSize       = 10
	DefaultLogLevel       = "warn"
	DefaultLogFormat      = "text"
	DefaultTokenStorage   = TokenStorageDB
)

// TokenConfig describes how to build the TokenStore.
type TokenConfig struct {
	Storage TokenStorage `json:"storage" validate:"required,oneof=db file keyring"`

	// File is used by file storage.
	File string `json:"file,omitempty"`
	// KeyringUser is used by keyring storage.
	KeyringUser string `json:"keyring_user,omitempty"`
}

// NewTokenStore builds the configured TokenStore. conn backs db storage.
func (t *TokenConfig) NewTokenStore(conn dbx.DBTX) (tokenstore.TokenStore, error) {
	switch t.Storage {
	case TokenStorageDB:
		return tokenstore.NewDBStore(metadata.NewSQLiteRepository(conn)), nil
	case TokenStorageFile:
		return tokenstore.NewFileStore(t.File)
	case TokenStorageKeyring:
		return tokenstore.NewKeyringStore(t.KeyringUser)
	default:
		return nil, fmt.Errorf("unsupported token storage: %s", t.Storage)
	}
}

// Config holds runtime settings for the vault client.
type Config struct {
	ServerURL      string        `json:"server_url" validate:"required,url"`
	RequestTimeout time.Duration `json:"request_timeout" validate:"gt=0"`
	Database       string        `json:"database" validate:"required"`
	PageSize       int           `json:"page_size" validate:"gte=1"`
	LogLevel       string        `json:"log_level" validate:"oneof=debug info warn error"`
	LogFormat      string        `json:"log_format" validate:"oneof=text json"`
	// Demo seeds an empty vault with sample entries.
	Demo  bool        `json:"demo"`
	Token TokenConfig `json:"token"`
}

// Default returns a Config with every default applied.
func Default() (*Config, error) {
	cfg := &Config{}
	if err := cfg.ApplyDefaults(); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}
	return cfg, nil
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() error {
	if c.ServerURL == "" {
		c.ServerURL = DefaultServerURL
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
	if c.Database == "" {
		c.Database = DefaultDatabase
	}
	if c.PageSize == 0 {
		c.PageSize = DefaultPageSize
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = DefaultLogFormat
	}
	if c.Token.Storage == "" {
		c.Token.Storage = DefaultTokenStorage
	}

	switch c.Token.Storage {
	case TokenStorageFile:
		if c.Token.File == "" {
			configDir, err := os.UserConfigDir()
			if err != nil {
				return fmt.Errorf("token.file required (auto-detect failed: %w)", err)
			}
			c.Token.File = filepath.Join(configDir, common.AppName, "token")
		}
	case TokenStorageKeyring:
		if c.Token.KeyringUser == "" {
			current, err := user.Current()
			if err != nil {
				return fmt.Errorf("token.keyring_user required (auto-detect failed: %w)", err)
			}
			c.Token.KeyringUser = current.Username
		}
	case TokenStorageDB:
	}

	return nil
}

// Validate checks struct tags and storage-specific settings.
func (c *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return err
	}

	switch c.Token.Storage {
	case TokenStorageFile:
		if c.Token.File == "" {
			return errors.New("file path required for file token storage")
		}
	case TokenStorageKeyring:
		if c.Token.KeyringUser == "" {
			return errors.New("keyring_user required for keyring token storage")
		}
	case TokenStorageDB:
	}
	return nil
}
