package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/urfave/cli/v3"
)

// EnvPrefix is stripped from environment variables during loading
// (GOPHVAULT_TOKEN__STORAGE → token.storage).
const EnvPrefix = "GOPHVAULT_"

// Flags returns the command-line flags understood by Load. Defaults are
// not set on the flags so that unset flags never shadow the file or the
// environment.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "path to TOML config file"},
		&cli.StringFlag{Name: "server-url", Aliases: []string{"s"}, Usage: "vault API base URL (default " + DefaultServerURL + ")"},
		&cli.DurationFlag{Name: "request-timeout", Usage: "timeout of one API request (default 30s)"},
		&cli.StringFlag{Name: "database", Aliases: []string{"d"}, Usage: "path of the local SQLite database (default " + DefaultDatabase + ")"},
		&cli.IntFlag{Name: "page-size", Usage: "entries per page (default 10)"},
		&cli.StringFlag{Name: "log-level", Usage: "log level (debug|info|warn|error)"},
		&cli.StringFlag{Name: "log-format", Usage: "log format (text|json)"},
		&cli.BoolFlag{Name: "demo", Usage: "seed an empty vault with sample entries"},
		&cli.StringFlag{Name: "token--storage", Usage: "where to keep the auth token (db|file|keyring)"},
		&cli.StringFlag{Name: "token--file", Usage: "token file for file storage"},
		&cli.StringFlag{Name: "token--keyring-user", Usage: "keyring user for keyring storage"},
	}
}

// Load reads configuration with precedence
// config file → environment variables → CLI flags → defaults,
// then validates it. cmd and environFunc may be nil.
func Load(configPath string, cmd *cli.Command, environFunc func() []string) (*Config, error) {
	k := koanf.New(".")

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	if environFunc != nil {
		envProvider := env.Provider(".", env.Opt{
			Prefix: EnvPrefix,
			TransformFunc: func(key, value string) (string, any) {
				stripped := strings.TrimPrefix(key, EnvPrefix)
				return strings.ToLower(strings.ReplaceAll(stripped, "__", ".")), value
			},
			EnvironFunc: environFunc,
		})
		if err := k.Load(envProvider, nil); err != nil {
			return nil, fmt.Errorf("loading environment variables: %w", err)
		}
	}

	if cmd != nil {
		if err := k.Load(confmap.Provider(flagValues(cmd), "."), nil); err != nil {
			return nil, fmt.Errorf("loading CLI flags: %w", err)
		}
	}

	cfg := &Config{}
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.ApplyDefaults(); err != nil {
		return nil, fmt.Errorf("applying defaults: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// flagValues maps set flags to config keys:
// --token--keyring-user → token.keyring_user, --page-size → page_size.
func flagValues(cmd *cli.Command) map[string]any {
	values := make(map[string]any)
	for _, name := range cmd.FlagNames() {
		if name == "config" || !cmd.IsSet(name) {
			continue
		}
		if value := cmd.Value(name); value != nil {
			key := strings.ReplaceAll(name, "--", ".")
			key = strings.ReplaceAll(key, "-", "_")
			values[key] = value
		}
	}
	return values
}
