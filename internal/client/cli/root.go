package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gophvault/internal/client/config"
	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/logging"
	"github.com/urfave/cli/v3"
)

// newAppFn is a test seam for NewApp.
var newAppFn = NewApp

// Execute runs the root command with the given context and arguments.
func Execute(ctx context.Context, args []string) error {
	return rootCommand(os.Environ).Run(ctx, args)
}

func rootCommand(environ func() []string) *cli.Command {
	return &cli.Command{
		Name:   common.AppName,
		Usage:  "password vault client",
		Flags:  config.Flags(),
		Action: rootAction(environ),
	}
}

func rootAction(environ func() []string) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		cfg, err := config.Load(cmd.String("config"), cmd, environ)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		log, err := logging.New(cfg.LogLevel, cfg.LogFormat, cmd.Root().ErrWriter)
		if err != nil {
			return fmt.Errorf("failed to set up logging: %w", err)
		}
		log.Info(ctx, "config loaded", "server_url", cfg.ServerURL, "database", cfg.Database)

		app, err := newAppFn(ctx, cfg, log, WithInput(cmd.Root().Reader), WithOutput(cmd.Root().Writer))
		if err != nil {
			return fmt.Errorf("failed to create app: %w", err)
		}
		defer app.Close() //nolint:errcheck // best-effort close on exit

		app.Run(ctx)
		return nil
	}
}
