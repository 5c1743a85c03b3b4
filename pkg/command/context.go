package command

// Shared state for all subcommands, filled in before any of them runs.

import (
	"context"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yumyai/phylokit/logger"
	"github.com/yumyai/phylokit/pkg/config"
	"github.com/yumyai/phylokit/pkg/db"
)

type Context struct {
	Version string
	Verbose bool
	Config  config.Config
	RunID   string
}

// setup loads .env, starts the logger and tags it with a fresh run ID.
func (app *Context) setup() error {
	dotenvErr := config.LoadDotenv()

	level := logger.ParseLevel(os.Getenv(config.EnvLogLevel))
	if app.Verbose {
		level = zap.DebugLevel
	}
	if err := logger.InitLogger(level); err != nil {
		return err
	}
	if dotenvErr != nil {
		logger.Debug("No .env found, using local environment")
	}

	app.RunID = uuid.NewString()
	logger.With(zap.String("run_id", app.RunID))
	app.Config = config.FromEnv()

	logger.Debug("Start", zap.String("version", app.Version), zap.Any("config", app.Config))
	return nil
}

// openDB opens the SQLite export if a path was given on the command line or
// through the environment. A nil ResultDB means no export.
func (app *Context) openDB(ctx context.Context, flagPath string) (*db.ResultDB, error) {
	path := flagPath
	if path == "" {
		path = app.Config.DBPath
	}
	if path == "" {
		return nil, nil
	}
	logger.Info("Exporting results to SQLite", zap.String("path", path))
	return db.Open(ctx, path, app.RunID)
}
