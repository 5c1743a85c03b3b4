// Package config gathers defaults from the environment (and an optional .env)
// before command-line flags override them.
package config

import (
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/yumyai/phylokit/logger"
)

const (
	EnvSubdir   = "PHYLOKIT_SUBDIR"
	EnvWorkers  = "PHYLOKIT_WORKERS"
	EnvDB       = "PHYLOKIT_DB"
	EnvLogLevel = "PHYLOKIT_LOG_LEVEL"

	DefaultSubdir = "knownclusterblastdirectory"
)

type Config struct {
	Subdir   string
	Workers  int
	DBPath   string // empty means no SQLite export
	LogLevel string
}

// LoadDotenv reads .env files into the process environment. Variables that
// are already set win over the file.
func LoadDotenv(files ...string) error {
	return godotenv.Load(files...)
}

// FromEnv builds a Config from the environment, falling back to defaults.
func FromEnv() Config {
	cfg := Config{
		Subdir:   os.Getenv(EnvSubdir),
		DBPath:   os.Getenv(EnvDB),
		LogLevel: os.Getenv(EnvLogLevel),
		Workers:  runtime.GOMAXPROCS(0),
	}

	if cfg.Subdir == "" {
		cfg.Subdir = DefaultSubdir
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if w := os.Getenv(EnvWorkers); w != "" {
		n, err := strconv.Atoi(w)
		if err != nil || n < 1 {
			logger.Warn("Invalid worker count, using default",
				zap.String(EnvWorkers, w), zap.Int("workers", cfg.Workers))
		} else {
			cfg.Workers = n
		}
	}

	return cfg
}
