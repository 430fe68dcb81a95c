// Package odds parses odds service flags and launches the service.
package odds

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/louisbranch/riskodds/internal/platform/cmd"
	server "github.com/louisbranch/riskodds/internal/services/odds/app"
)

// Config holds odds command configuration.
type Config struct {
	Addr     string `env:"ODDS_ADDR"      envDefault:"localhost:8090"`
	DBPath   string `env:"ODDS_DB_PATH"   envDefault:"data/odds.db"`
	MaxUnits int    `env:"ODDS_MAX_UNITS" envDefault:"1000"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The odds gRPC listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "Battle record log path (empty disables the log)")
	fs.IntVar(&cfg.MaxUnits, "max-units", cfg.MaxUnits, "Largest unit count accepted per side")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.MaxUnits <= 0 {
		return Config{}, fmt.Errorf("max units must be positive, got %d", cfg.MaxUnits)
	}
	return cfg, nil
}

// Run starts the odds gRPC API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceOdds, func(context.Context) error {
		return server.Run(ctx, server.Options{
			Addr:     cfg.Addr,
			DBPath:   cfg.DBPath,
			MaxUnits: cfg.MaxUnits,
		})
	})
}
