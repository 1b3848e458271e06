package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds the settings shared by every command. Explicit flags override
// these values; these override the built-in defaults.
type Config struct {
	OutputDir           string `env:"SVCREPORT_OUTPUT_DIR,default=reports"`
	ZipkinURL           string `env:"SVCREPORT_ZIPKIN_URL,default=http://localhost:9411"`
	CombineSimilarNames bool   `env:"SVCREPORT_COMBINE_SIMILAR_NAMES,default=false"`
}

// Load reads the configuration from the process environment.
func Load(ctx context.Context) (Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return Config{}, fmt.Errorf("processing environment: %w", err)
	}
	return cfg, nil
}
