package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/udisondev/itemdb/internal/variation"
)

// ItemDB holds all configuration for the item catalog tool.
type ItemDB struct {
	// Root of the resource tree (Character/, Item/, Map/Map).
	DataDir string `yaml:"data_dir" env:"ITEMDB_DATA_DIR" validate:"required"`

	LogLevel string `yaml:"log_level" env:"ITEMDB_LOG_LEVEL" validate:"oneof=debug info warn error"`

	// Empty disables the /metrics endpoint.
	MetricsAddr string `yaml:"metrics_addr" env:"ITEMDB_METRICS_ADDR" validate:"omitempty,hostname_port"`

	AuditWorkers int `yaml:"audit_workers" env:"ITEMDB_AUDIT_WORKERS" validate:"min=1,max=256"`

	Variation Variation `yaml:"variation"`
}

// Variation configures the equip stat variation policy.
type Variation struct {
	// Percent maps option tier to the percentage added to every stat.
	Percent map[int32]int32 `yaml:"percent" validate:"dive,min=-100,max=1000"`

	// Reference holds observed values the policy must reproduce.
	Reference []variation.Sample `yaml:"reference"`
}

// Func returns the configured policy, Identity when no table is set.
func (v Variation) Func() variation.Func {
	if len(v.Percent) == 0 {
		return variation.Identity
	}
	return variation.Table(v.Percent).Func()
}

// Options returns the configured option tiers in ascending order.
func (v Variation) Options() []int32 {
	return variation.Table(v.Percent).Options()
}

// DefaultItemDB returns ItemDB config with sensible defaults.
func DefaultItemDB() ItemDB {
	return ItemDB{
		DataDir:      "data/wz",
		LogLevel:     "info",
		AuditWorkers: 8,
	}
}

// LoadItemDB loads config from a YAML file, then applies ITEMDB_* environment
// overrides and validates the result.
// If the file doesn't exist, starts from defaults.
func LoadItemDB(path string) (ItemDB, error) {
	cfg := DefaultItemDB()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks field constraints and the variation reference data.
func (c ItemDB) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := variation.Validate(c.Variation.Func(), c.Variation.Reference); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// SlogLevel converts LogLevel to slog.Level.
func (c ItemDB) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
