// Package config handles loading and parsing application configuration.
// It supports two sources for the file path (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//
// Any value in the file can be overridden by the environment variable named
// in its env:"..." tag. A .env file in the working directory, if present, is
// loaded into the environment first.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is the root configuration structure.
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-required:"true"`

	// StorageDriver selects the database/sql driver: "sqlite3" or "mysql".
	StorageDriver string `yaml:"storage_driver" env:"STORAGE_DRIVER" env-default:"sqlite3"`

	// StoragePath is the SQLite file path, or the DSN when the driver is mysql.
	StoragePath string `yaml:"storage_path" env:"STORAGE_PATH" env-required:"true"`

	// SeedPath points at a YAML file imported into an empty store on startup.
	// Empty disables seeding.
	SeedPath string `yaml:"seed_path" env:"SEED_PATH"`

	HTTPServer `yaml:"http_server"`

	Hours Hours `yaml:"hours"`
}

// HTTPServer holds settings specific to the HTTP server.
type HTTPServer struct {
	// Addr is the TCP address the server listens on, e.g. "localhost:8082".
	Addr string `yaml:"address" env:"HTTP_SERVER_ADDR" env-required:"true"`

	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"HTTP_SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"HTTP_SERVER_WRITE_TIMEOUT"    env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"HTTP_SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SERVER_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// Hours configures the open/closed evaluation.
type Hours struct {
	// Timezone is an IANA name. Badges are computed on this wall clock.
	Timezone string `yaml:"timezone" env:"HOURS_TIMEZONE" env-default:"Asia/Yekaterinburg"`

	// RefreshInterval is how often the status board recomputes badges.
	RefreshInterval time.Duration `yaml:"refresh_interval" env:"HOURS_REFRESH_INTERVAL" env-default:"60s"`

	// GateMinutePairs applies the workday set to open_time/close_time
	// schedules too. Off by default: shops have always been evaluated
	// without day gating.
	GateMinutePairs bool `yaml:"gate_minute_pairs" env:"HOURS_GATE_MINUTE_PAIRS"`

	School  KindHours `yaml:"school"  env-prefix:"HOURS_SCHOOL_"`
	Service KindHours `yaml:"service" env-prefix:"HOURS_SERVICE_"`
	Shop    KindHours `yaml:"shop"    env-prefix:"HOURS_SHOP_"`
}

// KindHours overrides the built-in policy of one listing kind.
// Zero values keep the built-in setting.
type KindHours struct {
	// Workdays uses time.Weekday numbering: 0 is Sunday, 6 is Saturday.
	Workdays []int `yaml:"workdays" env:"WORKDAYS" env-separator:","`

	// Default is the HH:MM-HH:MM range used when a schedule is unreadable.
	Default string `yaml:"default" env:"DEFAULT"`
}

// Location resolves Timezone. An empty Timezone means the process local zone.
func (h Hours) Location() (*time.Location, error) {
	if h.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(h.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: hours timezone: %w", err)
	}
	return loc, nil
}

// Load reads the config file at path, applies environment overrides and
// checks the values that cleanenv cannot.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config: stat %s: %w", path, err)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	switch cfg.StorageDriver {
	case "sqlite3", "mysql":
	default:
		return nil, fmt.Errorf("config: unsupported storage_driver %q", cfg.StorageDriver)
	}

	if _, err := cfg.Hours.Location(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// MustLoad reads, validates, and returns the application config.
// It terminates the process when the config cannot be loaded.
func MustLoad() *Config {
	// ── .env preload ─────────────────────────────────────────────────
	// Variables already present in the environment are not overwritten.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("cannot load .env: %s", err)
	}

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	if configPath == "" {
		log.Fatal("config path is not set: use --config flag or CONFIG_PATH env var")
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot load config: %s", err)
	}

	return cfg
}
