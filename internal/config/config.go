// Package config handles loading and parsing application configuration.
// It supports two sources (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//
// The parsed values are returned as a *Config pointer so the struct is
// shared by reference rather than copied everywhere.
package config

import (
	"flag"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Storage driver names accepted in the storage_driver key.
const (
	DriverJSONFile = "jsonfile"
	DriverSQLite   = "sqlite"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file and can be overridden by the
// corresponding environment variable (env:"...").
type Config struct {
	// Env controls log format and verbosity: "dev", "staging", or "prod".
	Env string `yaml:"env" env:"ENV" env-required:"true"`

	// StorageDriver selects the persistence backend: "jsonfile" keeps
	// each collection as a JSON array in its own file under DataDir;
	// "sqlite" keeps both collections in the database at StoragePath.
	StorageDriver string `yaml:"storage_driver" env:"STORAGE_DRIVER" env-default:"jsonfile"`

	// DataDir is the directory holding people.json and accounts.json
	// when the jsonfile driver is selected.
	DataDir string `yaml:"data_dir" env:"DATA_DIR" env-default:"data"`

	// StoragePath is the SQLite database file when the sqlite driver is
	// selected.
	StoragePath string `yaml:"storage_path" env:"STORAGE_PATH" env-default:"data/people.db"`

	// AuthRequired toggles the access-controlled variant of the API.
	// When false, requests are neither authenticated nor authorized.
	AuthRequired bool `yaml:"auth_required" env:"AUTH_REQUIRED" env-default:"true"`

	// UpsertOnPost switches POST /people from strict create (duplicate
	// id rejected) to create-or-replace keyed by id.
	UpsertOnPost bool `yaml:"upsert_on_post" env:"UPSERT_ON_POST" env-default:"false"`

	// HTTPServer is embedded so its fields are accessible directly on
	// Config: cfg.HTTPServer.Addr or, after promotion, cfg.Addr.
	HTTPServer `yaml:"http_server"`
}

// HTTPServer holds settings specific to the HTTP server, nested under
// http_server: in the YAML file.
type HTTPServer struct {
	// Addr is the TCP address the server listens on, e.g. "localhost:8082".
	Addr string `yaml:"address" env:"HTTP_SERVER_ADDR" env-required:"true"`
}

// MustLoad reads, validates, and returns the application config.
//
// Functions prefixed with "Must" are allowed to exit on failure: callers
// do not check an error — if MustLoad returns, the config is valid.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	if configPath == "" {
		log.Fatal("config path is not set: use --config flag or CONFIG_PATH env var")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	// cleanenv reads the YAML file, applies env:"..." overrides, and
	// enforces env-required constraints.
	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err.Error())
	}

	if cfg.StorageDriver != DriverJSONFile && cfg.StorageDriver != DriverSQLite {
		log.Fatalf("unknown storage driver %q: want %q or %q",
			cfg.StorageDriver, DriverJSONFile, DriverSQLite)
	}

	return &cfg
}
