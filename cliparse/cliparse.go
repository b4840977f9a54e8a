package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultPort   = 3318
	DefaultType   = "sqlite"
	DefaultSchema = "yara"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	Schema       string
	InitSchema   bool
}

// ParseFlags validates flags and fills unset values from the environment.
// A .env file in the working directory is loaded first when present.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	// Missing .env is fine; real env vars always win over it
	_ = godotenv.Load()

	fs := flag.NewFlagSet("yara", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.Schema, "schema", "", "Database schema holding the YARA tables (postgres only)")
	fs.BoolVar(&cfg.InitSchema, "init-schema", false, "Create the YARA tables if they do not exist")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DefaultType
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.Schema == "" {
		cfg.Schema = os.Getenv("YARA_SCHEMA")
		if cfg.Schema == "" {
			cfg.Schema = DefaultSchema
		}
	}

	if !cfg.InitSchema {
		if v := os.Getenv("YARA_INIT_SCHEMA"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return Config{}, errors.New("invalid YARA_INIT_SCHEMA env variable")
			}
			cfg.InitSchema = b
		}
	}

	return cfg, nil
}
