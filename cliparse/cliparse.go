package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	DataDir      string
	DemoEmail    string
	SeedDemo     bool
	Latency      bool
}

// ParseFlags validates flags and falls back to the environment.
// A .env file in the working directory is loaded first if present;
// variables already set in the environment win over it.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	fs := flag.NewFlagSet("civic-vote", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.DataDir, "data-dir", "", "Session and document storage directory (\"-\" for in-memory)")
	fs.StringVar(&cfg.DemoEmail, "demo-email", "", "Profile assigned by provider logins")
	seed := fs.String("seed", "", "Seed demo users and the featured election poll (true/false)")
	latency := fs.String("latency", "", "Simulate network latency on account operations (true/false)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "postgres" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "file:civicvote.db"
	}

	if cfg.DataDir == "" {
		cfg.DataDir = os.Getenv("DATA_DIR")
		if cfg.DataDir == "" {
			cfg.DataDir = ".civicvote"
		}
	}
	if cfg.DataDir == "-" {
		cfg.DataDir = ""
	}

	if cfg.DemoEmail == "" {
		cfg.DemoEmail = os.Getenv("DEMO_EMAIL")
		if cfg.DemoEmail == "" {
			cfg.DemoEmail = "jane@example.com"
		}
	}

	var err error
	if cfg.SeedDemo, err = parseBool(*seed, "SEED_DEMO", true); err != nil {
		return Config{}, err
	}
	if cfg.Latency, err = parseBool(*latency, "SIMULATE_LATENCY", false); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// parseBool prefers the flag value, then the env variable, then def
func parseBool(flagVal, env string, def bool) (bool, error) {
	val := flagVal
	if val == "" {
		val = os.Getenv(env)
	}
	if val == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q", env, val)
	}
	return b, nil
}
