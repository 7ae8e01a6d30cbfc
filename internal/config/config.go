// Package config resolves CLI defaults from the environment and an optional
// .env file. Command-line flags override anything set here.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables
const (
	EnvFck      = "GORCC_FCK"
	EnvFy       = "GORCC_FY"
	EnvSteel    = "GORCC_STEEL"
	EnvWorkers  = "GORCC_WORKERS"
	EnvLogLevel = "GORCC_LOG_LEVEL"
)

// Config holds the defaults used by the commands
type Config struct {
	Fck      float64 // MPa
	Fy       float64 // MPa
	Steel    string
	Workers  int
	LogLevel string
}

// Default returns the built-in defaults (M25 concrete, Fe415 steel)
func Default() Config {
	return Config{
		Fck:      25,
		Fy:       415,
		Steel:    "placeholder",
		Workers:  runtime.NumCPU(),
		LogLevel: "info",
	}
}

// Load reads the given dotenv files (".env" when none are named), then the
// process environment. Missing files are skipped; variables already set in
// the environment win over file values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	values := map[string]string{}
	for _, f := range files {
		m, err := godotenv.Read(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, fmt.Errorf("read %s: %w", f, err)
		}
		for k, v := range m {
			values[k] = v
		}
	}

	return FromLookup(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	})
}

// FromLookup builds a Config from a variable lookup, starting from Default
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvFck); ok {
		f, err := parsePositive(EnvFck, v)
		if err != nil {
			return Config{}, err
		}
		cfg.Fck = f
	}
	if v, ok := lookup(EnvFy); ok {
		f, err := parsePositive(EnvFy, v)
		if err != nil {
			return Config{}, err
		}
		cfg.Fy = f
	}
	if v, ok := lookup(EnvSteel); ok && strings.TrimSpace(v) != "" {
		cfg.Steel = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvWorkers); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("%s: want a positive integer, got %q", EnvWorkers, v)
		}
		cfg.Workers = n
	}
	if v, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(v) != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}

	return cfg, nil
}

func parsePositive(key, v string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || f <= 0 {
		return 0, fmt.Errorf("%s: want a positive number, got %q", key, v)
	}
	return f, nil
}
