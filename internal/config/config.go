// Package config reads the process-wide view settings from the environment.
package config

import (
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
)

// Recognised values of ARRAYVIEW_ERROR_POLICY.
const (
	PolicyAbort = "abort"
	PolicyRaise = "raise"
)

// ErrInvalidPolicy is returned when ARRAYVIEW_ERROR_POLICY holds an unknown value.
var ErrInvalidPolicy = errors.New("config: ARRAYVIEW_ERROR_POLICY must be \"abort\" or \"raise\"")

var (
	cfg     Config
	loadErr error
	once    sync.Once
)

// Config holds the environment overrides. An empty ErrorPolicy keeps the
// build default; the policy name is matched in any case.
type Config struct {
	ErrorPolicy string     `env:"ARRAYVIEW_ERROR_POLICY"`
	DiagFormat  string     `env:"ARRAYVIEW_DIAG_FORMAT" envDefault:"text"`
	DiagLevel   slog.Level `env:"ARRAYVIEW_DIAG_LEVEL" envDefault:"INFO"`
}

// Parse reads the environment without caching.
func Parse() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, err
	}
	c.ErrorPolicy = strings.ToLower(c.ErrorPolicy)
	switch c.ErrorPolicy {
	case "", PolicyAbort, PolicyRaise:
	default:
		return Config{}, ErrInvalidPolicy
	}
	return c, nil
}

// Load parses the environment once per process and returns the cached result.
func Load() (Config, error) {
	once.Do(func() {
		cfg, loadErr = Parse()
	})
	return cfg, loadErr
}
