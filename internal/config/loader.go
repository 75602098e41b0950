package config

import (
	"context"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if APPELLO_CONFIG is set
//  3. env (prefix APPELLO_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("APPELLO_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: APPELLO_ADDR, APPELLO_DATA_DIR, ...
	// Keys keep their underscores to match the koanf tags on the struct.
	envProvider := env.Provider("APPELLO_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "appello_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.Addr == "" {
		return nil, ErrEmptyAddr
	}
	switch cfg.StorageBackend {
	case BackendFile, BackendSQLite:
	default:
		return nil, ErrUnknownBackend
	}
	return &cfg, nil
}
