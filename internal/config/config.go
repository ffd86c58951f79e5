package config

import (
	"errors"
	"io/fs"
	"net"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// ErrMissingStorageCredentials is returned when the database endpoint or key is not set.
var ErrMissingStorageCredentials = errors.New("DATABASE_URL and DATABASE_KEY must be set in environment variables")

const (
	DefaultAllowedOrigins = "http://localhost:3000"
	DefaultPort           = "8000"
	DefaultLogLevel       = "info"
	DefaultNERModel       = "dslim/bert-base-NER"
)

type Config struct {
	// DatabaseURL is the postgres endpoint, e.g. postgres://postgres@db.example.supabase.co:5432/postgres?sslmode=require
	DatabaseURL string `koanf:"DATABASE_URL"`
	// DatabaseKey is the credential used as the connection password.
	DatabaseKey string `koanf:"DATABASE_KEY"`

	AllowedOrigins string `koanf:"ALLOWED_ORIGINS"`
	Host           string `koanf:"HOST"`
	Port           string `koanf:"PORT"`
	LogLevel       string `koanf:"LOG_LEVEL"`

	// NEREndpoint is the base URL of a token classification inference API.
	// Vendor extraction uses the line-scan fallback when it is empty.
	NEREndpoint string `koanf:"NER_ENDPOINT"`
	NERToken    string `koanf:"NER_TOKEN"`
	NERModel    string `koanf:"NER_MODEL"`
}

// ProcessEnvironmentVariables loads a .env file when one exists and then reads
// the process environment.
func ProcessEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", nil), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf", FlatPaths: true}); err != nil {
		return nil, err
	}

	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = DefaultAllowedOrigins
	}

	if len(cfg.Port) == 0 {
		cfg.Port = DefaultPort
	}

	if len(cfg.LogLevel) == 0 {
		cfg.LogLevel = DefaultLogLevel
	}

	if len(cfg.NERModel) == 0 {
		cfg.NERModel = DefaultNERModel
	}

	if len(cfg.DatabaseURL) == 0 || len(cfg.DatabaseKey) == 0 {
		return nil, ErrMissingStorageCredentials
	}

	return &cfg, nil
}

// Origins splits AllowedOrigins on commas, dropping blanks.
func (c *Config) Origins() []string {
	var origins []string
	for _, origin := range strings.Split(c.AllowedOrigins, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func (c *Config) ListenAddress() string {
	return net.JoinHostPort(c.Host, c.Port)
}
