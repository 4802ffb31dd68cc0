package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	DefaultPublicPath    = "./public"
	DefaultAddr          = ":8080"
	DefaultFallbackCity  = "Portugal"
	DefaultFallbackCover = "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=600&h=400&fit=crop"
	DefaultLocale        = "en"
	DefaultLogLevel      = "info"
	DefaultGinMode       = "release"
)

// Config holds everything the service needs. Values come from, in increasing
// precedence: defaults, an optional site file (yaml or toml), .env and the
// process environment.
type Config struct {
	PublicPath    string `yaml:"public_path" toml:"public_path" env:"PUBLIC_PATH"`
	Addr          string `yaml:"addr" toml:"addr" env:"ADDR"`
	FallbackCity  string `yaml:"fallback_city" toml:"fallback_city" env:"FALLBACK_CITY"`
	FallbackCover string `yaml:"fallback_cover" toml:"fallback_cover" env:"FALLBACK_COVER"`
	Locale        string `yaml:"locale" toml:"locale" env:"LOCALE"`
	LogLevel      string `yaml:"log_level" toml:"log_level" env:"LOG_LEVEL"`
	GinMode       string `yaml:"gin_mode" toml:"gin_mode" env:"GIN_MODE"`
	ServeStatic   bool   `yaml:"serve_static" toml:"serve_static" env:"SERVE_STATIC"`
}

func Default() *Config {
	return &Config{
		PublicPath:    DefaultPublicPath,
		Addr:          DefaultAddr,
		FallbackCity:  DefaultFallbackCity,
		FallbackCover: DefaultFallbackCover,
		Locale:        DefaultLocale,
		LogLevel:      DefaultLogLevel,
		GinMode:       DefaultGinMode,
		ServeStatic:   true,
	}
}

// Load builds a Config. siteFile may be empty; a named file that does not
// exist is an error, a missing .env is not.
func Load(siteFile string) (*Config, error) {
	cfg := Default()

	if siteFile != "" {
		if err := cfg.loadFile(siteFile); err != nil {
			return nil, err
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, c)
	case ".toml":
		err = toml.Unmarshal(content, c)
	default:
		return fmt.Errorf("%w: unsupported config format %q", ErrInvalidConfig, filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrInvalidConfig, path, err)
	}
	return nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.PublicPath) == "" {
		return fmt.Errorf("%w: public_path is empty", ErrInvalidConfig)
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("%w: locale %q: %v", ErrInvalidConfig, c.Locale, err)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q: %v", ErrInvalidConfig, c.LogLevel, err)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("%w: gin_mode %q", ErrInvalidConfig, c.GinMode)
	}
	return nil
}

// Tag returns the collation language for locale-aware sorting.
func (c *Config) Tag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und
	}
	return tag
}
