package config

import (
	"fmt"
	"net/url"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Addr       string `env:"GEOLOG_ADDR" envDefault:":8000"`
	BackendURL string `env:"GEOLOG_BACKEND_URL" envDefault:"http://localhost:8080"`
	// WebDir holds web/app.wasm and the static assets under web/.
	WebDir     string `env:"GEOLOG_WEB_DIR" envDefault:"."`
	Branding   BrandingConfig
}

type BrandingConfig struct {
	AppName     string `env:"GEOLOG_APP_NAME" envDefault:"GeoLog"`
	ThemeColor  string `env:"GEOLOG_THEME_COLOR" envDefault:"#2d5b3a"`
	Description string `env:"GEOLOG_DESCRIPTION" envDefault:"Borehole logging for site investigation projects"`
}

// Load reads the environment, then lets non-empty flags override it.
func Load(flagAddr, flagBackendURL string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if flagAddr != "" {
		cfg.Addr = flagAddr
	}
	if flagBackendURL != "" {
		cfg.BackendURL = flagBackendURL
	}
	if _, err := cfg.Backend(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Backend is the parsed BackendURL.
func (c Config) Backend() (*url.URL, error) {
	u, err := url.Parse(c.BackendURL)
	if err != nil {
		return nil, fmt.Errorf("backend url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("backend url %q: scheme and host required", c.BackendURL)
	}
	return u, nil
}
