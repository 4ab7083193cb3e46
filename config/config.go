// Package config loads server settings: defaults, then an optional YAML file named by
// CONFIG_FILE, then environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port              string        `yaml:"port"`
	APIURL            string        `yaml:"api_url"`
	LogoBaseURL       string        `yaml:"logo_base_url"`
	BracketBaseURL    string        `yaml:"bracket_base_url"`
	MatchPollInterval time.Duration `yaml:"match_poll_interval"`
	UpstreamTimeout   time.Duration `yaml:"upstream_timeout"`
	LogLevel          string        `yaml:"log_level"`
	Env               string        `yaml:"env"`
	CORSAllowOrigins  string        `yaml:"cors_allow_origins"`
}

func Default() Config {
	return Config{
		Port:              "3000",
		LogoBaseURL:       "https://www.trackwrestling.com",
		BracketBaseURL:    "https://www.trackwrestling.com/tw/",
		MatchPollInterval: 20 * time.Second,
		UpstreamTimeout:   12 * time.Second,
		LogLevel:          "info",
		CORSAllowOrigins:  "*",
	}
}

// LoadDotEnv reads .env unless running on Render, where the dashboard sets the environment.
// A missing file is not an error.
func LoadDotEnv() error {
	if os.Getenv("RENDER") != "" {
		return nil
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

func Load() (Config, error) {
	return LoadWith(os.LookupEnv)
}

// LoadWith is Load with the environment supplied by lookup.
func LoadWith(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if path, ok := lookup("CONFIG_FILE"); ok && path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(lookup); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	dur := func(key string, dst *time.Duration) error {
		v, ok := lookup(key)
		if !ok || strings.TrimSpace(v) == "" {
			return nil
		}
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = d
		return nil
	}

	str("PORT", &c.Port)
	str("TW_API_URL", &c.APIURL)
	str("TW_LOGO_BASE_URL", &c.LogoBaseURL)
	str("TW_BRACKET_BASE_URL", &c.BracketBaseURL)
	str("LOG_LEVEL", &c.LogLevel)
	str("APP_ENV", &c.Env)
	str("CORS_ALLOW_ORIGINS", &c.CORSAllowOrigins)
	if err := dur("MATCH_POLL_INTERVAL", &c.MatchPollInterval); err != nil {
		return err
	}
	return dur("UPSTREAM_TIMEOUT", &c.UpstreamTimeout)
}

func (c Config) Validate() error {
	if c.APIURL == "" {
		return errors.New("TW_API_URL environment variable not set")
	}
	if c.Port == "" {
		return errors.New("PORT environment variable not set")
	}
	if c.MatchPollInterval <= 0 {
		return fmt.Errorf("match poll interval must be positive, got %s", c.MatchPollInterval)
	}
	if c.UpstreamTimeout <= 0 {
		return fmt.Errorf("upstream timeout must be positive, got %s", c.UpstreamTimeout)
	}
	return nil
}

func (c Config) Development() bool {
	return strings.EqualFold(c.Env, "development")
}

func (c Config) Addr() string {
	return ":" + c.Port
}
