package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(kv map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := kv[k]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadWith(env(map[string]string{"TW_API_URL": "http://localhost:8000"}))
	require.NoError(t, err)

	want := Default()
	want.APIURL = "http://localhost:8000"
	assert.Equal(t, want, cfg)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.False(t, cfg.Development())
}

func TestLoadRequiresAPIURL(t *testing.T) {
	_, err := LoadWith(env(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TW_API_URL")
}

func TestLoadEnvOverrides(t *testing.T) {
	cfg, err := LoadWith(env(map[string]string{
		"TW_API_URL":          "https://api.example.com",
		"PORT":                "8080",
		"MATCH_POLL_INTERVAL": "5s",
		"UPSTREAM_TIMEOUT":    "1m",
		"LOG_LEVEL":           "debug",
		"APP_ENV":             "Development",
		"CORS_ALLOW_ORIGINS":  "https://mats.example.com",
		"TW_BRACKET_BASE_URL": "https://brackets.example.com/tw/",
	}))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.MatchPollInterval)
	assert.Equal(t, time.Minute, cfg.UpstreamTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Development())
	assert.Equal(t, "https://mats.example.com", cfg.CORSAllowOrigins)
	assert.Equal(t, "https://brackets.example.com/tw/", cfg.BracketBaseURL)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	_, err := LoadWith(env(map[string]string{"TW_API_URL": "http://x", "MATCH_POLL_INTERVAL": "soon"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MATCH_POLL_INTERVAL")

	_, err = LoadWith(env(map[string]string{"TW_API_URL": "http://x", "UPSTREAM_TIMEOUT": "-1s"}))
	assert.Error(t, err)
}

func TestLoadYAMLFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twviewer.yaml")
	body := "api_url: https://from-file.example.com\nport: \"4000\"\nmatch_poll_interval: 30s\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := LoadWith(env(map[string]string{"CONFIG_FILE": path, "PORT": "5000"}))
	require.NoError(t, err)
	assert.Equal(t, "https://from-file.example.com", cfg.APIURL)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.MatchPollInterval)
	assert.Equal(t, 12*time.Second, cfg.UpstreamTimeout)
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := LoadWith(env(map[string]string{"CONFIG_FILE": filepath.Join(t.TempDir(), "nope.yaml"), "TW_API_URL": "http://x"}))
	assert.Error(t, err)
}

func TestLoadDotEnvSkippedOnRender(t *testing.T) {
	t.Setenv("RENDER", "true")
	assert.NoError(t, LoadDotEnv())
}
