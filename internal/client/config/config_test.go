package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate resets process-wide inputs the loaders read.
func isolate(t *testing.T, args ...string) {
	t.Helper()
	origArgs, origEnvFile := os.Args, envFile
	t.Cleanup(func() { os.Args, envFile = origArgs, origEnvFile })

	os.Args = append([]string{"testbin"}, args...)
	envFile = filepath.Join(t.TempDir(), "missing.env")
	for _, k := range []string{EnvAPIURL, EnvDatabasePath, EnvRequestTimeout, EnvLogLevel} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:3001/api", c.APIBaseURL)
	assert.Equal(t, "recruit.db", c.DatabasePath)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_DefaultsOnly(t *testing.T) {
	isolate(t)

	cfg := LoadConfig()
	require.NotNil(t, cfg)

	var want Config
	want.LoadDefaults()
	assert.Equal(t, want, *cfg)
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeTempJSON(t, "", "", map[string]any{
		"database_path":   "json.db",
		"request_timeout": "30s",
		"log_level":       "warn",
	})
	isolate(t, "-c", path, "-l", "debug")
	t.Setenv(EnvAPIURL, "http://env:1/api")
	t.Setenv(EnvDatabasePath, "env.db")

	cfg := LoadConfig()

	assert.Equal(t, "http://env:1/api", cfg.APIBaseURL)
	assert.Equal(t, "json.db", cfg.DatabasePath)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}
