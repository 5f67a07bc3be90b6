package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withConfigPath(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "config.json")
	prev := configPath
	SetPath(path)
	t.Cleanup(func() { SetPath(prev) })
	return path
}

func TestConfigLoad_WritesDefaultsOnFirstRun(t *testing.T) {
	path := withConfigPath(t)

	require.NoError(t, ConfigLoad())

	cfg := ConfigGet()
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, 3*time.Second, cfg.MessageTTL)
	assert.True(t, cfg.UseColor)
	_, err := os.Stat(path)
	assert.NoError(t, err, "default config should be persisted")
}

func TestConfigLoad_KeepsDefaultsForMissingKeys(t *testing.T) {
	path := withConfigPath(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(`{"api_url":"http://localhost:9000/api"}`), 0644))

	require.NoError(t, ConfigLoad())

	cfg := ConfigGet()
	assert.Equal(t, "http://localhost:9000/api", cfg.APIURL)
	assert.Equal(t, "commands.log", cfg.CommandLog)
}

func TestConfigLoad_EnvOverrides(t *testing.T) {
	withConfigPath(t)
	t.Setenv("GUILD_API_URL", "http://stub.local/api")
	t.Setenv("GUILD_HTTP_TIMEOUT", "5s")
	t.Setenv("GUILD_NO_COLOR", "true")

	require.NoError(t, ConfigLoad())

	cfg := ConfigGet()
	assert.Equal(t, "http://stub.local/api", cfg.APIURL)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.False(t, cfg.UseColor)
}

func TestConfigLoad_BadEnv(t *testing.T) {
	withConfigPath(t)
	t.Setenv("GUILD_HTTP_TIMEOUT", "soon")

	err := ConfigLoad()
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "parse env:"))
}

func TestConfigLoad_MalformedFile(t *testing.T) {
	path := withConfigPath(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

	err := ConfigLoad()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing config file")
}
