package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/hpgl2dxf/pkg/dxf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "hpgl2dxf.yaml", `
footer: "ENDSEC\n0\nEOF\n"
debug: true
port: 9090
cache_ttl: 30m
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, dxf.DefaultHeader, cfg.Header, "unset keys keep defaults")
	assert.Equal(t, "ENDSEC\n0\nEOF\n", cfg.Footer)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "9090", cfg.Port, "numbers are weakly decoded into strings")
	assert.Equal(t, 30*time.Minute, cfg.CacheTTL)
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"redis_addr": "localhost:6379", "log_level": "warn"}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingFiles(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err, "missing default file falls back to defaults")
	assert.Equal(t, Default(), cfg)

	_, err = Load("does-not-exist.yaml")
	assert.ErrorContains(t, err, "failed to read config")
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(writeFile(t, "bad.yaml", "debug: [1, 2"))
	assert.ErrorContains(t, err, "failed to parse bad.yaml")

	_, err = Load(writeFile(t, "unknown.yaml", "colour: red"))
	assert.ErrorContains(t, err, "invalid config")
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeFile(t, "hpgl2dxf.yaml", "debug: false\n")
	t.Setenv("HPGL2DXF_DEBUG", "true")
	t.Setenv("HPGL2DXF_HEADER", `0\nSECTION\n`)
	t.Setenv("HPGL2DXF_UNRELATED", "ignored")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "0\nSECTION\n", cfg.Header)
}

func TestConfig_Document(t *testing.T) {
	cfg := Default()
	assert.Equal(t, dxf.DefaultDocument(), cfg.Document())
}

func TestLoad_NullDocument(t *testing.T) {
	t.Setenv("HPGL2DXF_DEBUG", "true")

	for _, name := range []string{"null.json", "null.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, name, "null")

			var cfg Config
			var err error
			require.NotPanics(t, func() { cfg, err = Load(path) })
			require.NoError(t, err)
			assert.True(t, cfg.Debug)
		})
	}
}

func TestLoad_NumericCacheTTL(t *testing.T) {
	t.Run("JSON seconds", func(t *testing.T) {
		cfg, err := Load(writeFile(t, "config.json", `{"cache_ttl": 3600}`))
		require.NoError(t, err)
		assert.Equal(t, time.Hour, cfg.CacheTTL)
	})

	t.Run("YAML seconds", func(t *testing.T) {
		cfg, err := Load(writeFile(t, "hpgl2dxf.yaml", "cache_ttl: 90\n"))
		require.NoError(t, err)
		assert.Equal(t, 90*time.Second, cfg.CacheTTL)
	})

	t.Run("Fractional seconds", func(t *testing.T) {
		cfg, err := Load(writeFile(t, "config.json", `{"cache_ttl": 1.5}`))
		require.NoError(t, err)
		assert.Equal(t, 1500*time.Millisecond, cfg.CacheTTL)
	})

	t.Run("Env string", func(t *testing.T) {
		t.Setenv("HPGL2DXF_CACHE_TTL", "2m")
		cfg, err := Load(writeFile(t, "config.json", `{}`))
		require.NoError(t, err)
		assert.Equal(t, 2*time.Minute, cfg.CacheTTL)
	})
}
