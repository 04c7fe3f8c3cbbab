package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	// Given
	t.Chdir(t.TempDir())

	// When
	cfg, err := LoadConfig("")

	// Then
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "", cfg.Server.BasePath)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, SourceDir, cfg.Fixtures.Source)
	assert.Equal(t, "data", cfg.Fixtures.Dir)
	assert.Equal(t, 30*time.Second, cfg.Fixtures.LoadTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfig_FileThenEnv(t *testing.T) {
	// Given
	path := writeConfig(t, `server:
  port: 9090
  basePath: /bureau-dashboard/
fixtures:
  source: s3
  bucket: from-file
  prefix: exports/2025-11
  loadTimeout: 5s
logging:
  level: debug`)
	t.Setenv("DASHBOARD_FIXTURES_BUCKET", "from-env")

	// When
	cfg, err := LoadConfig(path)

	// Then
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/bureau-dashboard", cfg.Server.BasePath)
	assert.Equal(t, SourceS3, cfg.Fixtures.Source)
	assert.Equal(t, "from-env", cfg.Fixtures.Bucket)
	assert.Equal(t, "exports/2025-11", cfg.Fixtures.Prefix)
	assert.Equal(t, 5*time.Second, cfg.Fixtures.LoadTimeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown source", content: "fixtures:\n  source: ftp"},
		{name: "http without base url", content: "fixtures:\n  source: http"},
		{name: "s3 without bucket", content: "fixtures:\n  source: s3"},
		{name: "bad port", content: "server:\n  port: 70000"},
		{name: "invalid yaml", content: "server: port: : 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestNormalizeBasePath(t *testing.T) {
	tests := map[string]string{
		"":                   "",
		"/":                  "",
		"bureau":             "/bureau",
		"/bureau/":           "/bureau",
		" /a/b/ ":            "/a/b",
		"/bureau-dashboard/": "/bureau-dashboard",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeBasePath(in), in)
	}
}
