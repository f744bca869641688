package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, DefaultMaxUploadBytes, cfg.MaxUploadBytes)
	assert.Equal(t, DefaultAllowedExts, cfg.AllowedExts)
	assert.Equal(t, "https://www.google.com", cfg.RedirectBaseURL)
	assert.False(t, cfg.AdminEnabled())
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cardserv.toml")
	contents := `
addr = ":9090"
upload_dir = "/srv/uploads"
allowed_exts = ["png"]
redirect_base_url = "https://duckduckgo.com/"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	t.Setenv("UPLOAD_DIR", "/tmp/override")
	t.Setenv("ALLOWED_EXTS", " JPG, ,Png ")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "/tmp/override", cfg.UploadDir)
	assert.Equal(t, []string{"jpg", "png"}, cfg.AllowedExts)
	assert.Equal(t, int64(1024), cfg.MaxUploadBytes)
	assert.Equal(t, "https://duckduckgo.com", cfg.RedirectBaseURL)
}

func TestLoadRejectsAdminWithoutSecret(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := Load("")
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestValidateMaxUploadBytes(t *testing.T) {
	cfg := Default()
	cfg.MaxUploadBytes = 0
	assert.Error(t, cfg.Validate())
}

func TestLoadMissingTomlFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
