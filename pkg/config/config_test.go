package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FOLIO_GITHUB_USERNAME", "octocat")
	t.Setenv("FOLIO_HTTP_PORT", "9090")
	t.Setenv("FOLIO_HTTP_CORS_ORIGINS", "https://a.example.com,https://b.example.com")
	t.Setenv("FOLIO_AUTH_SESSION_TTL", "2h")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "octocat", cfg.GitHub.Username)
	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, 2*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, "https://api.github.com", cfg.GitHub.BaseURL)
	assert.Len(t, cfg.Auth.JWTSecret, 64, "development secret is generated")
	assert.False(t, cfg.UploadEnabled())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "folio.yaml")
	content := []byte(`
github:
  username: file-user
media:
  cloud_name: demo
  upload_preset: unsigned
logging:
  level: debug
  format: json
`)
	require.NoError(t, os.WriteFile(path, content, 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-user", cfg.GitHub.Username)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.UploadEnabled())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/folio.yaml")
	assert.Error(t, err)
}

func TestLoadWithoutUsername(t *testing.T) {
	t.Setenv("FOLIO_GITHUB_USERNAME", "")

	cfg, err := Load("")
	require.NoError(t, err)

	err = cfg.RequireGitHub()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "username is required")
}

func TestRequireGitHub(t *testing.T) {
	cfg := Default()
	cfg.GitHub.Username = "octocat"
	assert.NoError(t, cfg.RequireGitHub())

	cfg.GitHub.Username = "   "
	assert.Error(t, cfg.RequireGitHub())
}

func TestProductionRequiresSecret(t *testing.T) {
	t.Setenv("FOLIO_GITHUB_USERNAME", "octocat")
	t.Setenv("FOLIO_ENV", EnvProduction)

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt_secret is required")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "bad env", mutate: func(c *Config) { c.Env = "staging" }, wantErr: true},
		{name: "short secret", mutate: func(c *Config) { c.Auth.JWTSecret = "short" }, wantErr: true},
		{name: "bad admin email", mutate: func(c *Config) { c.Auth.AdminEmail = "nope" }, wantErr: true},
		{name: "bad log format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.GitHub.Username = "octocat"
			cfg.Auth.JWTSecret = "0123456789abcdef0123456789abcdef"
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
