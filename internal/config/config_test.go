package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearLegacyEnv blanks variables a developer shell might carry.
func clearLegacyEnv(t *testing.T) {
	for _, key := range []string{"PORT", "SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS", "TO_EMAIL", "ADMIN_USERNAME", "ADMIN_PASSWORD"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	clearLegacyEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "portfolio.db", cfg.DBPath)
	assert.Equal(t, 24*time.Hour, cfg.Admin.SessionTTL)
	assert.Equal(t, "5", cfg.Guestbook.MaxComments)
	assert.NoError(t, cfg.Validate())
	assert.False(t, cfg.SMTPConfigured())
}

func TestLoadFileThenEnv(t *testing.T) {
	clearLegacyEnv(t)

	path := filepath.Join(t.TempDir(), "portfolio.yml")
	yml := `
addr: ":9000"
db_path: /tmp/guestbook.db
allowed_origins:
  - https://example.com
admin:
  username: ole
  session_ttl: 2h
guestbook:
  base_url: https://example.com
  timeout: 5s
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	t.Setenv("PORTFOLIO_DB_PATH", "/var/lib/portfolio.db")
	t.Setenv("PORTFOLIO_SMTP__USER", "me@example.com")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "/var/lib/portfolio.db", cfg.DBPath)
	assert.Equal(t, []string{"https://example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, "ole", cfg.Admin.Username)
	assert.Equal(t, 2*time.Hour, cfg.Admin.SessionTTL)
	assert.Equal(t, 5*time.Second, cfg.Guestbook.Timeout)
	assert.Equal(t, "me@example.com", cfg.SMTP.User)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTP.Host)
}

func TestLegacyEnvWins(t *testing.T) {
	clearLegacyEnv(t)
	t.Setenv("PORT", "3000")
	t.Setenv("SMTP_USER", "user")
	t.Setenv("SMTP_PASS", "pass")
	t.Setenv("ADMIN_PASSWORD", "s3cret")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.Addr)
	assert.True(t, cfg.SMTPConfigured())
	assert.Equal(t, "s3cret", cfg.Admin.Password)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "empty addr", mutate: func(c *Config) { c.Addr = "" }},
		{name: "empty db path", mutate: func(c *Config) { c.DBPath = "" }},
		{name: "negative shutdown", mutate: func(c *Config) { c.ShutdownTimeout = -time.Second }},
		{name: "no admin user", mutate: func(c *Config) { c.Admin.Username = "" }},
		{name: "zero session ttl", mutate: func(c *Config) { c.Admin.SessionTTL = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
