package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix namespaces environment overrides, e.g. PORTFOLIO_DB_PATH or
// PORTFOLIO_SMTP__HOST (double underscore nests).
const EnvPrefix = "PORTFOLIO_"

type Config struct {
	Addr            string        `koanf:"addr"`
	DBPath          string        `koanf:"db_path"`
	ImagesDir       string        `koanf:"images_dir"`
	StaticDir       string        `koanf:"static_dir"`
	AllowedOrigins  []string      `koanf:"allowed_origins"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Debug           bool          `koanf:"debug"`

	Admin     AdminConfig     `koanf:"admin"`
	SMTP      SMTPConfig      `koanf:"smtp"`
	Guestbook GuestbookConfig `koanf:"guestbook"`
}

type AdminConfig struct {
	Username     string        `koanf:"username"`
	Password     string        `koanf:"password"`
	PasswordHash string        `koanf:"password_hash"` // bcrypt, wins over Password
	SessionTTL   time.Duration `koanf:"session_ttl"`
}

type SMTPConfig struct {
	Host string `koanf:"host"`
	Port string `koanf:"port"`
	User string `koanf:"user"`
	Pass string `koanf:"pass"`
	To   string `koanf:"to"`
}

// GuestbookConfig configures the terminal guestbook client.
type GuestbookConfig struct {
	BaseURL     string        `koanf:"base_url"`
	Timeout     time.Duration `koanf:"timeout"`
	MaxComments string        `koanf:"max_comments"`
}

func DefaultConfig() *Config {
	return &Config{
		Addr:            ":8080",
		DBPath:          "portfolio.db",
		ImagesDir:       "./images",
		StaticDir:       "./static",
		ShutdownTimeout: 10 * time.Second,
		Admin: AdminConfig{
			Username:   "admin",
			SessionTTL: 24 * time.Hour,
		},
		SMTP: SMTPConfig{
			Host: "smtp.gmail.com",
			Port: "587",
		},
		Guestbook: GuestbookConfig{
			BaseURL:     "http://localhost:8080",
			Timeout:     30 * time.Second,
			MaxComments: "5",
		},
	}
}

// Load reads defaults, then the YAML file at path if it exists, then
// PORTFOLIO_* variables, then the plain variables older deployments use.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	applyLegacyEnv(cfg)
	return cfg, nil
}

// applyLegacyEnv honours PORT, SMTP_*, TO_EMAIL and ADMIN_* when set.
func applyLegacyEnv(cfg *Config) {
	if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	set := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	set(&cfg.SMTP.Host, "SMTP_HOST")
	set(&cfg.SMTP.Port, "SMTP_PORT")
	set(&cfg.SMTP.User, "SMTP_USER")
	set(&cfg.SMTP.Pass, "SMTP_PASS")
	set(&cfg.SMTP.To, "TO_EMAIL")
	set(&cfg.Admin.Username, "ADMIN_USERNAME")
	set(&cfg.Admin.Password, "ADMIN_PASSWORD")
}

// Validate checks values the server cannot start without.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	if c.ShutdownTimeout < 0 {
		return fmt.Errorf("shutdown_timeout must be non-negative")
	}
	if c.Admin.Username == "" {
		return fmt.Errorf("admin.username is required")
	}
	if c.Admin.SessionTTL <= 0 {
		return fmt.Errorf("admin.session_ttl must be positive")
	}
	return nil
}

// SMTPConfigured reports whether contact mail can be sent.
func (c *Config) SMTPConfigured() bool {
	return c.SMTP.User != "" && c.SMTP.Pass != ""
}
