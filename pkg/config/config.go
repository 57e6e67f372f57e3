package config

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/just-nibble/folio-service/pkg/validator"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// Config is the complete service configuration. Every key can be set in the
// config file or through FOLIO_<SECTION>_<KEY> environment variables.
type Config struct {
	Env         string            `mapstructure:"env" json:"env" validate:"oneof=development production test"`
	HTTP        HTTPConfig        `mapstructure:"http" json:"http"`
	Database    DatabaseConfig    `mapstructure:"database" json:"database"`
	GitHub      GitHubConfig      `mapstructure:"github" json:"github"`
	Media       MediaConfig       `mapstructure:"media" json:"media"`
	Auth        AuthConfig        `mapstructure:"auth" json:"auth"`
	Logging     LoggingConfig     `mapstructure:"logging" json:"logging"`
	Preferences PreferencesConfig `mapstructure:"preferences" json:"preferences"`
}

type HTTPConfig struct {
	Port              string        `mapstructure:"port" json:"port" validate:"required"`
	CORSOrigins       []string      `mapstructure:"cors_origins" json:"cors_origins"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" json:"read_header_timeout"`
}

type DatabaseConfig struct {
	DSN             string        `mapstructure:"dsn" json:"dsn" validate:"required"`
	MaxOpenConns    int           `mapstructure:"max_open_conns" json:"max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" json:"conn_max_lifetime"`
	SlowThreshold   time.Duration `mapstructure:"slow_threshold" json:"slow_threshold"`
}

type GitHubConfig struct {
	Username string        `mapstructure:"username" json:"username"`
	Token    string        `mapstructure:"token" json:"token"`
	BaseURL  string        `mapstructure:"base_url" json:"base_url" validate:"required,url"`
	Timeout  time.Duration `mapstructure:"timeout" json:"timeout"`
}

// MediaConfig points at the hosted media CDN. Upload is disabled when
// CloudName or UploadPreset is empty.
type MediaConfig struct {
	BaseURL      string        `mapstructure:"base_url" json:"base_url" validate:"required,url"`
	CloudName    string        `mapstructure:"cloud_name" json:"cloud_name"`
	UploadPreset string        `mapstructure:"upload_preset" json:"upload_preset"`
	Timeout      time.Duration `mapstructure:"timeout" json:"timeout"`
}

type AuthConfig struct {
	JWTSecret     string        `mapstructure:"jwt_secret" json:"jwt_secret" validate:"required,min=32"`
	CookieName    string        `mapstructure:"cookie_name" json:"cookie_name" validate:"required"`
	CookieSecure  bool          `mapstructure:"cookie_secure" json:"cookie_secure"`
	SessionTTL    time.Duration `mapstructure:"session_ttl" json:"session_ttl"`
	AdminEmail    string        `mapstructure:"admin_email" json:"admin_email" validate:"omitempty,email"`
	AdminPassword string        `mapstructure:"admin_password" json:"admin_password"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level" json:"level"`
	Format string `mapstructure:"format" json:"format" validate:"oneof=json console"`
}

type PreferencesConfig struct {
	Path string `mapstructure:"path" json:"path"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Env: EnvDevelopment,
		HTTP: HTTPConfig{
			Port:              "8080",
			CORSOrigins:       []string{"http://localhost:3000"},
			ReadHeaderTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			DSN:             "host=localhost user=postgres password=password dbname=folio port=5432 sslmode=disable TimeZone=UTC",
			MaxOpenConns:    10,
			ConnMaxLifetime: 30 * time.Minute,
			SlowThreshold:   1500 * time.Millisecond,
		},
		GitHub: GitHubConfig{
			BaseURL: "https://api.github.com",
			Timeout: 10 * time.Second,
		},
		Media: MediaConfig{
			BaseURL: "https://api.cloudinary.com",
			Timeout: 2 * time.Minute,
		},
		Auth: AuthConfig{
			CookieName: "folio_auth",
			SessionTTL: 24 * time.Hour,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Preferences: PreferencesConfig{
			Path: "folio-preferences.yaml",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("env", d.Env)

	v.SetDefault("http.port", d.HTTP.Port)
	v.SetDefault("http.cors_origins", d.HTTP.CORSOrigins)
	v.SetDefault("http.read_header_timeout", d.HTTP.ReadHeaderTimeout)

	v.SetDefault("database.dsn", d.Database.DSN)
	v.SetDefault("database.max_open_conns", d.Database.MaxOpenConns)
	v.SetDefault("database.conn_max_lifetime", d.Database.ConnMaxLifetime)
	v.SetDefault("database.slow_threshold", d.Database.SlowThreshold)

	v.SetDefault("github.username", d.GitHub.Username)
	v.SetDefault("github.token", d.GitHub.Token)
	v.SetDefault("github.base_url", d.GitHub.BaseURL)
	v.SetDefault("github.timeout", d.GitHub.Timeout)

	v.SetDefault("media.base_url", d.Media.BaseURL)
	v.SetDefault("media.cloud_name", d.Media.CloudName)
	v.SetDefault("media.upload_preset", d.Media.UploadPreset)
	v.SetDefault("media.timeout", d.Media.Timeout)

	v.SetDefault("auth.jwt_secret", d.Auth.JWTSecret)
	v.SetDefault("auth.cookie_name", d.Auth.CookieName)
	v.SetDefault("auth.cookie_secure", d.Auth.CookieSecure)
	v.SetDefault("auth.session_ttl", d.Auth.SessionTTL)
	v.SetDefault("auth.admin_email", d.Auth.AdminEmail)
	v.SetDefault("auth.admin_password", d.Auth.AdminPassword)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)

	v.SetDefault("preferences.path", d.Preferences.Path)
}

// Load reads .env (if present), the optional config file at path and FOLIO_*
// environment variables, in increasing order of precedence.
func Load(path string) (cfg Config, err error) {
	_ = godotenv.Load() // missing .env is fine

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("FOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err = v.ReadInConfig(); err != nil {
			err = errors.Wrapf(err, "failed to read config file: %s", path)
			return cfg, err
		}
	}

	if err = v.Unmarshal(&cfg); err != nil {
		err = errors.Wrap(err, "failed to decode configuration")
		return cfg, err
	}

	if cfg.Auth.JWTSecret == "" && cfg.Env != EnvProduction {
		cfg.Auth.JWTSecret, err = randomSecret()
		if err != nil {
			return cfg, err
		}
	}

	if err = cfg.Validate(); err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, nil
}

// Validate checks the struct tags of every section.
func (c *Config) Validate() error {
	return validator.Struct(c)
}

// RequireGitHub fails when no GitHub user is configured. Only the commands
// that read from GitHub call it.
func (c *Config) RequireGitHub() error {
	if strings.TrimSpace(c.GitHub.Username) == "" {
		err := &validator.ValidationError{Fields: map[string]string{"username": "username is required"}}
		return errors.Wrap(err, "github configuration incomplete")
	}
	return nil
}

// UploadEnabled reports whether media credentials are configured.
func (c *Config) UploadEnabled() bool {
	return c.Media.CloudName != "" && c.Media.UploadPreset != ""
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "failed to generate session secret")
	}
	return hex.EncodeToString(b), nil
}
