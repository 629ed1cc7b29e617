package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so host settings cannot leak into a test
func clearEnv(t *testing.T) {
	t.Helper()

	keys := []string{
		"PORT", "SHUTDOWN_TIMEOUT",
		"INFORMATION_LEGACY_SHARED_RECORD",
		"LOG_LEVEL",
		"RATE_LIMIT", "RATE_LIMIT_PERIOD",
		"AUDIT_ENABLED", "AUDIT_TIMEOUT",
		"DATABASE_URL", "DATABASE_URL_FILE",
		"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER",
		"DB_PASSWORD", "DB_PASSWORD_FILE", "DB_SSLMODE",
		"DB_MAX_CONNECTIONS", "DB_MAX_IDLE_CONNECTIONS", "DB_CONNECTION_MAX_LIFETIME",
	}
	for _, key := range keys {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.False(t, cfg.Information.LegacySharedRecord)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, int64(100), cfg.RateLimit.Limit)
	assert.Equal(t, time.Minute, cfg.RateLimit.Period)
	assert.False(t, cfg.Audit.Enabled)
	assert.Equal(t, 2*time.Second, cfg.Audit.Timeout)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "information_dev", cfg.Database.Name)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("INFORMATION_LEGACY_SHARED_RECORD", "true")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("RATE_LIMIT", "5")
	t.Setenv("RATE_LIMIT_PERIOD", "30s")
	t.Setenv("AUDIT_ENABLED", "1")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/info")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.Information.LegacySharedRecord)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, int64(5), cfg.RateLimit.Limit)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Period)
	assert.True(t, cfg.Audit.Enabled)
	assert.Equal(t, "postgres://u:p@db:5432/info", cfg.Database.ConnectionString())
}

func TestLoad_MalformedValuesFallBackToDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("INFORMATION_LEGACY_SHARED_RECORD", "sometimes")
	t.Setenv("RATE_LIMIT", "lots")
	t.Setenv("RATE_LIMIT_PERIOD", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.Information.LegacySharedRecord)
	assert.Equal(t, int64(100), cfg.RateLimit.Limit)
	assert.Equal(t, time.Minute, cfg.RateLimit.Period)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:    ServerConfig{Port: "8080"},
			Logging:   LoggingConfig{Level: "info"},
			RateLimit: RateLimitConfig{Limit: 100, Period: time.Minute},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(_ *Config) {},
		},
		{
			name:    "empty port",
			mutate:  func(c *Config) { c.Server.Port = "" },
			wantErr: "PORT must not be empty",
		},
		{
			name:    "non-numeric port",
			mutate:  func(c *Config) { c.Server.Port = "http" },
			wantErr: `PORT must be numeric, got "http"`,
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "LOG_LEVEL must be one of trace, debug, info, warn, error",
		},
		{
			name:    "zero rate limit",
			mutate:  func(c *Config) { c.RateLimit.Limit = 0 },
			wantErr: "RATE_LIMIT must be positive",
		},
		{
			name:    "zero rate limit period",
			mutate:  func(c *Config) { c.RateLimit.Period = 0 },
			wantErr: "RATE_LIMIT_PERIOD must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestLoad_ValidationError(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "loud")

	_, err := Load()
	assert.Error(t, err)
}

func TestConnectionString(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db",
		Port:     "5433",
		User:     "u",
		Password: "p",
		Name:     "info",
		SSLMode:  "require",
	}

	assert.Equal(t, "host=db port=5433 user=u password=p dbname=info sslmode=require", d.ConnectionString())
}
