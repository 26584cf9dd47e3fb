package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

func TestLoad_EnvDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/plants")
	t.Setenv("AWS_ACCESS_KEY_ID", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "postgres://u:p@localhost:5432/plants", cfg.Database.DSN)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "files", cfg.ObjectStore.Bucket)
	assert.Equal(t, "https://bucket.poehali.dev", cfg.ObjectStore.Endpoint)
	assert.Equal(t, "https://cdn.poehali.dev/projects", cfg.CDN.BaseURL)
	assert.False(t, cfg.ObjectStore.Enabled())
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_CDNAccountFallsBackToAccessKey(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATABASE_URL", "postgres://localhost/plants")
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIA123")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	t.Setenv("CDN_ACCOUNT_ID", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.ObjectStore.Enabled())
	assert.Equal(t, "AKIA123", cfg.CDN.AccountID)
}

func TestLoad_SQLiteNeedsNoDSN(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "data/plants.db", cfg.Database.DSN)
}

func TestLoad_YAML(t *testing.T) {
	path := writeYAML(t, `
server:
  port: 9090
database:
  driver: sqlite
  dsn: ":memory:"
log:
  level: debug
  format: json
`)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, ":memory:", cfg.Database.DSN)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:   ServerConfig{Port: 8080},
			Database: DatabaseConfig{Driver: DriverPostgres, DSN: "postgres://localhost/plants", MaxConns: 5},
			ObjectStore: ObjectStoreConfig{
				Endpoint: "https://bucket.example.com",
				Bucket:   "files",
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }, true},
		{"postgres without dsn", func(c *Config) { c.Database.DSN = "" }, true},
		{"zero max conns", func(c *Config) { c.Database.MaxConns = 0 }, true},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, true},
		{"access key without secret", func(c *Config) { c.ObjectStore.AccessKey = "AKIA" }, true},
		{"full credentials", func(c *Config) {
			c.ObjectStore.AccessKey = "AKIA"
			c.ObjectStore.SecretKey = "s"
		}, false},
		{"bad endpoint", func(c *Config) {
			c.ObjectStore.AccessKey = "AKIA"
			c.ObjectStore.SecretKey = "s"
			c.ObjectStore.Endpoint = "not a url"
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
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
