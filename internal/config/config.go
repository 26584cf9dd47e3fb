// Package config loads the application configuration.
//
// Everything the process reads from its environment is gathered here, once,
// into a Config value that main passes down to constructors. No other package
// calls os.Getenv.
package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	ObjectStore ObjectStoreConfig `yaml:"object_store"`
	CDN         CDNConfig         `yaml:"cdn"`
	Log         LogConfig         `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"PORT"                    env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"15s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"30s"`
	// MaxBodyBytes bounds request bodies; photo uploads arrive base64-encoded.
	MaxBodyBytes int64 `yaml:"max_body_bytes" env:"SERVER_MAX_BODY_BYTES" env-default:"15728640"`
}

// Database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DatabaseConfig selects and configures the relational store.
//
// With Driver "postgres", DSN is a PostgreSQL connection string. With
// "sqlite", DSN is a file path or ":memory:".
type DatabaseConfig struct {
	Driver          string        `yaml:"driver"             env:"DATABASE_DRIVER"             env-default:"postgres"`
	DSN             string        `yaml:"dsn"                env:"DATABASE_URL"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"0"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// ObjectStoreConfig points at the S3-compatible bucket photos go to.
// Leaving AccessKey empty disables uploads; the rest of the API still runs.
type ObjectStoreConfig struct {
	Endpoint  string `yaml:"endpoint"   env:"S3_ENDPOINT"           env-default:"https://bucket.poehali.dev"`
	Region    string `yaml:"region"     env:"S3_REGION"             env-default:"us-east-1"`
	Bucket    string `yaml:"bucket"     env:"S3_BUCKET"             env-default:"files"`
	AccessKey string `yaml:"access_key" env:"AWS_ACCESS_KEY_ID"`
	SecretKey string `yaml:"secret_key" env:"AWS_SECRET_ACCESS_KEY"`
}

// Enabled reports whether credentials were provided.
func (o ObjectStoreConfig) Enabled() bool {
	return o.AccessKey != ""
}

// CDNConfig builds public photo URLs: <BaseURL>/<AccountID>/bucket/<key>.
type CDNConfig struct {
	BaseURL string `yaml:"base_url" env:"CDN_BASE_URL" env-default:"https://cdn.poehali.dev/projects"`
	// AccountID falls back to the object store access key when empty, which
	// is how the hosting platform names project buckets.
	AccountID string `yaml:"account_id" env:"CDN_ACCOUNT_ID"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
