package config

import (
	"fmt"
	"net/url"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn (DATABASE_URL) is required for the postgres driver")
		}
	case DriverSQLite:
	default:
		return fmt.Errorf("database.driver must be %q or %q (got %q)", DriverPostgres, DriverSQLite, c.Database.Driver)
	}

	if c.Database.MaxConns < 1 {
		return fmt.Errorf("database.max_conns must be >= 1 (got %d)", c.Database.MaxConns)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535 (got %d)", c.Server.Port)
	}

	if c.ObjectStore.Enabled() {
		if c.ObjectStore.SecretKey == "" {
			return fmt.Errorf("object_store.secret_key (AWS_SECRET_ACCESS_KEY) is required when an access key is set")
		}
		if _, err := url.ParseRequestURI(c.ObjectStore.Endpoint); err != nil {
			return fmt.Errorf("object_store.endpoint: %w", err)
		}
		if c.ObjectStore.Bucket == "" {
			return fmt.Errorf("object_store.bucket is required")
		}
	}

	return nil
}
