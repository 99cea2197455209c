package config

import (
	"fmt"
	"slices"
)

// Supported store drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be > 0 (got %d)", c.Server.MaxBodyBytes)
	}

	if !slices.Contains([]string{DriverPostgres, DriverSQLite}, c.Database.Driver) {
		return fmt.Errorf("database.driver must be %q or %q (got %q)", DriverPostgres, DriverSQLite, c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}

	if err := c.Providers.validate(); err != nil {
		return fmt.Errorf("providers: %w", err)
	}

	if c.Chat.LogTimeout <= 0 {
		return fmt.Errorf("chat.log_timeout must be > 0 (got %v)", c.Chat.LogTimeout)
	}
	if c.Chat.RetentionDays < 1 {
		return fmt.Errorf("chat.retention_days must be >= 1 (got %d)", c.Chat.RetentionDays)
	}

	return nil
}

func (p *ProvidersConfig) validate() error {
	if _, ok := p.ByName()[p.Default]; !ok {
		return fmt.Errorf("default provider %q is not supported", p.Default)
	}
	if p.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", p.Timeout)
	}
	return nil
}
