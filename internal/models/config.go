package models

import "time"

// Config represents the application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Formance FormanceConfig
	Log      LogConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Path            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	PingTimeout     time.Duration
	SeedFile        string // empty means the embedded seed data
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Addr           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	AllowedOrigins []string
}

// FormanceConfig holds the optional journal mirror settings.
// The mirror is disabled when StackURL is empty.
type FormanceConfig struct {
	StackURL     string
	ClientID     string
	ClientSecret string
	LedgerName   string
	Currency     string
}

// Enabled reports whether the Formance mirror is configured
func (c FormanceConfig) Enabled() bool {
	return c.StackURL != ""
}

// LogConfig holds logger settings
type LogConfig struct {
	Level string
}
