package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Logger      LoggerConfig    `mapstructure:"logger"`
	Credits     CreditsConfig   `mapstructure:"credits"`
	Identity    IdentityConfig  `mapstructure:"identity"`
	Payment     PaymentConfig   `mapstructure:"payment"`
	Reconcile   ReconcileConfig `mapstructure:"reconcile"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// CreditsConfig contains ledger behavior settings
type CreditsConfig struct {
	InitialBalance string   `mapstructure:"initialBalance"`
	AdminGroups    []string `mapstructure:"adminGroups"`
}

// IdentityConfig contains settings for the membership/session service
type IdentityConfig struct {
	BaseURL     string        `mapstructure:"baseUrl"`
	AccessToken string        `mapstructure:"accessToken"`
	Timeout     time.Duration `mapstructure:"timeout"` // seconds
}

// PaymentConfig contains payment processor settings
type PaymentConfig struct {
	SecretKey      string        `mapstructure:"secretKey"`
	BaseURL        string        `mapstructure:"baseUrl"`
	Timeout        time.Duration `mapstructure:"timeout"` // seconds
	MinAmountCents int64         `mapstructure:"minAmountCents"`
	MaxAmountCents int64         `mapstructure:"maxAmountCents"`
}

// ReconcileConfig contains settings for the balance reconciliation job
type ReconcileConfig struct {
	Interval     time.Duration `mapstructure:"interval"` // minutes
	RunAtStartup bool          `mapstructure:"runAtStartup"`
}
