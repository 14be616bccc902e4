package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	return &Config{
		Driver:        "postgres",
		Host:          "localhost",
		Port:          5432,
		Username:      "credits",
		Database:      "credits",
		SSLMode:       "disable",
		MaxOpenConns:  25,
		MaxIdleConns:  10,
		RetryAttempts: 3,
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("Valid configuration", func(t *testing.T) {
		require.NoError(t, validTestConfig().Validate())
	})

	t.Run("Missing host", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Host = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("Unsupported driver", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Driver = "mysql"
		assert.Error(t, cfg.Validate())
	})

	t.Run("Zero retry attempts would never connect", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.RetryAttempts = 0
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "retry attempts")
	})

	t.Run("Negative retry attempts", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.RetryAttempts = -1
		assert.Error(t, cfg.Validate())
	})
}

func TestParsePort(t *testing.T) {
	assert.Equal(t, 5432, ParsePort("5432"))
	assert.Equal(t, 0, ParsePort(""))
	assert.Equal(t, 0, ParsePort("not-a-port"))
	assert.Equal(t, 0, ParsePort("-1"))
	assert.Equal(t, 0, ParsePort("70000"))
}

func TestDSN(t *testing.T) {
	cfg := validTestConfig()
	cfg.Password = "secret"

	dsn := cfg.DSN()

	assert.Contains(t, dsn, "host=localhost")
	assert.Contains(t, dsn, "port=5432")
	assert.Contains(t, dsn, "dbname=credits")
	assert.Contains(t, dsn, "sslmode=disable")
}
