package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_parseEnv(t *testing.T) {

	t.Run("overlays set variables", func(t *testing.T) {
		t.Setenv("ADDRESS", ":9999")
		t.Setenv("DATABASE_DSN", "postgres://env/users")
		t.Setenv("SECRET_KEY", "env_secret")

		cfg := &Config{
			EndpointAddrHTTP: ":8080",
			DatabaseDSN:      "",
			SecretKey:        "secretKey",
		}
		parseEnv(cfg)

		assert.Equal(t, ":9999", cfg.EndpointAddrHTTP)
		assert.Equal(t, "postgres://env/users", cfg.DatabaseDSN)
		assert.Equal(t, "env_secret", cfg.SecretKey)
	})

	t.Run("empty variables leave values untouched", func(t *testing.T) {
		t.Setenv("ADDRESS", "")
		t.Setenv("DATABASE_DSN", "")
		t.Setenv("SECRET_KEY", "")

		cfg := &Config{
			EndpointAddrHTTP: ":8080",
			DatabaseDSN:      "postgres://kept/users",
			SecretKey:        "kept",
		}
		parseEnv(cfg)

		assert.Equal(t, ":8080", cfg.EndpointAddrHTTP)
		assert.Equal(t, "postgres://kept/users", cfg.DatabaseDSN)
		assert.Equal(t, "kept", cfg.SecretKey)
	})
}
