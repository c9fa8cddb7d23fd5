package config

import "os"

// parseEnv overlays Config fields from environment variables. A variable
// that is unset or empty leaves the current value untouched.
//
// Recognized variables:
//
//	ADDRESS       HTTP bind address
//	DATABASE_DSN  PostgreSQL DSN
//	SECRET_KEY    JWT HMAC secret key
func parseEnv(config *Config) {
	config.EndpointAddrHTTP = getenv("ADDRESS", config.EndpointAddrHTTP)
	config.DatabaseDSN = getenv("DATABASE_DSN", config.DatabaseDSN)
	config.SecretKey = getenv("SECRET_KEY", config.SecretKey)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
