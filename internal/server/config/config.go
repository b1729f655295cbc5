// Package config handles configuration for the server component,
// including defaults, JSON overlay, environment variables, and
// command-line flags.
package config

import "time"

// Config holds runtime settings for the MediChain backend server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the public HTTP endpoint.
//   - MongoURI / MongoDatabase: MongoDB connection string and database name.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use test defaults in prod.
//   - AccessTokenValidityDuration / RefreshTokenValidityDuration: token lifetimes.
//   - AllowedOrigin: browser origin allowed for cross-origin requests.
//   - BcryptCost: work factor for password hashing.
//   - PasswordMinLength: minimum accepted password length at registration.
type Config struct {
	EndpointAddrHTTP             string
	MongoURI                     string
	MongoDatabase                string
	SecretKey                    string
	AccessTokenValidityDuration  time.Duration
	RefreshTokenValidityDuration time.Duration
	AllowedOrigin                string
	BcryptCost                   int
	PasswordMinLength            int
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.MongoURI = "mongodb://localhost:27017"
	c.MongoDatabase = "medichain"
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 15 * time.Minute
	c.RefreshTokenValidityDuration = 30 * 24 * time.Hour
	c.AllowedOrigin = "http://localhost:5173"
	c.BcryptCost = 10
	c.PasswordMinLength = 8
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, environment variables and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
