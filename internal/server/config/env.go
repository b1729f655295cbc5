package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from environment variables. Only variables
// that are set override the current values.
//
// Recognized variables:
//
//	ADDRESS             HTTP bind address
//	MONGO_URI           MongoDB connection URI
//	MONGO_DB            MongoDB database name
//	JWT_SECRET          JWT HMAC secret key
//	ACCESS_TOKEN_TTL    access token validity (Go duration, e.g. "15m")
//	REFRESH_TOKEN_TTL   refresh token validity (Go duration, e.g. "720h")
//	FRONTEND_URL        allowed browser origin for CORS
//	BCRYPT_COST         bcrypt cost
//	PASSWORD_MIN_LENGTH minimum password length
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddrHTTP = v
	}
	if v, ok := os.LookupEnv("MONGO_URI"); ok {
		config.MongoURI = v
	}
	if v, ok := os.LookupEnv("MONGO_DB"); ok {
		config.MongoDatabase = v
	}
	if v, ok := os.LookupEnv("JWT_SECRET"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("ACCESS_TOKEN_TTL"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.AccessTokenValidityDuration = d
		}
	}
	if v, ok := os.LookupEnv("REFRESH_TOKEN_TTL"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.RefreshTokenValidityDuration = d
		}
	}
	if v, ok := os.LookupEnv("FRONTEND_URL"); ok {
		config.AllowedOrigin = v
	}
	if v, ok := os.LookupEnv("BCRYPT_COST"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			config.BcryptCost = n
		}
	}
	if v, ok := os.LookupEnv("PASSWORD_MIN_LENGTH"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			config.PasswordMinLength = n
		}
	}
}
