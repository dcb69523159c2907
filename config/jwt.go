package config

import (
	"os"
	"strconv"
	"time"
)

// Process-wide signing configuration. Loaded once at startup through
// InitJWT and never mutated at request time.
var (
	JWTSecret     []byte
	JWTExpiration time.Duration

	// RefreshExpiration bounds the opaque refresh tokens stored alongside
	// the signed access tokens.
	RefreshExpiration = 7 * 24 * time.Hour
)

func InitJWT() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "your-secret-key-change-this-in-production"
	}
	JWTSecret = []byte(secret)

	JWTExpiration = 30 * time.Minute
	if v := os.Getenv("JWT_TTL_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			JWTExpiration = time.Duration(minutes) * time.Minute
		}
	}
}
