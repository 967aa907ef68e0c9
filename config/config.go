package config

import (
	"errors"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DB is a global variable to hold the database connection.
var DB *gorm.DB

// SecretKey signs session tokens. Loaded from the environment at startup.
var SecretKey []byte

// Logger is the application-wide structured logger. Defaults to a no-op so
// packages can log before main wires the real one.
var Logger = zap.NewNop()

// Load reads the required settings from the process environment.
func Load() error {
	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		return errors.New("SECRET_KEY is not set")
	}
	SecretKey = []byte(secret)
	return nil
}

// Port returns the HTTP listen port, defaulting to 8080.
func Port() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return port
}
