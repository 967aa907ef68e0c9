package main

import (
	"os"

	"go.uber.org/zap"
)

// newLogger builds the process logger. Production JSON when GIN_MODE is
// release, development output otherwise.
func newLogger() (*zap.Logger, error) {
	if os.Getenv("GIN_MODE") == "release" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
