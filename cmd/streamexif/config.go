package main

import (
	"os"

	"github.com/jrm-1535/streamexif/internal/logger"
	"github.com/joho/godotenv"
)

// loadEnvDefaults loads an optional .env file into the process
// environment so flag defaults below can be overridden without a flag on
// every invocation. A missing .env is not an error - it's the normal
// case outside of local development.
func loadEnvDefaults() {
	_ = godotenv.Load()
}

func defaultLogLevel() logger.Level {
	return logger.ParseLevel(os.Getenv("STREAMEXIF_LOG_LEVEL"))
}

func defaultStopOnError() bool {
	v := os.Getenv("STREAMEXIF_STOP_ON_ERROR")
	return v == "1" || v == "true"
}
