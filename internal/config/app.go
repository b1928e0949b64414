package config

import (
	"os"
	"strings"
)

const defaultPort = "8080"

// BasePath is APP_BASE_PATH without trailing slashes, ready to prefix routes.
func BasePath() string {
	return strings.TrimRight(os.Getenv("APP_BASE_PATH"), "/")
}

func Port() string {
	port, ok := os.LookupEnv("APP_PORT")
	if !ok || port == "" {
		return defaultPort
	}
	return port
}

func Addr() string {
	return ":" + Port()
}

// Development is on when DEVELOPMENT is set to anything but "0".
func Development() bool {
	v, ok := os.LookupEnv("DEVELOPMENT")
	return ok && v != "0"
}
