// Package env provides helpers for reading environment variables.
package env

import (
	"os"
	"strings"
)

// GetStringEnv returns an environment variable by the given key, or returns the given fallback value if the env variable is not present.
func GetStringEnv(key string, fallback string) string {
	if val, ok := LookupEnv(key); ok {
		return val
	}

	return fallback
}

// IsSet returns true if the environment variable is present with a non-blank value, e.g. `NO_COLOR`.
func IsSet(key string) bool {
	_, ok := LookupEnv(key)
	return ok
}

// LookupEnv behaves the same as `os.LookupEnv`, but additionally trims spaces in the value.
func LookupEnv(key string) (string, bool) {
	if key == "" {
		return "", false
	}

	val, ok := os.LookupEnv(key)
	val = strings.TrimSpace(val)

	isPresent := ok && val != ""

	return val, isPresent
}
