package config

import "os"

// Get returns the environment value for key, or fallback when unset
// or empty. Loading .env files is left to the composition roots.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
