// Package env reads loose environment variables that sit outside the
// envconfig-managed configuration, such as output format toggles.
package env

import "os"

// Get looks up key in the environment, falling back when unset or empty.
func Get(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
