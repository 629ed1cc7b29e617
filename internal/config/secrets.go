package config

import (
	"os"
	"strings"
)

// GetSecret resolves a credential such as DB_PASSWORD or DATABASE_URL.
// The plain variable wins; otherwise KEY_FILE may point at a mounted secret file
// (Docker/Kubernetes secrets); otherwise defaultValue is returned.
func GetSecret(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if value, ok := readSecretFile(os.Getenv(key + "_FILE")); ok {
		return value
	}
	return defaultValue
}

// readSecretFile returns the trimmed file content; unreadable or blank files count as unset
func readSecretFile(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	value := strings.TrimSpace(string(data))
	return value, value != ""
}
