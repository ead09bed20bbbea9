package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// APIKeyEnv is the environment variable holding the Gemini API key.
const APIKeyEnv = "GEMINI_API_KEY"

// ResolveAPIKey loads a local .env file when present and returns the Gemini
// API key from the environment. The .env file is optional; only a missing key
// is an error.
func ResolveAPIKey() (string, error) {
	// Absence of .env is the common case, not a failure.
	_ = godotenv.Load()

	key := strings.TrimSpace(os.Getenv(APIKeyEnv))
	if key == "" {
		return "", fmt.Errorf("%s environment variable not set. Get your API key from https://aistudio.google.com/apikey", APIKeyEnv)
	}
	return key, nil
}
