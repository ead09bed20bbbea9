// Package config loads, normalizes, and validates voicescript configuration.
//
// It supplies repository defaults, reads the JSON config file used by the
// script generator, and resolves the Gemini API key from the environment with
// best-effort .env loading. Always obtain settings through this package so
// downstream code receives sanitized values and clear validation errors.
package config
