// Package gemini wraps the Google Gemini REST API surface both pipelines use:
// media upload for audio samples, audio transcription, and free-form text
// generation. The client is deliberately thin; callers depend on narrow
// capability interfaces so tests can substitute deterministic stubs.
package gemini
