// Package ffprobe provides a typed wrapper around ffprobe JSON output for
// audio sample inspection.
//
// The analyzer delegates all duration measurement here; no container or codec
// parsing happens locally. Inspect executes ffprobe and returns a parsed
// Result, and helper methods expose the duration and audio stream data the
// WPM pipeline needs.
package ffprobe
