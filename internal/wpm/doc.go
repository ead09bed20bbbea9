// Package wpm implements the words-per-minute analysis pipeline: sample
// discovery, duration measurement, transcription, and report aggregation.
package wpm
