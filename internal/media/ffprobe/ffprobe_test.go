package ffprobe

import (
	"context"
	"encoding/json"
	"testing"
)

const sampleOutput = `{
  "streams": [
    {"index": 0, "codec_name": "mp3", "codec_type": "audio", "sample_rate": "44100", "channels": 2, "duration": "61.990000"}
  ],
  "format": {"filename": "sample.mp3", "duration": "62.040000", "format_name": "mp3"}
}`

func TestResultDuration(t *testing.T) {
	var result Result
	if err := json.Unmarshal([]byte(sampleOutput), &result); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}
	if result.DurationSeconds() != 62.04 {
		t.Fatalf("unexpected duration: %v", result.DurationSeconds())
	}
	if result.AudioStreamCount() != 1 {
		t.Fatalf("expected 1 audio stream, got %d", result.AudioStreamCount())
	}
}

func TestResultDurationStreamFallback(t *testing.T) {
	result := Result{
		Streams: []Stream{
			{CodecType: "video", Duration: "99"},
			{CodecType: "audio", Duration: "30.5"},
		},
	}
	if result.DurationSeconds() != 30.5 {
		t.Fatalf("expected stream fallback duration, got %v", result.DurationSeconds())
	}
}

func TestResultDurationUnavailable(t *testing.T) {
	result := Result{Format: Format{Duration: "bad"}}
	if result.DurationSeconds() != 0 {
		t.Fatalf("expected 0 for unparsable duration, got %v", result.DurationSeconds())
	}
}

func TestInspectEmptyPath(t *testing.T) {
	if _, err := Inspect(context.Background(), "", "  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestInspectMissingBinary(t *testing.T) {
	if _, err := Inspect(context.Background(), "ffprobe-does-not-exist", "sample.mp3"); err == nil {
		t.Fatal("expected error for missing binary")
	}
}
