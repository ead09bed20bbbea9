package wpm

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"voicescript/internal/logging"
	"voicescript/internal/services"
)

// Transcriber converts an audio file into text. Satisfied by the Gemini
// client and by deterministic stubs in tests.
type Transcriber interface {
	TranscribeFile(ctx context.Context, path string) (string, error)
}

// DurationFunc measures the duration of an audio file in seconds.
type DurationFunc func(ctx context.Context, path string) (float64, error)

// Analyzer orchestrates the WPM batch: discover samples, measure, transcribe,
// aggregate. The batch is all-or-nothing: the first failure aborts the run
// and no report is written.
type Analyzer struct {
	SampleDir   string
	Extensions  []string
	Transcriber Transcriber
	Duration    DurationFunc
	Logger      *slog.Logger
	Clock       func() time.Time
}

// Run processes every matching sample in SampleDir and returns the completed
// report. Samples are processed in sorted filename order so report ordering
// is deterministic.
func (a *Analyzer) Run(ctx context.Context) (Report, error) {
	if a.Transcriber == nil || a.Duration == nil {
		return Report{}, services.Wrap(services.ErrConfiguration, "wpm", "run", "analyzer missing transcriber or duration probe", nil)
	}
	logger := a.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	clock := a.Clock
	if clock == nil {
		clock = time.Now
	}

	paths, err := a.discover()
	if err != nil {
		return Report{}, err
	}
	logger.Info("samples discovered", "directory", a.SampleDir, "count", len(paths))

	samples := make([]Sample, 0, len(paths))
	for _, path := range paths {
		name := filepath.Base(path)
		logger.Info("processing sample", "file", name)

		seconds, err := a.Duration(ctx, path)
		if err != nil {
			return Report{}, services.Wrap(services.ErrExternalTool, "wpm", "measure duration", name, err)
		}
		logger.Info("duration measured", "file", name, "seconds", Round2(seconds))

		transcript, err := a.Transcriber.TranscribeFile(ctx, path)
		if err != nil {
			return Report{}, services.Wrap(services.ErrExternalTool, "wpm", "transcribe", name, err)
		}

		words := CountWords(transcript)
		rate := Round1(PerMinute(words, seconds))
		logger.Info("sample analyzed", "file", name, "words", words, "wpm", rate)

		samples = append(samples, Sample{
			File:            name,
			DurationSeconds: Round2(seconds),
			WordCount:       words,
			WPM:             rate,
			Transcript:      transcript,
		})
	}

	return Report{
		AnalysisDate: clock().Format(time.RFC3339),
		Summary:      Summarize(samples),
		Files:        samples,
	}, nil
}

func (a *Analyzer) discover() ([]string, error) {
	entries, err := os.ReadDir(a.SampleDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, services.Wrap(services.ErrNotFound, "wpm", "discover", fmt.Sprintf("directory not found: %s", a.SampleDir), nil)
		}
		return nil, services.Wrap(services.ErrExternalTool, "wpm", "discover", a.SampleDir, err)
	}

	extensions := a.Extensions
	if len(extensions) == 0 {
		extensions = []string{".mp3"}
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		for _, allowed := range extensions {
			if ext == allowed {
				paths = append(paths, filepath.Join(a.SampleDir, entry.Name()))
				break
			}
		}
	}
	if len(paths) == 0 {
		return nil, services.Wrap(services.ErrNotFound, "wpm", "discover", fmt.Sprintf("no audio files found in %s", a.SampleDir), nil)
	}
	sort.Strings(paths)
	return paths, nil
}
