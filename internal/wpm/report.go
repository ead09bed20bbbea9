package wpm

import (
	"voicescript/internal/fileutil"
)

// Sample records the measurements for a single analyzed audio file.
type Sample struct {
	File            string  `json:"file"`
	DurationSeconds float64 `json:"duration_seconds"`
	WordCount       int     `json:"word_count"`
	WPM             float64 `json:"wpm"`
	Transcript      string  `json:"transcript"`
}

// Summary aggregates the per-file measurements.
type Summary struct {
	FilesAnalyzed        int     `json:"files_analyzed"`
	TotalWords           int     `json:"total_words"`
	TotalDurationSeconds float64 `json:"total_duration_seconds"`
	AverageWPM           float64 `json:"average_wpm"`
}

// Report is the JSON document the analyzer persists. It is written once and
// never mutated afterwards.
type Report struct {
	AnalysisDate string   `json:"analysis_date"`
	Summary      Summary  `json:"summary"`
	Files        []Sample `json:"files"`
}

// Summarize computes the aggregate block from the per-file samples. The
// average is the unweighted arithmetic mean of per-file WPM values, not a
// duration-weighted mean.
func Summarize(samples []Sample) Summary {
	summary := Summary{FilesAnalyzed: len(samples)}
	if len(samples) == 0 {
		return summary
	}
	var wpmSum float64
	var durationSum float64
	for _, sample := range samples {
		summary.TotalWords += sample.WordCount
		durationSum += sample.DurationSeconds
		wpmSum += sample.WPM
	}
	summary.TotalDurationSeconds = Round2(durationSum)
	summary.AverageWPM = Round1(wpmSum / float64(len(samples)))
	return summary
}

// WriteReport persists the report to path, creating parent directories as
// needed.
func WriteReport(path string, report Report) error {
	return fileutil.WriteJSON(path, report)
}
