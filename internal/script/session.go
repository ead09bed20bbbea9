package script

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"voicescript/internal/fileutil"
	"voicescript/internal/wpm"
)

// ChunkMetadata records the bookkeeping for one persisted chunk.
type ChunkMetadata struct {
	File                     string  `json:"file"`
	TargetWordCount          int     `json:"target_word_count"`
	ActualWordCount          int     `json:"actual_word_count"`
	EstimatedDurationMinutes float64 `json:"estimated_duration_minutes"`
}

// Totals aggregates the session's word counts.
type Totals struct {
	TotalWords                    int     `json:"total_words"`
	EstimatedTotalDurationMinutes float64 `json:"estimated_total_duration_minutes"`
}

// Metadata is the metadata.json document written alongside the chunk files.
type Metadata struct {
	GeneratedAt           string          `json:"generated_at"`
	Style                 string          `json:"style"`
	TargetDurationMinutes float64         `json:"target_duration_minutes"`
	WPMUsed               int             `json:"wpm_used"`
	Chunks                []ChunkMetadata `json:"chunks"`
	Totals                Totals          `json:"totals"`
}

// Session identifies one invocation's persisted output.
type Session struct {
	Dir   string
	Files []string
}

// SaveSession writes the generated chunks and metadata into a timestamped
// session directory under outputDir. A single chunk is written as script.txt;
// multiple chunks become chunk_01.txt, chunk_02.txt, and so on. Timestamp
// granularity is seconds, so two runs within the same second collide; the
// collision surfaces as an error instead of being silently merged.
func SaveSession(outputDir string, plan Plan, results []ChunkResult, now time.Time) (Session, error) {
	if len(results) == 0 {
		return Session{}, fmt.Errorf("save session: no chunks to persist")
	}
	if err := fileutil.EnsureDir(outputDir); err != nil {
		return Session{}, err
	}

	sessionDir := filepath.Join(outputDir, "session_"+now.Format("20060102_150405"))
	if err := os.Mkdir(sessionDir, 0o755); err != nil {
		return Session{}, fmt.Errorf("create session directory: %w", err)
	}

	session := Session{Dir: sessionDir}
	meta := Metadata{
		GeneratedAt:           now.Format(time.RFC3339),
		Style:                 plan.Style,
		TargetDurationMinutes: plan.DurationMinutes,
		WPMUsed:               plan.WPM,
	}

	var totalWords int
	for i, result := range results {
		name := "script.txt"
		if len(results) > 1 {
			name = fmt.Sprintf("chunk_%02d.txt", i+1)
		}
		path := filepath.Join(sessionDir, name)
		if err := os.WriteFile(path, []byte(result.Text), 0o644); err != nil {
			return Session{}, fmt.Errorf("write chunk %s: %w", name, err)
		}
		session.Files = append(session.Files, name)

		totalWords += result.ActualWords
		meta.Chunks = append(meta.Chunks, ChunkMetadata{
			File:                     name,
			TargetWordCount:          result.Spec.TargetWords,
			ActualWordCount:          result.ActualWords,
			EstimatedDurationMinutes: wpm.Round2(float64(result.ActualWords) / float64(plan.WPM)),
		})
	}
	meta.Totals = Totals{
		TotalWords:                    totalWords,
		EstimatedTotalDurationMinutes: wpm.Round2(float64(totalWords) / float64(plan.WPM)),
	}

	if err := fileutil.WriteJSON(filepath.Join(sessionDir, "metadata.json"), meta); err != nil {
		return Session{}, err
	}
	session.Files = append(session.Files, "metadata.json")
	return session, nil
}
