package script

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func fixedTime() time.Time {
	return time.Date(2026, 3, 14, 9, 30, 15, 0, time.UTC)
}

func testPlan(t *testing.T, chunks int) Plan {
	t.Helper()
	plan, err := BuildPlan(10, chunks, 0, 150, "podcast", "")
	if err != nil {
		t.Fatalf("BuildPlan returned error: %v", err)
	}
	return plan
}

func TestSaveSessionSingleChunk(t *testing.T) {
	outputDir := t.TempDir()
	plan := testPlan(t, 1)
	results := []ChunkResult{{Spec: plan.Chunks[0], Text: "hello there listener", ActualWords: 3}}

	session, err := SaveSession(outputDir, plan, results, fixedTime())
	if err != nil {
		t.Fatalf("SaveSession returned error: %v", err)
	}

	if filepath.Base(session.Dir) != "session_20260314_093015" {
		t.Fatalf("unexpected session dir: %s", session.Dir)
	}
	data, err := os.ReadFile(filepath.Join(session.Dir, "script.txt"))
	if err != nil {
		t.Fatalf("read script.txt: %v", err)
	}
	if string(data) != "hello there listener" {
		t.Fatalf("unexpected script contents: %q", data)
	}
}

func TestSaveSessionMultipleChunks(t *testing.T) {
	outputDir := t.TempDir()
	plan := testPlan(t, 2)
	results := []ChunkResult{
		{Spec: plan.Chunks[0], Text: "first part", ActualWords: 2},
		{Spec: plan.Chunks[1], Text: "second part closes", ActualWords: 3},
	}

	session, err := SaveSession(outputDir, plan, results, fixedTime())
	if err != nil {
		t.Fatalf("SaveSession returned error: %v", err)
	}

	for _, name := range []string{"chunk_01.txt", "chunk_02.txt", "metadata.json"} {
		if _, err := os.Stat(filepath.Join(session.Dir, name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}

	raw, err := os.ReadFile(filepath.Join(session.Dir, "metadata.json"))
	if err != nil {
		t.Fatalf("read metadata: %v", err)
	}
	var meta Metadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		t.Fatalf("parse metadata: %v", err)
	}
	if meta.WPMUsed != 150 {
		t.Fatalf("expected wpm_used 150, got %d", meta.WPMUsed)
	}
	if meta.Style != "podcast" {
		t.Fatalf("unexpected style: %q", meta.Style)
	}
	if len(meta.Chunks) != 2 {
		t.Fatalf("expected 2 chunk records, got %d", len(meta.Chunks))
	}
	if meta.Chunks[0].File != "chunk_01.txt" || meta.Chunks[1].File != "chunk_02.txt" {
		t.Fatalf("unexpected chunk file names: %+v", meta.Chunks)
	}
	if meta.Chunks[0].TargetWordCount != 750 {
		t.Fatalf("unexpected target word count: %d", meta.Chunks[0].TargetWordCount)
	}
	if meta.Totals.TotalWords != 5 {
		t.Fatalf("unexpected total words: %d", meta.Totals.TotalWords)
	}
	if meta.Totals.EstimatedTotalDurationMinutes != 0.03 {
		t.Fatalf("unexpected estimated duration: %v", meta.Totals.EstimatedTotalDurationMinutes)
	}
}

func TestSaveSessionCollision(t *testing.T) {
	outputDir := t.TempDir()
	plan := testPlan(t, 1)
	results := []ChunkResult{{Spec: plan.Chunks[0], Text: "text", ActualWords: 1}}

	if _, err := SaveSession(outputDir, plan, results, fixedTime()); err != nil {
		t.Fatalf("first SaveSession returned error: %v", err)
	}
	if _, err := SaveSession(outputDir, plan, results, fixedTime()); err == nil {
		t.Fatal("expected same-second collision to surface as an error")
	}
}

func TestSaveSessionEmptyResults(t *testing.T) {
	if _, err := SaveSession(t.TempDir(), testPlan(t, 1), nil, fixedTime()); err == nil {
		t.Fatal("expected error for empty results")
	}
}
