package script

import "testing"

func TestBuildPlanExplicitChunks(t *testing.T) {
	plan, err := BuildPlan(10, 2, 0, 150, "podcast", "")
	if err != nil {
		t.Fatalf("BuildPlan returned error: %v", err)
	}
	if len(plan.Chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(plan.Chunks))
	}
	for i, chunk := range plan.Chunks {
		if chunk.Number != i+1 || chunk.Total != 2 {
			t.Fatalf("bad ordinals: %+v", chunk)
		}
		if chunk.DurationMinutes != 5.0 {
			t.Fatalf("expected 5 minutes per chunk, got %v", chunk.DurationMinutes)
		}
		if chunk.TargetWords != 750 {
			t.Fatalf("expected 750 target words, got %d", chunk.TargetWords)
		}
	}
	if plan.TotalTargetWords() != 1500 {
		t.Fatalf("expected total 1500, got %d", plan.TotalTargetWords())
	}
}

func TestBuildPlanChunkDurationDirective(t *testing.T) {
	cases := []struct {
		name         string
		duration     float64
		chunkMinutes float64
		wantChunks   int
	}{
		{"even split", 10, 5, 2},
		{"floors remainder", 10, 3, 3},
		{"clamps to one", 2, 5, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plan, err := BuildPlan(tc.duration, 1, tc.chunkMinutes, 150, "narrative", "")
			if err != nil {
				t.Fatalf("BuildPlan returned error: %v", err)
			}
			if len(plan.Chunks) != tc.wantChunks {
				t.Fatalf("expected %d chunks, got %d", tc.wantChunks, len(plan.Chunks))
			}
		})
	}
}

func TestBuildPlanChunkDurationOverridesExplicitCount(t *testing.T) {
	plan, err := BuildPlan(10, 4, 3, 150, "narrative", "")
	if err != nil {
		t.Fatalf("BuildPlan returned error: %v", err)
	}
	if len(plan.Chunks) != 3 {
		t.Fatalf("expected chunk-duration directive to win, got %d chunks", len(plan.Chunks))
	}
}

func TestBuildPlanTargetWordSumTolerance(t *testing.T) {
	plan, err := BuildPlan(7, 3, 0, 150, "technical", "")
	if err != nil {
		t.Fatalf("BuildPlan returned error: %v", err)
	}
	var sum int
	for _, chunk := range plan.Chunks {
		sum += chunk.TargetWords
	}
	total := plan.TotalTargetWords()
	if diff := total - sum; diff < 0 || diff > len(plan.Chunks) {
		t.Fatalf("chunk word sum %d outside rounding tolerance of total %d", sum, total)
	}
}

func TestBuildPlanRejectsBadInputs(t *testing.T) {
	if _, err := BuildPlan(0, 1, 0, 150, "", ""); err == nil {
		t.Fatal("expected error for zero duration")
	}
	if _, err := BuildPlan(5, 1, 0, 0, "", ""); err == nil {
		t.Fatal("expected error for zero wpm")
	}
}
