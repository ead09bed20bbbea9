package script

import (
	"fmt"
	"math"
)

// ChunkSpec describes one unit of narration to generate.
type ChunkSpec struct {
	Number          int
	Total           int
	DurationMinutes float64
	TargetWords     int
}

// Plan captures everything a generation run needs. Derived once from CLI
// arguments and config; immutable for the run.
type Plan struct {
	DurationMinutes float64
	WPM             int
	Style           string
	Topic           string
	Chunks          []ChunkSpec
}

// TotalTargetWords is the word budget for the whole session.
func (p Plan) TotalTargetWords() int {
	return int(p.DurationMinutes * float64(p.WPM))
}

// BuildPlan derives the chunk layout for a run. When chunkMinutes is positive
// it overrides the explicit chunk count: chunks = max(1, floor(total/per
// chunk)). The total duration is divided equally across chunks; remainders
// are not redistributed.
func BuildPlan(durationMinutes float64, chunks int, chunkMinutes float64, wpmRate int, style, topic string) (Plan, error) {
	if durationMinutes <= 0 {
		return Plan{}, fmt.Errorf("duration must be positive, got %v", durationMinutes)
	}
	if wpmRate <= 0 {
		return Plan{}, fmt.Errorf("wpm must be positive, got %d", wpmRate)
	}

	count := chunks
	if chunkMinutes > 0 {
		count = int(math.Floor(durationMinutes / chunkMinutes))
		if count < 1 {
			count = 1
		}
	}
	if count < 1 {
		count = 1
	}

	perChunk := durationMinutes / float64(count)
	specs := make([]ChunkSpec, 0, count)
	for i := 1; i <= count; i++ {
		specs = append(specs, ChunkSpec{
			Number:          i,
			Total:           count,
			DurationMinutes: perChunk,
			TargetWords:     int(perChunk * float64(wpmRate)),
		})
	}

	return Plan{
		DurationMinutes: durationMinutes,
		WPM:             wpmRate,
		Style:           style,
		Topic:           topic,
		Chunks:          specs,
	}, nil
}
