package script

import (
	"context"
	"log/slog"

	"voicescript/internal/logging"
	"voicescript/internal/services"
	"voicescript/internal/wpm"
)

// TextGenerator produces narration text from a prompt. Satisfied by the
// Gemini client and by deterministic stubs in tests.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ChunkResult pairs a chunk spec with its generated text.
type ChunkResult struct {
	Spec        ChunkSpec
	Text        string
	ActualWords int
}

// Generator runs a plan against the generation backend, one chunk at a time.
// Any remote failure aborts the whole run; nothing is persisted for partial
// runs.
type Generator struct {
	Client TextGenerator
	Logger *slog.Logger
}

// Run generates every chunk in the plan in order.
func (g *Generator) Run(ctx context.Context, plan Plan) ([]ChunkResult, error) {
	if g.Client == nil {
		return nil, services.Wrap(services.ErrConfiguration, "script", "run", "generator missing text client", nil)
	}
	logger := g.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	results := make([]ChunkResult, 0, len(plan.Chunks))
	for _, spec := range plan.Chunks {
		logger.Info("generating chunk", "chunk", spec.Number, "total", spec.Total, "target_words", spec.TargetWords)

		text, err := g.Client.GenerateText(ctx, BuildPrompt(spec, plan.Style, plan.Topic))
		if err != nil {
			return nil, services.Wrap(services.ErrExternalTool, "script", "generate chunk", "", err)
		}

		words := wpm.CountWords(text)
		logger.Info("chunk generated", "chunk", spec.Number, "actual_words", words)
		results = append(results, ChunkResult{Spec: spec, Text: text, ActualWords: words})
	}
	return results, nil
}
