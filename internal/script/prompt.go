package script

import (
	"fmt"
	"strings"
)

// BuildPrompt constructs the generation instruction for one chunk. The prompt
// must convey the target word count, the style fragment, positional framing
// for multi-chunk sessions, the optional topic focus, and the narration-only
// formatting constraints; all of these are part of the contract with the
// generation backend.
func BuildPrompt(spec ChunkSpec, style, topic string) string {
	var chunkContext string
	if spec.Total > 1 {
		chunkContext = fmt.Sprintf("This is part %d of %d. ", spec.Number, spec.Total)
		switch spec.Number {
		case 1:
			chunkContext += "Start fresh with an engaging opening. "
		case spec.Total:
			chunkContext += "This is the final part - provide a satisfying conclusion. "
		default:
			chunkContext += "Continue naturally from a previous section. "
		}
	}

	var topicContext string
	if topic = strings.TrimSpace(topic); topic != "" {
		topicContext = fmt.Sprintf("Focus on this topic area: %s. ", topic)
	}

	return fmt.Sprintf(`Generate text for voice recording/narration.

Target word count: approximately %d words (very important - aim for this count)

Style requirements:
%s

%s%s

Requirements:
- Generate ONLY the text to be read aloud
- No headers, titles, or metadata
- No stage directions or notes
- Natural flow suitable for continuous narration
- Varied sentence lengths for natural rhythm
- Avoid tongue-twisters or overly complex words
- Include natural breathing points (commas, periods)

Generate the text now:`, spec.TargetWords, StylePrompt(style), chunkContext, topicContext)
}
