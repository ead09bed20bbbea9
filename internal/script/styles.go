package script

import "strings"

// DefaultStyle is the fallback for unknown style keywords.
const DefaultStyle = "conversational"

// stylePrompts maps a style keyword to the descriptive fragment injected into
// the generation prompt. Keep wording changes centralized here; the fragments
// steer the model's tone for the whole session.
var stylePrompts = map[string]string{
	"conversational": "Write in a natural, conversational tone as if speaking to a friend. " +
		"Include occasional filler words, natural pauses, and casual language. " +
		"Topics can range widely - anecdotes, observations, musings.",
	"narrative": "Write engaging narrative prose suitable for an audiobook. " +
		"Include descriptive passages, varied sentence structures, " +
		"and compelling storytelling. Can be fiction or creative non-fiction.",
	"technical": "Write clear technical explanations or tutorials. " +
		"Include precise terminology but maintain readability for narration. " +
		"Topics can include technology, science, programming, or engineering.",
	"news_anchor": "Write in a professional news broadcast style. " +
		"Clear, authoritative tone with good pacing for broadcast delivery. " +
		"Include varied news topics - current events, features, human interest.",
	"storytelling": "Write immersive short stories or story excerpts. " +
		"Include dialogue, scene descriptions, and emotional moments. " +
		"Vary between action, reflection, and character development.",
	"educational": "Write informative educational content suitable for a documentary. " +
		"Include interesting facts, clear explanations, and engaging delivery. " +
		"Topics can span history, nature, culture, science.",
	"podcast": "Write in an engaging podcast monologue style. " +
		"Include rhetorical questions, audience engagement phrases, " +
		"and natural transitions between topics.",
}

// StylePrompt resolves a style keyword to its prompt fragment. Unknown styles
// fall back to the conversational fragment rather than failing.
func StylePrompt(style string) string {
	if prompt, ok := stylePrompts[strings.ToLower(strings.TrimSpace(style))]; ok {
		return prompt
	}
	return stylePrompts[DefaultStyle]
}

// KnownStyle reports whether the keyword has its own prompt fragment.
func KnownStyle(style string) bool {
	_, ok := stylePrompts[strings.ToLower(strings.TrimSpace(style))]
	return ok
}
