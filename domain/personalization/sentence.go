package personalization

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// maxSentenceLength caps memory sentences before embedding
const maxSentenceLength = 2000

// BuildMemorySentence renders the natural-language summary of an event that
// gets embedded into the memory indices. A caller-supplied memory_sentence
// wins verbatim; otherwise one is synthesized from the derived tags.
func BuildMemorySentence(eventType string, tags []string, payload Payload) string {
	if payload != nil {
		if supplied := payload.MemorySentence(); strings.TrimSpace(supplied) != "" {
			return truncate(supplied, maxSentenceLength)
		}
	}

	var b strings.Builder
	if len(tags) > 0 {
		b.WriteString(fmt.Sprintf("User prefers: %s; event: %s.", strings.Join(tags, ", "), eventType))
	} else {
		b.WriteString(fmt.Sprintf("User no explicit preference tags; event: %s.", eventType))
	}

	if payload != nil {
		if reason := payload.Reason(); reason != "" {
			b.WriteString(fmt.Sprintf(" reason: %s", reason))
		}
	}

	return truncate(b.String(), maxSentenceLength)
}

// truncate caps s at max characters, never splitting a rune
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
