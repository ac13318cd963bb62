package personalization

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestBuildMemorySentence_WithTags(t *testing.T) {
	sentence := BuildMemorySentence("like", []string{"modern", "dark"}, Payload{})

	assert.Equal(t, "User prefers: modern, dark; event: like.", sentence)
}

func TestBuildMemorySentence_WithoutTags(t *testing.T) {
	sentence := BuildMemorySentence("page_view", nil, Payload{})

	assert.Equal(t, "User no explicit preference tags; event: page_view.", sentence)
}

func TestBuildMemorySentence_ReasonClause(t *testing.T) {
	sentence := BuildMemorySentence("dislike", []string{"busy"}, Payload{"reason": "too cluttered"})

	assert.Equal(t, "User prefers: busy; event: dislike. reason: too cluttered", sentence)
}

func TestBuildMemorySentence_SuppliedSentenceWinsVerbatim(t *testing.T) {
	payload := Payload{
		"memory_sentence": "User loves brutalist layouts",
		"reason":          "ignored",
	}

	sentence := BuildMemorySentence("like", []string{"modern"}, payload)

	assert.Equal(t, "User loves brutalist layouts", sentence)
}

func TestBuildMemorySentence_SuppliedSentenceKeepsSurroundingSpace(t *testing.T) {
	payload := Payload{"memory_sentence": "  User loves ornate serif type  "}

	sentence := BuildMemorySentence("like", nil, payload)

	assert.Equal(t, "  User loves ornate serif type  ", sentence)
}

func TestBuildMemorySentence_BlankSuppliedSentenceIsIgnored(t *testing.T) {
	payload := Payload{"memory_sentence": "   "}

	sentence := BuildMemorySentence("like", []string{"modern"}, payload)

	assert.Equal(t, "User prefers: modern; event: like.", sentence)
}

func TestBuildMemorySentence_TruncatesAtLimit(t *testing.T) {
	long := strings.Repeat("x", 5000)

	supplied := BuildMemorySentence("like", nil, Payload{"memory_sentence": long})
	synthesized := BuildMemorySentence("like", []string{long}, Payload{})

	assert.Len(t, supplied, 2000)
	assert.Len(t, synthesized, 2000)
}

func TestBuildMemorySentence_TruncatesOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("a", 1999) + strings.Repeat("é", 10)

	sentence := BuildMemorySentence("like", nil, Payload{"memory_sentence": long})

	assert.True(t, utf8.ValidString(sentence))
	assert.Equal(t, 2000, utf8.RuneCountInString(sentence))
	assert.True(t, strings.HasSuffix(sentence, "é"))
}
