package recommendation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cwalinapj/Sitebuilder1.0-sub001/domain/personalization"
)

func candidateWithMeta(id string, meta map[string]interface{}) personalization.Candidate {
	return personalization.Candidate{DesignID: id, Score: 0.9, Meta: meta}
}

func TestComparisonQuestion_FewerThanTwoCandidates(t *testing.T) {
	generic := "Do you prefer cleaner typography or richer color contrast next?"

	assert.Equal(t, generic, ComparisonQuestion(nil))
	assert.Equal(t, generic, ComparisonQuestion([]personalization.Candidate{
		candidateWithMeta("a", map[string]interface{}{"font_guess": "Inter"}),
	}))
}

func TestComparisonQuestion_FontContrast(t *testing.T) {
	selected := []personalization.Candidate{
		candidateWithMeta("a", map[string]interface{}{"font_guess": "Inter"}),
		candidateWithMeta("b", map[string]interface{}{"font_guess": "Lato"}),
	}

	question := ComparisonQuestion(selected)

	assert.Contains(t, question, "Inter")
	assert.Contains(t, question, "Lato")
}

func TestComparisonQuestion_PaletteContrastWhenFontsMatch(t *testing.T) {
	selected := []personalization.Candidate{
		candidateWithMeta("a", map[string]interface{}{
			"font_guess": "Inter",
			"palette":    []interface{}{"#111", "#eee"},
		}),
		candidateWithMeta("b", map[string]interface{}{
			"font_guess": "Inter",
			"palette":    []interface{}{"#fa0", "#035"},
		}),
	}

	question := ComparisonQuestion(selected)

	assert.Contains(t, question, "#111, #eee")
	assert.Contains(t, question, "#fa0, #035")
}

func TestComparisonQuestion_MissingFontFallsThroughToPalette(t *testing.T) {
	selected := []personalization.Candidate{
		candidateWithMeta("a", map[string]interface{}{
			"palette": []interface{}{"#111"},
		}),
		candidateWithMeta("b", map[string]interface{}{
			"font_guess": "Lato",
			"palette":    []interface{}{"#222"},
		}),
	}

	question := ComparisonQuestion(selected)

	assert.Contains(t, question, "#111")
	assert.Contains(t, question, "#222")
}

func TestComparisonQuestion_IdenticalSignalsFallBackToAB(t *testing.T) {
	meta := map[string]interface{}{
		"font_guess": "Inter",
		"palette":    []interface{}{"#111"},
	}
	selected := []personalization.Candidate{
		candidateWithMeta("a", meta),
		candidateWithMeta("b", meta),
	}

	question := ComparisonQuestion(selected)

	assert.Contains(t, question, "A or B")
}
