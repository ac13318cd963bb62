package personalization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveTags_StructuredTagsWinOutright(t *testing.T) {
	payload := Payload{
		"structured_tags": []interface{}{"A", "a", " b "},
		"choice":          "Serif",
		"tags":            []interface{}{"ignored"},
	}

	tags := DeriveTags("font_pref", payload)

	assert.Equal(t, []string{"a", "b"}, tags)
}

func TestDeriveTags_PreferenceEventsSynthesizeTag(t *testing.T) {
	tests := []struct {
		eventType string
		choice    string
		want      string
	}{
		{"font_pref", "Serif", "prefers_font_serif"},
		{"palette_pref", "Warm Earth", "prefers_palette_warm_earth"},
		{"layout_pref", "Grid", "prefers_layout_grid"},
	}

	for _, tt := range tests {
		t.Run(tt.eventType, func(t *testing.T) {
			tags := DeriveTags(tt.eventType, Payload{"choice": tt.choice})

			assert.Equal(t, []string{tt.want}, tags)
		})
	}
}

func TestDeriveTags_PreferenceEventWithoutChoiceFallsThrough(t *testing.T) {
	tags := DeriveTags("font_pref", Payload{"tags": []interface{}{"Bold"}})

	assert.Equal(t, []string{"bold"}, tags)
}

func TestDeriveTags_GenericEventUsesPayloadTags(t *testing.T) {
	tags := DeriveTags("like", Payload{"tags": []interface{}{"Minimal", "dark"}})

	assert.Equal(t, []string{"minimal", "dark"}, tags)
}

func TestDeriveTags_NonArrayStructuredTagsIgnored(t *testing.T) {
	payload := Payload{
		"structured_tags": "not-an-array",
		"tags":            []interface{}{"fallback"},
	}

	tags := DeriveTags("like", payload)

	assert.Equal(t, []string{"fallback"}, tags)
}

func TestDeriveTags_EmptyPayload(t *testing.T) {
	assert.Empty(t, DeriveTags("like", Payload{}))
	assert.Empty(t, DeriveTags("like", nil))
}

func TestIsTrackedEventType(t *testing.T) {
	tracked := []string{
		"like", "dislike", "font_pref", "palette_pref",
		"layout_pref", "upsell_shown", "upsell_accepted", "question_answer",
	}
	for _, et := range tracked {
		assert.True(t, IsTrackedEventType(et), et)
	}

	assert.False(t, IsTrackedEventType("page_view"))
	assert.False(t, IsTrackedEventType(""))
}
