package recommendation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cwalinapj/Sitebuilder1.0-sub001/application/ports"
)

func signalWithTags(tags ...interface{}) ports.Match {
	return ports.Match{
		ID:    "m1",
		Score: 0.8,
		Metadata: map[string]interface{}{
			"tags": tags,
		},
	}
}

func TestShouldOfferUpsell_TwoDistinctKeywords(t *testing.T) {
	signals := []ports.Match{
		signalWithTags("wants Filter controls"),
		signalWithTags("loves her Portfolio page"),
	}

	assert.True(t, ShouldOfferUpsell(signals))
}

func TestShouldOfferUpsell_RepeatedKeywordCounts(t *testing.T) {
	signals := []ports.Match{
		signalWithTags("masonry grid"),
		signalWithTags("masonry layout again"),
	}

	assert.True(t, ShouldOfferUpsell(signals))
}

func TestShouldOfferUpsell_SingleMentionIsNotEnough(t *testing.T) {
	signals := []ports.Match{
		signalWithTags("wants filter controls"),
		signalWithTags("likes serif fonts"),
	}

	assert.False(t, ShouldOfferUpsell(signals))
}

func TestShouldOfferUpsell_NoSignals(t *testing.T) {
	assert.False(t, ShouldOfferUpsell(nil))
	assert.False(t, ShouldOfferUpsell([]ports.Match{}))
}

func TestShouldOfferUpsell_KeywordsAnywhereInMetadata(t *testing.T) {
	signals := []ports.Match{
		{
			ID:    "evt_1",
			Score: 0.9,
			Metadata: map[string]interface{}{
				"event_type": "like",
				"tags":       []interface{}{"prefers_layout_sortable_grid"},
				"note":       "asked about isotope plugin",
			},
		},
	}

	assert.True(t, ShouldOfferUpsell(signals))
}
