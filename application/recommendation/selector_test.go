package recommendation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cwalinapj/Sitebuilder1.0-sub001/domain/personalization"
)

func candidate(id string, score float64, sampleType string, tags ...string) personalization.Candidate {
	tagList := make([]interface{}, len(tags))
	for i, tag := range tags {
		tagList[i] = tag
	}
	return personalization.Candidate{
		DesignID: id,
		Score:    score,
		Meta: map[string]interface{}{
			"type": sampleType,
			"tags": tagList,
		},
	}
}

func ids(selected []personalization.Candidate) []string {
	out := make([]string, len(selected))
	for i, c := range selected {
		out[i] = c.DesignID
	}
	return out
}

func TestSelectDiverse_NoveltyBeatsScoreOrder(t *testing.T) {
	// #1 and #2 share identical type and tags; #3 introduces a new type
	// and must win the third slot over #4/#5.
	candidates := []personalization.Candidate{
		candidate("a", 0.95, "template", "modern"),
		candidate("b", 0.90, "template", "modern"),
		candidate("c", 0.85, "real_site", "modern"),
		candidate("d", 0.80, "template", "modern"),
		candidate("e", 0.75, "template", "modern"),
	}

	selected := SelectDiverse(candidates, 3)

	assert.Equal(t, []string{"a", "b", "c"}, ids(selected))
}

func TestSelectDiverse_NewTagCountsAsNovelty(t *testing.T) {
	candidates := []personalization.Candidate{
		candidate("a", 0.95, "template", "modern"),
		candidate("b", 0.90, "template", "modern"),
		candidate("c", 0.85, "template", "modern"),
		candidate("d", 0.80, "template", "playful"),
	}

	selected := SelectDiverse(candidates, 3)

	assert.Equal(t, []string{"a", "b", "d"}, ids(selected))
}

func TestSelectDiverse_BackfillWhenNothingNovel(t *testing.T) {
	// Every candidate is identical; the second pass must still fill the
	// result to the limit in score order.
	candidates := []personalization.Candidate{
		candidate("a", 0.95, "template", "modern"),
		candidate("b", 0.90, "template", "modern"),
		candidate("c", 0.85, "template", "modern"),
		candidate("d", 0.80, "template", "modern"),
	}

	selected := SelectDiverse(candidates, 3)

	assert.Equal(t, []string{"a", "b", "c"}, ids(selected))
}

func TestSelectDiverse_LimitAboveInputReturnsAllOnce(t *testing.T) {
	candidates := []personalization.Candidate{
		candidate("a", 0.9, "template", "x"),
		candidate("b", 0.8, "template", "x"),
	}

	selected := SelectDiverse(candidates, 10)

	assert.Equal(t, []string{"a", "b"}, ids(selected))
}

func TestSelectDiverse_EmptyInput(t *testing.T) {
	assert.Empty(t, SelectDiverse(nil, 3))
}

func TestSelectDiverse_ZeroLimitUsesDefault(t *testing.T) {
	candidates := []personalization.Candidate{
		candidate("a", 0.9, "template", "x"),
		candidate("b", 0.8, "real_site", "y"),
		candidate("c", 0.7, "template", "z"),
		candidate("d", 0.6, "template", "w"),
	}

	selected := SelectDiverse(candidates, 0)

	assert.Len(t, selected, 3)
}
