package recommendation

import "github.com/cwalinapj/Sitebuilder1.0-sub001/domain/personalization"

// defaultSelectionLimit bounds the recommendation list
const defaultSelectionLimit = 3

// SelectDiverse picks up to limit candidates from a score-ordered list,
// trading raw score for coverage of distinct metadata dimensions.
//
// The two highest-scored candidates are admitted unconditionally. Each
// later candidate is admitted only if it introduces a sample type or a tag
// not yet seen among the admitted set. If the pass ends short, remaining
// slots are backfilled with the highest-scored leftovers in original order,
// so the result is never shorter than min(limit, len(candidates)).
func SelectDiverse(candidates []personalization.Candidate, limit int) []personalization.Candidate {
	if limit <= 0 {
		limit = defaultSelectionLimit
	}
	if len(candidates) == 0 {
		return []personalization.Candidate{}
	}

	selected := make([]personalization.Candidate, 0, limit)
	admitted := make(map[string]bool, len(candidates))
	seenTypes := make(map[string]bool)
	seenTags := make(map[string]bool)

	admit := func(c personalization.Candidate) {
		selected = append(selected, c)
		admitted[c.DesignID] = true
		if t := c.Type(); t != "" {
			seenTypes[t] = true
		}
		for _, tag := range c.Tags() {
			seenTags[tag] = true
		}
	}

	for i, c := range candidates {
		if len(selected) >= limit {
			break
		}
		if i < 2 {
			admit(c)
			continue
		}
		if introducesNovelty(c, seenTypes, seenTags) {
			admit(c)
		}
	}

	// Backfill ignores novelty so the result is never short when enough
	// candidates exist.
	for _, c := range candidates {
		if len(selected) >= limit {
			break
		}
		if !admitted[c.DesignID] {
			admit(c)
		}
	}

	return selected
}

func introducesNovelty(c personalization.Candidate, seenTypes, seenTags map[string]bool) bool {
	if t := c.Type(); t != "" && !seenTypes[t] {
		return true
	}
	for _, tag := range c.Tags() {
		if !seenTags[tag] {
			return true
		}
	}
	return false
}
