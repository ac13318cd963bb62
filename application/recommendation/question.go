package recommendation

import (
	"fmt"
	"strings"

	"github.com/cwalinapj/Sitebuilder1.0-sub001/domain/personalization"
)

const (
	// FirstQuestion always opens the question pair
	FirstQuestion = "Which of these do you prefer and why?"

	genericQuestion = "Do you prefer cleaner typography or richer color contrast next?"
)

// ComparisonQuestion derives one clarifying question contrasting the top two
// selected candidates. Font contrast is checked before palette contrast; a
// missing or empty signal counts as no difference and falls through.
func ComparisonQuestion(selected []personalization.Candidate) string {
	if len(selected) < 2 {
		return genericQuestion
	}

	first, second := selected[0], selected[1]

	fontA, fontB := first.FontGuess(), second.FontGuess()
	if fontA != "" && fontB != "" && fontA != fontB {
		return fmt.Sprintf("Do you lean toward the %s typography of the first option or the %s feel of the second?", fontA, fontB)
	}

	paletteA := strings.Join(first.Palette(), ", ")
	paletteB := strings.Join(second.Palette(), ", ")
	if paletteA != "" && paletteB != "" && paletteA != paletteB {
		return fmt.Sprintf("Does the %s palette or the %s palette feel closer to your brand?", paletteA, paletteB)
	}

	return "Which of the first two options feels closer to what you want: A or B?"
}
