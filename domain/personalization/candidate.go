package personalization

// Candidate is a transient ranked catalog match, produced fresh per
// recommendation request and never persisted.
type Candidate struct {
	DesignID string                 `json:"design_id"`
	Score    float64                `json:"score"`
	Meta     map[string]interface{} `json:"meta"`
}

// Type returns the sample type stored in the candidate's metadata
func (c Candidate) Type() string {
	s, _ := c.Meta["type"].(string)
	return s
}

// Tags returns the normalized tag list stored in the candidate's metadata
func (c Candidate) Tags() []string {
	return NormalizeTags(c.Meta["tags"])
}

// FontGuess returns the detected font, or empty when unknown
func (c Candidate) FontGuess() string {
	s, _ := c.Meta["font_guess"].(string)
	return s
}

// Palette returns the normalized color tokens stored in the candidate's
// metadata
func (c Candidate) Palette() []string {
	return NormalizeTags(c.Meta["palette"])
}
