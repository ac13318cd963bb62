package recommendation

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/cwalinapj/Sitebuilder1.0-sub001/application/ports"
)

// upsellKeywords matches evidence of layout/filtering interest in signal text
var upsellKeywords = regexp.MustCompile(`portfolio|filter|isotope|sortable|masonry`)

// upsellThreshold requires repeated, not single, evidence before a paid
// offer is surfaced
const upsellThreshold = 2

// UpsellOffer is the paid add-on surfaced when the heuristic triggers
type UpsellOffer struct {
	SKU      string `json:"sku"`
	Label    string `json:"label"`
	PriceUSD int    `json:"price_usd"`
}

// filterablePortfolioOffer is the single add-on the heuristic can surface
var filterablePortfolioOffer = &UpsellOffer{
	SKU:      "addon-filterable-portfolio",
	Label:    "Filterable portfolio section",
	PriceUSD: 49,
}

// ShouldOfferUpsell serializes the combined user and trend signals, lower-
// cases the text, and counts non-overlapping keyword matches. Two or more
// matches trigger the offer.
func ShouldOfferUpsell(signals []ports.Match) bool {
	serialized := make([]map[string]interface{}, 0, len(signals))
	for _, m := range signals {
		serialized = append(serialized, map[string]interface{}{
			"id":       m.ID,
			"score":    m.Score,
			"metadata": m.Metadata,
		})
	}

	raw, err := json.Marshal(serialized)
	if err != nil {
		return false
	}

	text := strings.ToLower(string(raw))
	matches := upsellKeywords.FindAllStringIndex(text, -1)

	return len(matches) >= upsellThreshold
}
