package personalization

import (
	"fmt"
	"strings"

	apperrors "github.com/cwalinapj/Sitebuilder1.0-sub001/pkg/errors"
)

// SampleType discriminates the two kinds of catalog entries
type SampleType string

const (
	SampleTypeTemplate SampleType = "template"
	SampleTypeRealSite SampleType = "real_site"
)

// LicensePolicy governs how a catalog entry may be shown to users
type LicensePolicy string

const (
	LicenseInternalOK LicensePolicy = "internal_ok"
	LicenseDemoOnly   LicensePolicy = "demo_only"
	LicenseLinkOnly   LicensePolicy = "link_only"
)

// DesignSample is a catalog entry: a template (template_id set) or a real
// site (url set). Samples are write-once; the catalog index stores them by id.
type DesignSample struct {
	ID              string
	Type            SampleType
	TemplateID      string
	URL             string
	LicensePolicy   LicensePolicy
	Tags            []string
	TechFingerprint string
	FontGuess       string
	Palette         []string
	Screenshot      string
}

// ParseDesignSample normalizes and validates a raw decoded record.
// Rules run in order and the first failure wins; the returned error is a
// validation error carrying a human-readable reason.
func ParseDesignSample(raw map[string]interface{}) (*DesignSample, error) {
	id := trimmedString(raw, "id")
	if id == "" {
		return nil, apperrors.NewValidationError("id is required")
	}

	sampleType := SampleType(trimmedString(raw, "type"))
	if sampleType != SampleTypeTemplate && sampleType != SampleTypeRealSite {
		return nil, apperrors.NewValidationError("type must be template or real_site")
	}

	policy := LicensePolicy(trimmedString(raw, "license_policy"))
	if policy != LicenseInternalOK && policy != LicenseDemoOnly && policy != LicenseLinkOnly {
		return nil, apperrors.NewValidationError("license_policy must be internal_ok, demo_only, or link_only")
	}

	url := trimmedString(raw, "url")
	if sampleType == SampleTypeRealSite && url == "" {
		return nil, apperrors.NewValidationError("url is required for real_site")
	}

	templateID := trimmedString(raw, "template_id")
	if sampleType == SampleTypeTemplate && templateID == "" {
		return nil, apperrors.NewValidationError("template_id is required for template")
	}

	return &DesignSample{
		ID:              id,
		Type:            sampleType,
		TemplateID:      templateID,
		URL:             url,
		LicensePolicy:   policy,
		Tags:            NormalizeTags(raw["tags"]),
		TechFingerprint: trimmedString(raw, "tech_fingerprint"),
		FontGuess:       trimmedString(raw, "font_guess"),
		Palette:         NormalizeTags(raw["palette"]),
		Screenshot:      trimmedString(raw, "screenshot"),
	}, nil
}

// EmbeddingText renders the string embedded for this sample. It is only
// ever used as embedding input, never shown to users.
func (s *DesignSample) EmbeddingText() string {
	var b strings.Builder

	b.WriteString(s.ID)
	if s.Type == SampleTypeRealSite {
		b.WriteString(fmt.Sprintf(" real site %s", s.URL))
	} else {
		b.WriteString(fmt.Sprintf(" template %s", s.TemplateID))
	}
	if len(s.Tags) > 0 {
		b.WriteString(fmt.Sprintf(" tags: %s", strings.Join(s.Tags, ", ")))
	}
	if s.FontGuess != "" {
		b.WriteString(fmt.Sprintf(" font: %s", s.FontGuess))
	}
	if len(s.Palette) > 0 {
		b.WriteString(fmt.Sprintf(" palette: %s", strings.Join(s.Palette, ", ")))
	}
	if s.TechFingerprint != "" {
		b.WriteString(fmt.Sprintf(" tech: %s", s.TechFingerprint))
	}
	b.WriteString(fmt.Sprintf(" license: %s", s.LicensePolicy))

	return b.String()
}

// Metadata returns the fields stored alongside the sample's vector in the
// catalog index. The selector and question generator read these back as
// candidate metadata.
func (s *DesignSample) Metadata() map[string]interface{} {
	meta := map[string]interface{}{
		"type":           string(s.Type),
		"license_policy": string(s.LicensePolicy),
		"tags":           s.Tags,
	}
	if s.TemplateID != "" {
		meta["template_id"] = s.TemplateID
	}
	if s.URL != "" {
		meta["url"] = s.URL
	}
	if s.FontGuess != "" {
		meta["font_guess"] = s.FontGuess
	}
	if len(s.Palette) > 0 {
		meta["palette"] = s.Palette
	}
	if s.TechFingerprint != "" {
		meta["tech_fingerprint"] = s.TechFingerprint
	}
	if s.Screenshot != "" {
		meta["screenshot"] = s.Screenshot
	}
	return meta
}

func trimmedString(raw map[string]interface{}, key string) string {
	s, _ := raw[key].(string)
	return strings.TrimSpace(s)
}
