package personalization

import (
	"fmt"
	"strings"
)

// Payload is the open map carried by an interaction event. Unknown keys
// round-trip untouched; known keys are read through the accessors below.
type Payload map[string]interface{}

// StructuredTags returns the caller-supplied structured_tags value, or nil
// if absent
func (p Payload) StructuredTags() (interface{}, bool) {
	v, ok := p["structured_tags"]
	return v, ok
}

// Choice returns the trimmed choice string for preference events
func (p Payload) Choice() string {
	s, _ := p["choice"].(string)
	return strings.TrimSpace(s)
}

// MemorySentence returns the caller-supplied memory sentence untouched.
// Callers deciding whether one was supplied must trim it themselves.
func (p Payload) MemorySentence() string {
	s, _ := p["memory_sentence"].(string)
	return s
}

// Reason returns the free-form reason string, if any
func (p Payload) Reason() string {
	s, _ := p["reason"].(string)
	return strings.TrimSpace(s)
}

// RawTags returns the generic tags value, or nil if absent
func (p Payload) RawTags() interface{} {
	return p["tags"]
}

// InteractionEvent is the ephemeral ingestion input. It is logged externally
// and transformed into a MemoryRecord; the engine never reads it back.
type InteractionEvent struct {
	UserID       string
	SessionID    string
	EventType    string
	Payload      Payload
	BusinessType string
	Device       string
}

// trackedEventTypes is the fixed set of event types promoted from per-user
// memory into the global-trends index. Immutable after init.
var trackedEventTypes = map[string]bool{
	"like":            true,
	"dislike":         true,
	"font_pref":       true,
	"palette_pref":    true,
	"layout_pref":     true,
	"upsell_shown":    true,
	"upsell_accepted": true,
	"question_answer": true,
}

// IsTrackedEventType reports whether events of this type feed the
// global-trends index
func IsTrackedEventType(eventType string) bool {
	return trackedEventTypes[eventType]
}

// preferenceAxes maps preference event types to the axis name used in
// synthetic tags
var preferenceAxes = map[string]string{
	"font_pref":    "font",
	"palette_pref": "palette",
	"layout_pref":  "layout",
}

// DeriveTags maps an interaction event to its structured preference tags.
// Precedence: caller-supplied structured_tags win outright; then preference
// events with a choice produce a single synthetic prefers_<axis>_<choice>
// tag; then generic payload tags (possibly empty).
func DeriveTags(eventType string, payload Payload) []string {
	if payload == nil {
		return []string{}
	}

	if v, ok := payload.StructuredTags(); ok {
		if _, isArray := v.([]interface{}); isArray {
			return NormalizeTags(v)
		}
		if _, isArray := v.([]string); isArray {
			return NormalizeTags(v)
		}
	}

	if axis, ok := preferenceAxes[eventType]; ok {
		if choice := payload.Choice(); choice != "" {
			return []string{syntheticTag(axis, choice)}
		}
	}

	return NormalizeTags(payload.RawTags())
}

// syntheticTag builds prefers_<axis>_<choice> with the choice lower-cased
// and inner whitespace collapsed to underscores
func syntheticTag(axis, choice string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(choice)), "_")
	return fmt.Sprintf("prefers_%s_%s", axis, normalized)
}
