package personalization

import "fmt"

// MemoryRecord is the embedded form of an interaction event. It is written
// to the per-user index always and mirrored into the global-trends index
// when the event type is tracked.
type MemoryRecord struct {
	UserID       string
	EventID      string
	EventType    string
	Sentence     string
	Vector       []float32
	Tags         []string
	BusinessType string
	Device       string
	Timestamp    string
}

// ID returns the composite per-user index id
func (m *MemoryRecord) ID() string {
	return fmt.Sprintf("%s#%s", m.UserID, m.EventID)
}

// Metadata returns the fields stored alongside the vector in the per-user
// index
func (m *MemoryRecord) Metadata() map[string]interface{} {
	meta := map[string]interface{}{
		"user_id":    m.UserID,
		"event_type": m.EventType,
		"tags":       m.Tags,
		"timestamp":  m.Timestamp,
	}
	if m.BusinessType != "" {
		meta["business_type"] = m.BusinessType
	}
	if m.Device != "" {
		meta["device"] = m.Device
	}
	return meta
}

// TrendsMetadata returns the metadata for the global-trends copy. The trends
// copy carries no user identity.
func (m *MemoryRecord) TrendsMetadata() map[string]interface{} {
	meta := m.Metadata()
	delete(meta, "user_id")
	return meta
}
