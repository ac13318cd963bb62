package personalization

import "strings"

// NormalizeTags converts an arbitrary decoded JSON value into an ordered
// list of distinct, trimmed, lower-cased tags. Non-array input yields an
// empty list rather than an error: malformed tag input never fails the caller.
func NormalizeTags(value interface{}) []string {
	var raw []interface{}

	switch v := value.(type) {
	case []interface{}:
		raw = v
	case []string:
		raw = make([]interface{}, len(v))
		for i, s := range v {
			raw[i] = s
		}
	default:
		return []string{}
	}

	seen := make(map[string]bool, len(raw))
	tags := make([]string, 0, len(raw))

	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			continue
		}
		tag := strings.ToLower(strings.TrimSpace(s))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}

	return tags
}
