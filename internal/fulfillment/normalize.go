package fulfillment

import (
	"fmt"
	"strings"
)

// normalizeKeys is the property order tried when a parameter arrives as an
// object. Dialogflow system entities (@sys.person, @sys.any with original
// capture) wrap the value this way.
var normalizeKeys = []string{"name", "original", "displayName"}

// NormalizeField coerces a loosely typed parameter value into a trimmed
// string. It returns "" for anything absent, blank, or of an unrecognized
// shape; it never returns a whitespace-only string.
func NormalizeField(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case map[string]any:
		for _, key := range normalizeKeys {
			inner, ok := val[key]
			if !ok || inner == nil {
				continue
			}
			if s := strings.TrimSpace(fmt.Sprintf("%v", inner)); s != "" {
				return s
			}
		}
		return ""
	default:
		return ""
	}
}
