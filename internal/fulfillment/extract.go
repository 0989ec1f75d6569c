package fulfillment

import "strings"

// Alias lists tried in priority order for each field. Dotted aliases walk
// into nested parameter objects. The lists mirror the slot names the agent
// has used across intent revisions, so older trained phrases keep working.
var (
	nameAliases    = []string{"name", "person", "person.name", "person.original", "given-name"}
	emailAliases   = []string{"email", "emailAddress", "email-address"}
	messageAliases = []string{"problem", "issue", "message", "problem-description", "customer_message"}
)

// ExtractName pulls the user's name out of the parameter bag.
func ExtractName(params map[string]any) string {
	return NormalizeField(firstTruthy(params, nameAliases))
}

// ExtractEmail pulls the user's email out of the parameter bag.
func ExtractEmail(params map[string]any) string {
	return NormalizeField(firstTruthy(params, emailAliases))
}

// ExtractUserMessage pulls the support message out of the parameter bag,
// falling back to the raw query text when no slot captured it.
func ExtractUserMessage(params map[string]any, fallbackText string) string {
	raw := firstTruthy(params, messageAliases)
	if raw == nil && fallbackText != "" {
		raw = fallbackText
	}
	return NormalizeField(raw)
}

// firstTruthy returns the first alias value that is present and non-empty.
// Only the winning value is normalized by the callers, so a whitespace-only
// capture deliberately shadows later aliases rather than falling through.
func firstTruthy(params map[string]any, aliases []string) any {
	if params == nil {
		return nil
	}
	for _, alias := range aliases {
		v := lookup(params, alias)
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		return v
	}
	return nil
}

// lookup resolves an alias against the parameter bag, walking nested maps
// for dotted aliases like "person.name".
func lookup(params map[string]any, alias string) any {
	parts := strings.Split(alias, ".")
	var current any = params
	for _, part := range parts {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current, ok = m[part]
		if !ok {
			return nil
		}
	}
	return current
}
