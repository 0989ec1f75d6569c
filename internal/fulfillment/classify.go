package fulfillment

import "strings"

// Branch selects which handler path serves a request. Exactly one branch is
// taken per request.
type Branch int

const (
	BranchWelcome Branch = iota
	BranchSupport
	BranchFallback
)

// Intent display names the router matches on.
const (
	WelcomeIntent = "Default Welcome Intent"
	SupportIntent = "Customer Support"
)

// chipIntentAliases overrides the detected intent when the raw query text
// (lowercased, trimmed) matches a chip label verbatim. Chip taps arrive as
// plain text and the agent does not always classify them correctly.
var chipIntentAliases = map[string]string{
	"customer support": SupportIntent,
	"contact support":  SupportIntent,
}

// Classify resolves the effective intent for a turn and maps it to a branch.
// The returned intent name reflects any chip-label override.
func Classify(intent, queryText string) (Branch, string) {
	if alias, ok := chipIntentAliases[strings.ToLower(strings.TrimSpace(queryText))]; ok {
		intent = alias
	}

	switch intent {
	case WelcomeIntent:
		return BranchWelcome, intent
	case SupportIntent:
		return BranchSupport, intent
	default:
		return BranchFallback, intent
	}
}
