package fulfillment

import "strings"

// WebhookRequest is the Dialogflow ES fulfillment request body. Only the
// fields this service reads are modeled; parameters stay loosely typed
// because agent definitions send several different shapes for the same slot.
type WebhookRequest struct {
	ResponseID                  string              `json:"responseId"`
	Session                     string              `json:"session"`
	SessionID                   string              `json:"sessionId"`
	QueryResult                 QueryResult         `json:"queryResult"`
	OriginalDetectIntentRequest DetectIntentRequest `json:"originalDetectIntentRequest"`
}

// QueryResult carries the NLU output for a single user turn.
type QueryResult struct {
	QueryText  string         `json:"queryText"`
	Parameters map[string]any `json:"parameters"`
	Intent     Intent         `json:"intent"`
}

// Intent identifies the matched agent intent.
type Intent struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

// DetectIntentRequest describes the platform the request originated from.
type DetectIntentRequest struct {
	Source string `json:"source"`
}

// ResolvedSessionID returns the first populated session identifier. Dialogflow
// sends the full session path on ES, but integrations and the simulator vary,
// so responseId serves as the last resort.
func (r *WebhookRequest) ResolvedSessionID() string {
	for _, candidate := range []string{r.Session, r.SessionID, r.ResponseID} {
		if s := strings.TrimSpace(candidate); s != "" {
			return s
		}
	}
	return ""
}

// Channel returns the originating integration source, or "unknown" when the
// request did not come through an integration.
func (r *WebhookRequest) Channel() string {
	if s := strings.TrimSpace(r.OriginalDetectIntentRequest.Source); s != "" {
		return s
	}
	return "unknown"
}
