package fulfillment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvedSessionID(t *testing.T) {
	tests := []struct {
		name string
		req  WebhookRequest
		want string
	}{
		{"session wins", WebhookRequest{Session: "projects/p/agent/sessions/abc", SessionID: "s2", ResponseID: "r1"}, "projects/p/agent/sessions/abc"},
		{"sessionId next", WebhookRequest{SessionID: "s2", ResponseID: "r1"}, "s2"},
		{"responseId last", WebhookRequest{ResponseID: "r1"}, "r1"},
		{"blank values skipped", WebhookRequest{Session: "  ", SessionID: "s2"}, "s2"},
		{"all empty", WebhookRequest{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.ResolvedSessionID())
		})
	}
}

func TestChannel(t *testing.T) {
	req := WebhookRequest{OriginalDetectIntentRequest: DetectIntentRequest{Source: "telegram"}}
	assert.Equal(t, "telegram", req.Channel())

	assert.Equal(t, "unknown", (&WebhookRequest{}).Channel())
}
