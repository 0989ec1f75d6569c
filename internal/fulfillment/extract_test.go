package fulfillment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractorsNilParameters(t *testing.T) {
	assert.Equal(t, "", ExtractName(nil))
	assert.Equal(t, "", ExtractEmail(nil))
	assert.Equal(t, "", ExtractUserMessage(nil, ""))
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]any
		want   string
	}{
		{"direct name", map[string]any{"name": "Ali"}, "Ali"},
		{"person object", map[string]any{"person": map[string]any{"name": "Ali"}}, "Ali"},
		{"person original", map[string]any{"person": map[string]any{"original": "Ali"}}, "Ali"},
		{"given-name", map[string]any{"given-name": "Ali"}, "Ali"},
		{"name wins over person", map[string]any{"name": "Ali", "person": map[string]any{"name": "Bob"}}, "Ali"},
		{"empty name skipped", map[string]any{"name": "", "person": map[string]any{"name": "Bob"}}, "Bob"},
		{"whitespace name shadows later aliases", map[string]any{"name": "  ", "given-name": "Bob"}, ""},
		{"no match", map[string]any{"city": "Lahore"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractName(tt.params))
		})
	}
}

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]any
		want   string
	}{
		{"email", map[string]any{"email": "ali@example.com"}, "ali@example.com"},
		{"emailAddress", map[string]any{"emailAddress": " ali@example.com "}, "ali@example.com"},
		{"email-address", map[string]any{"email-address": "ali@example.com"}, "ali@example.com"},
		{"priority", map[string]any{"email": "a@x.com", "emailAddress": "b@x.com"}, "a@x.com"},
		{"absent", map[string]any{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractEmail(tt.params))
		})
	}
}

func TestExtractUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		params   map[string]any
		fallback string
		want     string
	}{
		{"problem", map[string]any{"problem": "printer broke"}, "ignored", "printer broke"},
		{"issue", map[string]any{"issue": "printer broke"}, "", "printer broke"},
		{"message", map[string]any{"message": " help "}, "", "help"},
		{"problem-description", map[string]any{"problem-description": "help"}, "", "help"},
		{"customer_message", map[string]any{"customer_message": "help"}, "", "help"},
		{"fallback text used", map[string]any{}, "my screen is blank", "my screen is blank"},
		{"fallback text trimmed", nil, "  hi  ", "hi"},
		{"blank fallback", map[string]any{}, "   ", ""},
		{"no match no fallback", map[string]any{"city": "x"}, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractUserMessage(tt.params, tt.fallback))
		})
	}
}

func TestExtractorsIdempotent(t *testing.T) {
	params := map[string]any{
		"person": map[string]any{"name": " Ali "},
		"email":  "ali@example.com",
	}
	assert.Equal(t, ExtractName(params), ExtractName(params))
	assert.Equal(t, ExtractEmail(params), ExtractEmail(params))
	assert.Equal(t, ExtractUserMessage(params, "hi"), ExtractUserMessage(params, "hi"))
}
