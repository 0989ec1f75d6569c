package fulfillment

import (
	"fmt"
	"strings"
)

const supportChipImageURL = "https://img.icons8.com/color/96/000000/customer-support.png"

// WebhookResponse is the Dialogflow ES fulfillment response body.
type WebhookResponse struct {
	FulfillmentMessages []ResponseMessage `json:"fulfillmentMessages"`
}

// ResponseMessage is one fulfillment message block: either plain text or a
// rich-content payload, never both.
type ResponseMessage struct {
	Text    *TextMessage `json:"text,omitempty"`
	Payload *RichPayload `json:"payload,omitempty"`
}

// TextMessage is a plain text block.
type TextMessage struct {
	Text []string `json:"text"`
}

// RichPayload is the rich-content envelope Dialogflow Messenger renders:
// a list of rows, each a list of blocks.
type RichPayload struct {
	RichContent [][]RichBlock `json:"richContent"`
}

// RichBlock is a single rich-content block. Only chips are used here.
type RichBlock struct {
	Type    string       `json:"type"`
	Options []ChipOption `json:"options,omitempty"`
}

// ChipOption is one selectable quick-reply chip.
type ChipOption struct {
	Text     string `json:"text"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// NewTextResponse builds a response with one text block per message.
func NewTextResponse(messages ...string) WebhookResponse {
	resp := WebhookResponse{}
	for _, msg := range messages {
		resp.FulfillmentMessages = append(resp.FulfillmentMessages, ResponseMessage{
			Text: &TextMessage{Text: []string{msg}},
		})
	}
	return resp
}

// BuildChipsPayload wraps chip options in the rich-content envelope.
func BuildChipsPayload(options []ChipOption) *RichPayload {
	return &RichPayload{
		RichContent: [][]RichBlock{{
			{Type: "chips", Options: options},
		}},
	}
}

// BuildMissingFieldsResponse prompts for the listed fields. Callers pass the
// missing field names already ordered name, email, message.
func BuildMissingFieldsResponse(missing []string) WebhookResponse {
	prompt := fmt.Sprintf(
		"I still need your %s. Please provide the remaining detail(s) so I can log your request.",
		strings.Join(missing, " and "),
	)
	return NewTextResponse(prompt)
}

// WelcomeResponse is the static greeting: two text blocks followed by a
// single chips block offering the support flow.
func WelcomeResponse() WebhookResponse {
	resp := NewTextResponse(
		"Hi there! Welcome to our support assistant.",
		"You can describe your issue in your own words, or pick an option below.",
	)
	resp.FulfillmentMessages = append(resp.FulfillmentMessages, ResponseMessage{
		Payload: BuildChipsPayload([]ChipOption{
			{Text: SupportIntent, ImageURL: supportChipImageURL},
		}),
	})
	return resp
}
