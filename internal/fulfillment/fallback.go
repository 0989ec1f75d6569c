package fulfillment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/wolfman30/dialogflow-fulfillment/pkg/logging"
	"google.golang.org/api/option"
)

const (
	fallbackApology    = "I'm sorry, I didn't catch that. Could you please rephrase?"
	fallbackEmptyReply = "I'm sorry, I still didn't understand that. Could you try asking in a different way?"
)

// TextGenerator produces a reply for a raw user prompt.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// GeminiGenerator implements TextGenerator using Google's Gemini API.
type GeminiGenerator struct {
	client  *genai.Client
	modelID string
}

// NewGeminiGenerator creates a Gemini-backed generator.
func NewGeminiGenerator(ctx context.Context, apiKey, modelID string) (*GeminiGenerator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("fulfillment: gemini api key is required")
	}
	if strings.TrimSpace(modelID) == "" {
		modelID = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("fulfillment: failed to create gemini client: %w", err)
	}

	return &GeminiGenerator{
		client:  client,
		modelID: modelID,
	}, nil
}

// GenerateText sends the prompt to Gemini and returns the trimmed text of the
// first candidate. An empty reply is returned as "" with a nil error.
func (g *GeminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	model := g.client.GenerativeModel(g.modelID)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("fulfillment: gemini generation failed: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", nil
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return "", nil
	}

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}
	return strings.TrimSpace(text.String()), nil
}

// Close releases resources held by the Gemini client.
func (g *GeminiGenerator) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// FallbackResponder answers unmatched queries through a text generator,
// degrading to canned apologies when the generator is missing or fails.
type FallbackResponder struct {
	generator TextGenerator
	logger    *logging.Logger
}

// NewFallbackResponder builds a responder. generator may be nil when no
// generative model is configured.
func NewFallbackResponder(generator TextGenerator, logger *logging.Logger) *FallbackResponder {
	if logger == nil {
		logger = logging.Default()
	}
	return &FallbackResponder{
		generator: generator,
		logger:    logger,
	}
}

// Respond returns a reply for the prompt. It never fails: generator errors
// are logged and absorbed into a fixed apology.
func (f *FallbackResponder) Respond(ctx context.Context, prompt string) string {
	if f.generator == nil {
		f.logger.Warn("generative client not configured, using canned fallback")
		return fallbackApology
	}

	text, err := f.generator.GenerateText(ctx, prompt)
	if err != nil {
		f.logger.Error("generative fallback failed", "error", err)
		return fallbackApology
	}
	if strings.TrimSpace(text) == "" {
		return fallbackEmptyReply
	}
	return strings.TrimSpace(text)
}
