package fulfillment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/wolfman30/dialogflow-fulfillment/internal/observability/metrics"
	"github.com/wolfman30/dialogflow-fulfillment/pkg/logging"
)

const genericApology = "I'm sorry, something went wrong on our end. Please try again."

// Handler serves the Dialogflow fulfillment webhook. Every request resolves
// to an HTTP 200 with a fulfillment body; failures surface only as apology
// text, never as an error status the agent would reject.
type Handler struct {
	recorder *Recorder
	fallback *FallbackResponder
	metrics  *metrics.WebhookMetrics
	logger   *logging.Logger
}

// NewHandler creates a fulfillment webhook handler.
func NewHandler(recorder *Recorder, fallback *FallbackResponder, m *metrics.WebhookMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		recorder: recorder,
		fallback: fallback,
		metrics:  m,
		logger:   logger,
	}
}

// Handle processes POST /dialogflow.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	branch := "error"
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("webhook handler panicked", "panic", rec)
			h.writeJSON(w, NewTextResponse(genericApology))
		}
		h.metrics.ObserveRequest(branch, time.Since(start).Seconds())
	}()

	var req WebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode webhook request", "error", err)
		h.writeJSON(w, NewTextResponse(genericApology))
		return
	}

	queryText := req.QueryResult.QueryText
	resolved, intent := Classify(req.QueryResult.Intent.DisplayName, queryText)

	switch resolved {
	case BranchWelcome:
		branch = "welcome"
		h.writeJSON(w, WelcomeResponse())
	case BranchSupport:
		branch = "support"
		h.handleSupport(r.Context(), w, &req, intent)
	default:
		branch = "fallback"
		h.handleFallback(r.Context(), w, queryText)
	}
}

func (h *Handler) handleSupport(ctx context.Context, w http.ResponseWriter, req *WebhookRequest, intent string) {
	params := req.QueryResult.Parameters
	name := ExtractName(params)
	email := ExtractEmail(params)
	message := ExtractUserMessage(params, req.QueryResult.QueryText)

	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if email == "" {
		missing = append(missing, "email")
	}
	if message == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		h.writeJSON(w, BuildMissingFieldsResponse(missing))
		return
	}

	record := ConversationRecord{
		SessionID:   nullable(req.ResolvedSessionID()),
		IntentName:  nullable(intent),
		UserName:    nullable(name),
		UserEmail:   nullable(email),
		UserMessage: nullable(message),
		Channel:     nullable(req.Channel()),
	}
	if err := h.recorder.Save(ctx, record); err != nil {
		h.logger.Error("failed to record support conversation", "error", err)
		h.metrics.ObserveRecord("failed")
	} else {
		h.metrics.ObserveRecord("saved")
	}

	h.writeJSON(w, NewTextResponse(fmt.Sprintf(
		"Thanks %s! I have logged your request and our team will reach out at %s very soon.",
		name, email,
	)))
}

func (h *Handler) handleFallback(ctx context.Context, w http.ResponseWriter, queryText string) {
	prompt := queryText
	if prompt == "" {
		prompt = "Hello"
	}
	h.writeJSON(w, NewTextResponse(h.fallback.Respond(ctx, prompt)))
}

// HealthCheck reports service liveness.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, map[string]string{"status": "ok"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", "error", err)
	}
}
