package webhook

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Handler is the inbound webhook HTTP endpoint. It authenticates the
// delivery, parses the envelope, and dispatches the batch.
type Handler struct {
	dispatcher    *Dispatcher
	channelSecret string
	logger        zerolog.Logger
}

// NewHandler creates a new webhook handler.
func NewHandler(dispatcher *Dispatcher, channelSecret string, logger zerolog.Logger) *Handler {
	return &Handler{
		dispatcher:    dispatcher,
		channelSecret: channelSecret,
		logger:        logger,
	}
}

// HandleCallback handles a webhook delivery (HTTP POST). The body is
// never parsed before the signature checks out. The response only ever
// acknowledges receipt: per-event outcomes are logged, not reported.
func (h *Handler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if !ValidSignature(h.channelSecret, body, r.Header.Get(SignatureHeader)) {
		writeJSON(w, http.StatusUnauthorized, `{"message":"invalid signature"}`)
		return
	}

	var envelope Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	deliveryID := uuid.NewString()
	logger := h.logger.With().Str("delivery_id", deliveryID).Logger()
	logger.Info().Int("events", len(envelope.Events)).Msg("webhook delivery received")

	results := h.dispatcher.Dispatch(r.Context(), envelope.Events)

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		logger.Warn().Int("failed", failed).Int("total", len(results)).
			Msg("some events failed")
	}

	writeJSON(w, http.StatusOK, `{"status":"ok"}`)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(body))
}
