package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/sessionpulse/ratebot-go/models"
)

// HandleTurn processes one dialog turn delivered over HTTP. Validation
// failures never reach this layer as errors; what does reach it is fatal
// for the turn and surfaced opaquely to the platform.
func (b *Bot) HandleTurn(w http.ResponseWriter, r *http.Request) {
	var event models.TurnEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		b.Logger.Warn("Failed to decode turn event", zap.Error(err))
		return
	}

	b.Logger.Debug("Turn received", zap.String("bot", event.Bot.Name))

	resp, err := b.Dispatch(r.Context(), &event)
	if err != nil {
		var unknown *UnknownIntentError
		if errors.As(err, &unknown) {
			http.Error(w, "Unsupported intent", http.StatusBadRequest)
			b.Logger.Error("Unknown intent", zap.String("intent", unknown.Intent))
			return
		}
		http.Error(w, "Turn failed", http.StatusBadGateway)
		b.Logger.Error("Turn failed", zap.Error(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		b.Logger.Error("Failed to encode turn response", zap.Error(err))
	}
}

// HandleHealth reports liveness.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
