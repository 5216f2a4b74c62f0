package handlers

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/sessionpulse/ratebot-go/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // the platform fronts this endpoint; no origin policy here
	},
}

type socketError struct {
	Error string `json:"error"`
}

// HandleTurnSocket serves turns over a websocket: each inbound JSON frame
// is one TurnEvent, answered with one TurnResponse. Used for driving the
// bot interactively from a local dialog console.
func (b *Bot) HandleTurnSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		b.Logger.Error("Failed to upgrade to websocket", zap.Error(err))
		return
	}
	defer conn.Close()

	b.Logger.Info("Turn socket opened",
		zap.String("remote", conn.RemoteAddr().String()))

	for {
		var event models.TurnEvent
		if err := conn.ReadJSON(&event); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				b.Logger.Error("Turn socket error", zap.Error(err))
			}
			return
		}

		resp, err := b.Dispatch(r.Context(), &event)
		if err != nil {
			// A failed turn is fatal for that turn only; the socket stays up.
			b.Logger.Error("Turn failed", zap.Error(err))
			if err := conn.WriteJSON(socketError{Error: err.Error()}); err != nil {
				b.Logger.Error("Failed to write turn error", zap.Error(err))
				return
			}
			continue
		}

		if err := conn.WriteJSON(resp); err != nil {
			b.Logger.Error("Failed to write turn response", zap.Error(err))
			return
		}
	}
}
