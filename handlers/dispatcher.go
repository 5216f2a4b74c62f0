package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sessionpulse/ratebot-go/models"
)

// UnknownIntentError is returned when the platform sends an intent this
// bot has no handler for. It is fatal for the turn; no handler or
// collaborator is invoked.
type UnknownIntentError struct {
	Intent string
}

func (e *UnknownIntentError) Error() string {
	return fmt.Sprintf("intent with name %s not supported", e.Intent)
}

// Dispatch routes one turn to the handler for its intent.
func (b *Bot) Dispatch(ctx context.Context, event *models.TurnEvent) (*models.TurnResponse, error) {
	b.Logger.Debug("Dispatching turn",
		zap.String("user_id", event.UserID),
		zap.String("intent", event.CurrentIntent.Name))

	resp, err := b.route(ctx, event)
	if err != nil {
		turnFailures.WithLabelValues(event.CurrentIntent.Name).Inc()
		return nil, err
	}

	turnsTotal.WithLabelValues(event.CurrentIntent.Name, resp.DialogAction.Type).Inc()
	return resp, nil
}

func (b *Bot) route(ctx context.Context, event *models.TurnEvent) (*models.TurnResponse, error) {
	switch event.CurrentIntent.Name {
	case models.IntentTesting:
		return b.Testing(ctx, event)
	case models.IntentCancelRequest:
		return b.CancelRequest(ctx, event)
	case models.IntentThanks:
		return b.Thanks(ctx, event)
	case models.IntentRateSession:
		return b.RateSession(ctx, event)
	case models.IntentProvideFeedback:
		return b.ProvideFeedback(ctx, event)
	}
	return nil, &UnknownIntentError{Intent: event.CurrentIntent.Name}
}
