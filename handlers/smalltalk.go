package handlers

import (
	"context"

	"github.com/sessionpulse/ratebot-go/models"
)

// Reply pools for the single-turn smalltalk intents.
var (
	thanksReplies = []string{
		"No problem!",
		"You are very welcome.",
		"Happy to help.",
		"That's fine.",
		"No. Thank you.",
		"Any time.",
	}
	cancelReplies = []string{
		"No problem. Let me know if I can help with anything else.",
		"Let me know if you need anything else in future.",
		"OK. Chat to you again soon.",
	}
)

// Thanks acknowledges the user and closes the turn. No validation, no
// collaborator calls.
func (b *Bot) Thanks(ctx context.Context, event *models.TurnEvent) (*models.TurnResponse, error) {
	return models.Close(event.Attributes(), models.FulfillmentStateFulfilled,
		models.PlainText(b.pick(thanksReplies))), nil
}

// CancelRequest acknowledges a cancellation and closes the turn.
func (b *Bot) CancelRequest(ctx context.Context, event *models.TurnEvent) (*models.TurnResponse, error) {
	return models.Close(event.Attributes(), models.FulfillmentStateFulfilled,
		models.PlainText(b.pick(cancelReplies))), nil
}
