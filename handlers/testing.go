package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/sessionpulse/ratebot-go/models"
	"github.com/sessionpulse/ratebot-go/validation"
)

// Testing drives the A/B/C test-selection flow. It is the only intent
// that attaches a response card to its re-prompt, so the user can pick a
// target with a button instead of typing.
func (b *Bot) Testing(ctx context.Context, event *models.TurnEvent) (*models.TurnResponse, error) {
	logger := b.turnLogger(event)
	logger.Debug("testing invoked",
		zap.String("invocation_source", event.InvocationSource))

	slots := event.CurrentIntent.Slots
	attrs := event.Attributes()

	target, _ := slots.Get(models.SlotTestTarget)
	draft, err := json.Marshal(map[string]string{models.SlotTestTarget: target})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal test draft: %w", err)
	}
	attrs.CurrentTest = string(draft)

	if event.InvocationSource == models.SourceDialogCodeHook {
		result := validation.CheckTesting(slots)
		if !result.Valid {
			slots.Clear(result.ViolatedSlot)
			logger.Debug("Test target rejected", zap.String("rejected", target))
			card := models.NewResponseCard("Test targets", "Pick one to test",
				validation.TestTargets)
			return models.ElicitSlotWithCard(attrs, event.CurrentIntent.Name, slots,
				result.ViolatedSlot,
				models.PlainText("Select an option or type another option"), card), nil
		}
		return models.Delegate(attrs, slots), nil
	}

	attrs.CurrentTest = ""
	attrs.LastConfirmedTest = string(draft)

	return models.Close(attrs, models.FulfillmentStateFulfilled,
		models.PlainText(fmt.Sprintf("Fulfilling testing intent with TestTarget: %s", target))), nil
}
