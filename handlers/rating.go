package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/sessionpulse/ratebot-go/models"
	"github.com/sessionpulse/ratebot-go/validation"
)

// RateSession handles the RateSession intent: slot validation while the
// dialog is in progress, then record emission once the platform has every
// slot.
func (b *Bot) RateSession(ctx context.Context, event *models.TurnEvent) (*models.TurnResponse, error) {
	logger := b.turnLogger(event)
	logger.Debug("rate_session invoked",
		zap.String("invocation_source", event.InvocationSource))

	slots := event.CurrentIntent.Slots
	attrs := event.Attributes()

	record := buildRatingRecord(event)
	draft, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal rating draft: %w", err)
	}

	// The in-progress draft is overwritten every dialog turn and stashed
	// in session attributes for inspection only.
	attrs.CurrentRating = string(draft)

	if event.InvocationSource == models.SourceDialogCodeHook {
		result := validation.CheckRating(slots, b.Now())
		if !result.Valid {
			slots.Clear(result.ViolatedSlot)
			logger.Debug("Rating slot rejected",
				zap.String("slot", result.ViolatedSlot),
				zap.String("message", result.Message))
			return models.ElicitSlot(attrs, event.CurrentIntent.Name, slots,
				result.ViolatedSlot, models.PlainText(result.Message)), nil
		}
		return models.Delegate(attrs, slots), nil
	}

	// Slots are all populated; emit the finalized record.
	logger.Debug("Attempting to fulfill RateSession", zap.ByteString("record", draft))

	ack, err := b.Stream.PutRecord(ctx, partitionKey, draft)
	if err != nil {
		return nil, fmt.Errorf("failed to publish rating record: %w", err)
	}
	logger.Debug("Rating posted to stream", zap.String("ack", ack))
	recordsEmitted.WithLabelValues(models.RecordTypeRating).Inc()

	attrs.CurrentRating = ""
	attrs.LastConfirmedRating = string(draft)

	return models.Close(attrs, models.FulfillmentStateFulfilled,
		models.PlainText("Thank you for rating this session.")), nil
}

func buildRatingRecord(event *models.TurnEvent) *models.RatingRecord {
	slots := event.CurrentIntent.Slots
	record := &models.RatingRecord{
		RecordType: models.RecordTypeRating,
		UserID:     event.UserID,
	}
	if location, ok := slots.Get(models.SlotSessionLocation); ok {
		record.Location = title(location)
	}
	if date, ok := slots.Get(models.SlotSessionDate); ok {
		record.Date = date
	}
	if raw, ok := slots.Get(models.SlotSessionScore); ok {
		if score, valid := validation.ParseScore(raw); valid {
			record.Score = &score
		}
	}
	if id, ok := slots.Get(models.SlotSessionID); ok {
		record.ID = title(id)
	}
	return record
}
