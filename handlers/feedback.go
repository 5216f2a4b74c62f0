package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/sessionpulse/ratebot-go/models"
	"github.com/sessionpulse/ratebot-go/validation"
)

// ProvideFeedback handles the ProvideFeedback intent. Fulfillment runs
// sentiment analysis on the comments before the record goes to the
// stream; the sentiment call blocks the turn and its failure fails the
// turn.
func (b *Bot) ProvideFeedback(ctx context.Context, event *models.TurnEvent) (*models.TurnResponse, error) {
	logger := b.turnLogger(event)
	logger.Debug("provide_feedback invoked",
		zap.String("invocation_source", event.InvocationSource))

	slots := event.CurrentIntent.Slots
	attrs := event.Attributes()

	record := buildFeedbackRecord(event)
	draft, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal feedback draft: %w", err)
	}

	// Same draft policy as ratings: overwrite every dialog turn, clear at
	// Close.
	attrs.CurrentFeedback = string(draft)

	if event.InvocationSource == models.SourceDialogCodeHook {
		result := validation.CheckFeedback(slots, b.Now())
		if !result.Valid {
			slots.Clear(result.ViolatedSlot)
			logger.Debug("Feedback slot rejected",
				zap.String("slot", result.ViolatedSlot),
				zap.String("message", result.Message))
			return models.ElicitSlot(attrs, event.CurrentIntent.Name, slots,
				result.ViolatedSlot, models.PlainText(result.Message)), nil
		}
		return models.Delegate(attrs, slots), nil
	}

	// Slots are all populated; score the comments, then emit.
	sentiment, err := b.Sentiment.DetectSentiment(ctx, record.SessionComments)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze feedback sentiment: %w", err)
	}
	record.Sentiment = sentiment

	payload, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal feedback record: %w", err)
	}

	logger.Debug("Attempting to fulfill ProvideFeedback", zap.ByteString("record", payload))

	ack, err := b.Stream.PutRecord(ctx, partitionKey, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to publish feedback record: %w", err)
	}
	logger.Debug("Feedback posted to stream", zap.String("ack", ack))
	recordsEmitted.WithLabelValues(models.RecordTypeFeedback).Inc()

	attrs.CurrentFeedback = ""
	attrs.LastConfirmedFeedback = string(payload)

	return models.Close(attrs, models.FulfillmentStateFulfilled,
		models.PlainText("Thank you for providing feedback on this session.")), nil
}

func buildFeedbackRecord(event *models.TurnEvent) *models.FeedbackRecord {
	slots := event.CurrentIntent.Slots
	record := &models.FeedbackRecord{
		RecordType: models.RecordTypeFeedback,
		UserID:     event.UserID,
	}
	if location, ok := slots.Get(models.SlotSessionLocation); ok {
		record.Location = title(location)
	}
	if date, ok := slots.Get(models.SlotSessionDate); ok {
		record.Date = date
	}
	if comments, ok := slots.Get(models.SlotSessionComments); ok {
		record.SessionComments = comments
	}
	if id, ok := slots.Get(models.SlotSessionID); ok {
		record.ID = title(id)
	}
	return record
}
