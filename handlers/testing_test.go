package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sessionpulse/ratebot-go/models"
)

func TestTestingReElicitsWithCard(t *testing.T) {
	bot, _, _ := newTestBot(t)

	slots := models.Slots{models.SlotTestTarget: slotp("D")}
	resp, err := bot.Dispatch(context.Background(),
		newEvent(models.IntentTesting, models.SourceDialogCodeHook, slots))
	require.NoError(t, err)

	assert.Equal(t, models.ActionElicitSlot, resp.DialogAction.Type)
	assert.Equal(t, models.SlotTestTarget, resp.DialogAction.SlotToElicit)
	assert.Equal(t, "Select an option or type another option", resp.DialogAction.Message.Content)

	card := resp.DialogAction.ResponseCard
	require.NotNil(t, card, "guided re-prompt carries a card")
	require.Len(t, card.GenericAttachments, 1)
	require.Len(t, card.GenericAttachments[0].Buttons, 3)
	assert.Equal(t, "A", card.GenericAttachments[0].Buttons[0].Value)

	_, present := slots.Get(models.SlotTestTarget)
	assert.False(t, present, "rejected target nulled for re-collection")
}

func TestTestingValidTargetDelegates(t *testing.T) {
	bot, _, _ := newTestBot(t)

	resp, err := bot.Dispatch(context.Background(),
		newEvent(models.IntentTesting, models.SourceDialogCodeHook,
			models.Slots{models.SlotTestTarget: slotp("B")}))
	require.NoError(t, err)
	assert.Equal(t, models.ActionDelegate, resp.DialogAction.Type)
	assert.NotEmpty(t, resp.SessionAttributes.CurrentTest)
}

func TestTestingFulfillment(t *testing.T) {
	bot, _, _ := newTestBot(t)

	resp, err := bot.Dispatch(context.Background(),
		newEvent(models.IntentTesting, models.SourceFulfillmentCodeHook,
			models.Slots{models.SlotTestTarget: slotp("B")}))
	require.NoError(t, err)

	assert.Equal(t, models.ActionClose, resp.DialogAction.Type)
	assert.Contains(t, resp.DialogAction.Message.Content, "TestTarget: B")
	assert.Empty(t, resp.SessionAttributes.CurrentTest)
	assert.Contains(t, resp.SessionAttributes.LastConfirmedTest, `"TestTarget":"B"`)
}
