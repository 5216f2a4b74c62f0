package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sessionpulse/ratebot-go/models"
)

func TestHandleTurnSocket(t *testing.T) {
	bot, _, _ := newTestBot(t)

	srv := httptest.NewServer(http.HandlerFunc(bot.HandleTurnSocket))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(
		newEvent(models.IntentThanks, models.SourceFulfillmentCodeHook, models.Slots{})))

	var resp models.TurnResponse
	require.NoError(t, conn.ReadJSON(&resp))
	assert.Equal(t, models.ActionClose, resp.DialogAction.Type)
	assert.Contains(t, thanksReplies, resp.DialogAction.Message.Content)

	// A failed turn is reported as an error frame; the socket stays usable.
	require.NoError(t, conn.WriteJSON(
		newEvent("Unknown", models.SourceDialogCodeHook, models.Slots{})))

	var socketErr struct {
		Error string `json:"error"`
	}
	require.NoError(t, conn.ReadJSON(&socketErr))
	assert.Contains(t, socketErr.Error, "not supported")

	require.NoError(t, conn.WriteJSON(
		newEvent(models.IntentCancelRequest, models.SourceFulfillmentCodeHook, models.Slots{})))
	require.NoError(t, conn.ReadJSON(&resp))
	assert.Equal(t, models.ActionClose, resp.DialogAction.Type)
}
