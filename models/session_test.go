package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sessionpulse/ratebot-go/models"
)

func TestSessionAttributesEchoBack(t *testing.T) {
	wire := []byte(`{"currentRating":"{}","someOtherHookKey":"kept","another":"also kept"}`)

	var attrs models.SessionAttributes
	require.NoError(t, json.Unmarshal(wire, &attrs))

	assert.Equal(t, "{}", attrs.CurrentRating)
	assert.Equal(t, "kept", attrs.Extra["someOtherHookKey"])

	out, err := json.Marshal(attrs)
	require.NoError(t, err)

	var roundTrip map[string]string
	require.NoError(t, json.Unmarshal(out, &roundTrip))
	assert.Equal(t, map[string]string{
		"currentRating":    "{}",
		"someOtherHookKey": "kept",
		"another":          "also kept",
	}, roundTrip)
}

func TestSessionAttributesClearedKeysDropOffTheWire(t *testing.T) {
	attrs := models.SessionAttributes{
		CurrentRating:       "draft",
		LastConfirmedRating: "final",
	}
	attrs.CurrentRating = ""

	out, err := json.Marshal(attrs)
	require.NoError(t, err)

	var wire map[string]string
	require.NoError(t, json.Unmarshal(out, &wire))
	assert.NotContains(t, wire, "currentRating")
	assert.Equal(t, "final", wire["lastConfirmedRating"])
}

func TestTurnEventAttributesNilMeansEmpty(t *testing.T) {
	var event models.TurnEvent
	require.NoError(t, json.Unmarshal([]byte(`{"sessionAttributes":null}`), &event))

	attrs := event.Attributes()
	require.NotNil(t, attrs)
	attrs.CurrentTest = "x"
	assert.Equal(t, "x", event.Attributes().CurrentTest)
}

func TestSlotsDefensiveAccess(t *testing.T) {
	empty := ""
	v := "London"
	slots := models.Slots{
		"SessionLocation": &v,
		"SessionDate":     nil,
		"SessionScore":    &empty,
	}

	got, ok := slots.Get("SessionLocation")
	require.True(t, ok)
	assert.Equal(t, "London", got)

	_, ok = slots.Get("SessionDate")
	assert.False(t, ok, "null value reads as absent")
	_, ok = slots.Get("SessionScore")
	assert.False(t, ok, "empty value reads as absent")
	_, ok = slots.Get("NoSuchSlot")
	assert.False(t, ok, "missing key reads as absent, not a crash")

	slots.Clear("SessionLocation")
	_, ok = slots.Get("SessionLocation")
	assert.False(t, ok)
}
