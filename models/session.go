package models

import "encoding/json"

// Wire keys for the attributes the bot itself maintains. Anything else in
// the map belongs to other code hooks and is echoed back untouched.
const (
	attrCurrentFeedback       = "currentFeedback"
	attrCurrentRating         = "currentRating"
	attrCurrentTest           = "currentTest"
	attrLastConfirmedFeedback = "lastConfirmedFeedback"
	attrLastConfirmedRating   = "lastConfirmedRating"
	attrLastConfirmedTest     = "lastConfirmedTest"
)

// SessionAttributes is the only cross-turn state the bot has. The platform
// stores it opaquely between turns and hands it back on the next one. The
// Current* fields hold the in-progress draft record for the active intent
// (kept for inspection only), the LastConfirmed* fields the most recently
// finalized record. An empty field means the key is absent and is not
// written to the wire.
type SessionAttributes struct {
	CurrentFeedback       string
	CurrentRating         string
	CurrentTest           string
	LastConfirmedFeedback string
	LastConfirmedRating   string
	LastConfirmedTest     string

	// Extra carries every key this bot does not own.
	Extra map[string]string
}

func (a *SessionAttributes) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for k, v := range raw {
		switch k {
		case attrCurrentFeedback:
			a.CurrentFeedback = v
		case attrCurrentRating:
			a.CurrentRating = v
		case attrCurrentTest:
			a.CurrentTest = v
		case attrLastConfirmedFeedback:
			a.LastConfirmedFeedback = v
		case attrLastConfirmedRating:
			a.LastConfirmedRating = v
		case attrLastConfirmedTest:
			a.LastConfirmedTest = v
		default:
			if a.Extra == nil {
				a.Extra = make(map[string]string)
			}
			a.Extra[k] = v
		}
	}
	return nil
}

func (a SessionAttributes) MarshalJSON() ([]byte, error) {
	out := make(map[string]string, len(a.Extra)+6)
	for k, v := range a.Extra {
		out[k] = v
	}
	set := func(k, v string) {
		if v != "" {
			out[k] = v
		}
	}
	set(attrCurrentFeedback, a.CurrentFeedback)
	set(attrCurrentRating, a.CurrentRating)
	set(attrCurrentTest, a.CurrentTest)
	set(attrLastConfirmedFeedback, a.LastConfirmedFeedback)
	set(attrLastConfirmedRating, a.LastConfirmedRating)
	set(attrLastConfirmedTest, a.LastConfirmedTest)
	return json.Marshal(out)
}
