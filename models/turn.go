package models

// Invocation sources sent by the dialog platform. DialogCodeHook means the
// platform is still collecting slots; FulfillmentCodeHook means every slot
// is filled and the turn is terminal.
const (
	SourceDialogCodeHook      = "DialogCodeHook"
	SourceFulfillmentCodeHook = "FulfillmentCodeHook"
)

// Intent names the bot routes on.
const (
	IntentRateSession     = "RateSession"
	IntentProvideFeedback = "ProvideFeedback"
	IntentThanks          = "Thanks"
	IntentCancelRequest   = "CancelRequest"
	IntentTesting         = "Testing"
)

// Slot names recognized across intents.
const (
	SlotSessionID       = "SessionID"
	SlotSessionDate     = "SessionDate"
	SlotSessionLocation = "SessionLocation"
	SlotSessionScore    = "SessionScore"
	SlotSessionComments = "SessionComments"
	SlotTestTarget      = "TestTarget"
)

// TurnEvent is one inbound request from the dialog platform: a single turn
// of a multi-turn conversation. The platform owns the event; the bot reads
// it, answers, and keeps nothing.
type TurnEvent struct {
	Bot               BotInfo            `json:"bot"`
	UserID            string             `json:"userId"`
	InvocationSource  string             `json:"invocationSource"`
	SessionAttributes *SessionAttributes `json:"sessionAttributes"`
	CurrentIntent     CurrentIntent      `json:"currentIntent"`
}

type BotInfo struct {
	Name string `json:"name"`
}

type CurrentIntent struct {
	Name               string `json:"name"`
	ConfirmationStatus string `json:"confirmationStatus"`
	Slots              Slots  `json:"slots"`
}

// Attributes returns the event's session attributes, treating a null map
// from the platform as empty.
func (e *TurnEvent) Attributes() *SessionAttributes {
	if e.SessionAttributes == nil {
		e.SessionAttributes = &SessionAttributes{}
	}
	return e.SessionAttributes
}

// Slots is the slot mapping for the current intent. Values may be null
// while the platform is still collecting them.
type Slots map[string]*string

// Get looks up a slot defensively: a missing key, a null value and an
// empty string all read as absent.
func (s Slots) Get(name string) (string, bool) {
	v, ok := s[name]
	if !ok || v == nil || *v == "" {
		return "", false
	}
	return *v, true
}

// Clear nulls out a slot so the platform re-collects it.
func (s Slots) Clear(name string) {
	if s != nil {
		s[name] = nil
	}
}
