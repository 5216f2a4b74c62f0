package models

// Dialog action types understood by the platform.
const (
	ActionElicitSlot    = "ElicitSlot"
	ActionDelegate      = "Delegate"
	ActionClose         = "Close"
	ActionConfirmIntent = "ConfirmIntent"
)

// FulfillmentStateFulfilled closes a conversation successfully.
const FulfillmentStateFulfilled = "Fulfilled"

const cardContentType = "application/vnd.amazonaws.card.generic"

// Message is user-facing copy attached to a dialog action.
type Message struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

// PlainText wraps content in the only message content type this bot emits.
func PlainText(content string) *Message {
	return &Message{ContentType: "PlainText", Content: content}
}

// TurnResponse is the bot's answer for one turn: exactly one dialog action
// plus the (possibly mutated) session attributes to carry forward.
type TurnResponse struct {
	SessionAttributes *SessionAttributes `json:"sessionAttributes"`
	DialogAction      DialogAction       `json:"dialogAction"`
}

type DialogAction struct {
	Type             string        `json:"type"`
	IntentName       string        `json:"intentName,omitempty"`
	Slots            Slots         `json:"slots,omitempty"`
	SlotToElicit     string        `json:"slotToElicit,omitempty"`
	FulfillmentState string        `json:"fulfillmentState,omitempty"`
	Message          *Message      `json:"message,omitempty"`
	ResponseCard     *ResponseCard `json:"responseCard,omitempty"`
}

// ResponseCard is a generic multiple-choice attachment for guided
// re-prompting.
type ResponseCard struct {
	ContentType        string              `json:"contentType"`
	Version            int                 `json:"version"`
	GenericAttachments []GenericAttachment `json:"genericAttachments"`
}

type GenericAttachment struct {
	Title    string       `json:"title"`
	SubTitle string       `json:"subTitle"`
	Buttons  []CardButton `json:"buttons"`
}

type CardButton struct {
	Text  string `json:"text"`
	Value string `json:"value"`
}

// ElicitSlot asks the platform to re-collect one slot, carrying the
// violation message for the user.
func ElicitSlot(attrs *SessionAttributes, intentName string, slots Slots, slotToElicit string, message *Message) *TurnResponse {
	return &TurnResponse{
		SessionAttributes: attrs,
		DialogAction: DialogAction{
			Type:         ActionElicitSlot,
			IntentName:   intentName,
			Slots:        slots,
			SlotToElicit: slotToElicit,
			Message:      message,
		},
	}
}

// ElicitSlotWithCard is ElicitSlot plus a multiple-choice card.
func ElicitSlotWithCard(attrs *SessionAttributes, intentName string, slots Slots, slotToElicit string, message *Message, card *ResponseCard) *TurnResponse {
	resp := ElicitSlot(attrs, intentName, slots, slotToElicit, message)
	resp.DialogAction.ResponseCard = card
	return resp
}

// Delegate hands control back to the platform to keep collecting slots or
// move on to fulfillment.
func Delegate(attrs *SessionAttributes, slots Slots) *TurnResponse {
	return &TurnResponse{
		SessionAttributes: attrs,
		DialogAction: DialogAction{
			Type:  ActionDelegate,
			Slots: slots,
		},
	}
}

// Close ends the conversation with a final message.
func Close(attrs *SessionAttributes, fulfillmentState string, message *Message) *TurnResponse {
	return &TurnResponse{
		SessionAttributes: attrs,
		DialogAction: DialogAction{
			Type:             ActionClose,
			FulfillmentState: fulfillmentState,
			Message:          message,
		},
	}
}

// ConfirmIntent asks the user to confirm before fulfillment. No current
// handler emits it; it is kept so cross-intent confirmation flows can be
// added without touching the wire layer.
func ConfirmIntent(attrs *SessionAttributes, intentName string, slots Slots, message *Message) *TurnResponse {
	return &TurnResponse{
		SessionAttributes: attrs,
		DialogAction: DialogAction{
			Type:       ActionConfirmIntent,
			IntentName: intentName,
			Slots:      slots,
			Message:    message,
		},
	}
}

// NewResponseCard builds a single-attachment card with one button per
// option, the button value being the option itself.
func NewResponseCard(title, subTitle string, options []string) *ResponseCard {
	buttons := make([]CardButton, 0, len(options))
	for _, opt := range options {
		buttons = append(buttons, CardButton{Text: opt, Value: opt})
	}
	return &ResponseCard{
		ContentType: cardContentType,
		Version:     1,
		GenericAttachments: []GenericAttachment{
			{Title: title, SubTitle: subTitle, Buttons: buttons},
		},
	}
}
