package models

// Record type tags written to the stream.
const (
	RecordTypeRating   = "SessionRating"
	RecordTypeFeedback = "SessionFeedback"
)

// SentimentResult is the label the sentiment service assigned to a piece
// of text plus the service's confidence in that label.
type SentimentResult struct {
	Sentiment  string  `json:"Sentiment"`
	Confidence float64 `json:"Confidence"`
}

// RatingRecord is the finalized rating for one session. Created once at
// fulfillment and never mutated; ownership transfers to the stream on
// emission. Score is a pointer so a draft built mid-dialog serializes the
// slot as null rather than zero.
type RatingRecord struct {
	RecordType string `json:"RecordType"`
	UserID     string `json:"UserId"`
	Location   string `json:"Location"`
	Date       string `json:"Date"`
	Score      *int   `json:"Score"`
	ID         string `json:"ID"`
}

// FeedbackRecord is the finalized free-text feedback for one session,
// including the sentiment verdict attached at fulfillment.
type FeedbackRecord struct {
	RecordType      string           `json:"RecordType"`
	UserID          string           `json:"UserId"`
	Location        string           `json:"Location"`
	Date            string           `json:"Date"`
	SessionComments string           `json:"SessionComments"`
	Sentiment       *SentimentResult `json:"SentimentResult,omitempty"`
	ID              string           `json:"ID"`
}
