package handlers

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sessionpulse/ratebot-go/models"
)

// partitionKey is the fixed partition key every record is written under.
const partitionKey = "partitionKey"

// SentimentAnalyzer scores a piece of free text.
type SentimentAnalyzer interface {
	DetectSentiment(ctx context.Context, text string) (*models.SentimentResult, error)
}

// RecordPublisher appends a finalized record to the downstream event
// stream and returns an opaque acknowledgment.
type RecordPublisher interface {
	PutRecord(ctx context.Context, partitionKey string, data []byte) (string, error)
}

// Bot bundles the collaborators every turn needs. It holds no per-session
// state: all cross-turn state travels in the event's session attributes,
// so one Bot serves concurrent turns for any number of sessions.
type Bot struct {
	Logger    *zap.Logger
	Sentiment SentimentAnalyzer
	Stream    RecordPublisher

	// Now supplies "today" for date validation, in the bot's operating
	// time zone.
	Now func() time.Time

	rand *lockedRand
}

func NewBot(logger *zap.Logger, sentiment SentimentAnalyzer, stream RecordPublisher, loc *time.Location, seed int64) *Bot {
	if loc == nil {
		loc = time.UTC
	}
	return &Bot{
		Logger:    logger,
		Sentiment: sentiment,
		Stream:    stream,
		Now:       func() time.Time { return time.Now().In(loc) },
		rand:      newLockedRand(seed),
	}
}

// pick returns a random element of pool.
func (b *Bot) pick(pool []string) string {
	return pool[b.rand.Intn(len(pool))]
}

// turnLogger tags the bot logger with a turn-scoped request ID plus the
// caller and intent for correlation.
func (b *Bot) turnLogger(event *models.TurnEvent) *zap.Logger {
	return b.Logger.With(
		zap.String("turn_id", uuid.New().String()),
		zap.String("user_id", event.UserID),
		zap.String("intent", event.CurrentIntent.Name),
	)
}

// title normalizes user-typed strings ("tel aviv", "abc") for records.
// A cases.Caser is not safe for concurrent use, so build one per call.
func title(s string) string {
	if s == "" {
		return ""
	}
	return cases.Title(language.English).String(s)
}

// lockedRand makes a seedable random source safe for concurrent turns.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func newLockedRand(seed int64) *lockedRand {
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}
