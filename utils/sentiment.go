package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/sessionpulse/ratebot-go/models"
	"go.uber.org/zap"
)

// SentimentClient calls the external sentiment-analysis service once a
// piece of feedback is finalized.
type SentimentClient struct {
	Endpoint string
	APIKey   string
	Client   *http.Client
}

type sentimentRequest struct {
	Text         string `json:"text"`
	LanguageCode string `json:"languageCode"`
}

type sentimentResponse struct {
	Sentiment      string             `json:"sentiment"`
	SentimentScore map[string]float64 `json:"sentimentScore"`
}

func NewSentimentClient() *SentimentClient {
	endpoint := os.Getenv("SENTIMENT_ENDPOINT")
	if endpoint == "" {
		zap.L().Fatal("SENTIMENT_ENDPOINT environment variable not set")
	}

	return &SentimentClient{
		Endpoint: endpoint,
		APIKey:   os.Getenv("SENTIMENT_API_KEY"),
		Client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// DetectSentiment sends text for analysis and keeps only the score for
// the label the service picked; the other per-label scores are discarded.
// Failures propagate to the caller; there is no retry.
func (c *SentimentClient) DetectSentiment(ctx context.Context, text string) (*models.SentimentResult, error) {
	body, err := json.Marshal(sentimentRequest{Text: text, LanguageCode: "en"})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sentiment request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.Endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send HTTP request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sentiment service returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var parsed sentimentResponse
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response JSON: %w", err)
	}
	if parsed.Sentiment == "" {
		return nil, fmt.Errorf("sentiment service returned no label")
	}

	var confidence float64
	for label, score := range parsed.SentimentScore {
		if strings.EqualFold(label, parsed.Sentiment) {
			confidence = score
			break
		}
	}

	zap.L().Debug("Sentiment detected",
		zap.String("sentiment", parsed.Sentiment),
		zap.Float64("confidence", confidence))

	return &models.SentimentResult{Sentiment: parsed.Sentiment, Confidence: confidence}, nil
}
