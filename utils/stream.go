package utils

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// StreamPublisher writes finalized records to the downstream event
// stream, implemented as a Redis Stream.
type StreamPublisher struct {
	client *redis.Client
	stream string
}

func NewStreamPublisher(client *redis.Client, stream string) *StreamPublisher {
	return &StreamPublisher{client: client, stream: stream}
}

// PutRecord appends one serialized record to the stream and returns the
// entry ID as an opaque acknowledgment. Failures propagate; there is no
// retry.
func (p *StreamPublisher) PutRecord(ctx context.Context, partitionKey string, data []byte) (string, error) {
	id, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]interface{}{
			"partitionKey": partitionKey,
			"data":         string(data),
		},
	}).Result()
	if err != nil {
		return "", fmt.Errorf("failed to put record on stream %s: %w", p.stream, err)
	}

	zap.L().Debug("Record posted to stream",
		zap.String("stream", p.stream),
		zap.String("id", id))

	return id, nil
}
