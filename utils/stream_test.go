package utils_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sessionpulse/ratebot-go/utils"
)

func TestStreamPublisherPutRecord(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	publisher := utils.NewStreamPublisher(client, "session-records")

	ctx := context.Background()
	id, err := publisher.PutRecord(ctx, "partitionKey", []byte(`{"RecordType":"SessionRating"}`))
	require.NoError(t, err)
	assert.NotEmpty(t, id, "entry ID is the opaque ack")

	entries, err := client.XRange(ctx, "session-records", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 1, "exactly one entry per record")
	assert.Equal(t, "partitionKey", entries[0].Values["partitionKey"])
	assert.Equal(t, `{"RecordType":"SessionRating"}`, entries[0].Values["data"])
}

func TestStreamPublisherErrorPropagates(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	publisher := utils.NewStreamPublisher(client, "session-records")

	mr.Close()

	_, err = publisher.PutRecord(context.Background(), "partitionKey", []byte("{}"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session-records")
}
