package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"tsblog-backend/pkg/logger"
)

// TypeMediaDelete is the task type for queued media cleanup. Entity
// deletion and media replacement enqueue one of these instead of
// blocking the request on object storage.
const TypeMediaDelete = "media:delete"

// MediaDeletePayload carries the media reference to remove.
type MediaDeletePayload struct {
	MediaID string `json:"media_id"`
}

// Enqueuer publishes background tasks. The zero-dependency interface
// keeps services testable without a running Redis.
type Enqueuer interface {
	// EnqueueMediaDelete schedules a best-effort delete of the media
	// object. Enqueue failures are logged, not surfaced: cleanup must
	// never fail the owning operation.
	EnqueueMediaDelete(ctx context.Context, mediaID string)
}

// Client implements Enqueuer on asynq.
type Client struct {
	client *asynq.Client
}

func NewClient(redisAddr, redisPassword string, redisDB int) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		}),
	}
}

func (c *Client) EnqueueMediaDelete(ctx context.Context, mediaID string) {
	if mediaID == "" {
		return
	}

	payload, err := json.Marshal(MediaDeletePayload{MediaID: mediaID})
	if err != nil {
		logger.Error("failed to marshal media delete payload", err)
		return
	}

	task := asynq.NewTask(TypeMediaDelete, payload, asynq.MaxRetry(5), asynq.Queue("low"))
	if _, err := c.client.EnqueueContext(ctx, task); err != nil {
		logger.Error(fmt.Sprintf("failed to enqueue media delete for %s", mediaID), err)
	}
}

func (c *Client) Close() error {
	return c.client.Close()
}
