package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"tsblog-backend/internal/infrastructure/storage"
)

// MediaDeleteHandler processes queued media cleanup tasks in the
// worker process.
type MediaDeleteHandler struct {
	media storage.MediaStore
}

func NewMediaDeleteHandler(media storage.MediaStore) *MediaDeleteHandler {
	return &MediaDeleteHandler{media: media}
}

// ProcessTask removes the referenced object from storage.
func (h *MediaDeleteHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload MediaDeletePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal media delete payload")
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	log.Info().Str("media_id", payload.MediaID).Msg("Deleting media object")

	if err := h.media.Delete(ctx, payload.MediaID); err != nil {
		return fmt.Errorf("delete media: %w", err)
	}

	return nil
}
