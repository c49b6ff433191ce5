package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	"tsblog-backend/internal/config"
	"tsblog-backend/internal/infrastructure/queue"
	"tsblog-backend/internal/infrastructure/storage"
	"tsblog-backend/pkg/logger"
)

// The worker consumes the media cleanup queue. It needs only the
// object storage client and Redis, not the full container.
func main() {
	dotenvErr := godotenv.Load()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	if dotenvErr != nil {
		logger.Info("no .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", err)
		os.Exit(1)
	}

	media, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		logger.Error("failed to connect object storage", err)
		os.Exit(1)
	}

	mux := asynq.NewServeMux()
	mux.Handle(queue.TypeMediaDelete, queue.NewMediaDeleteHandler(media))

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Host,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Queues: map[string]int{
				"default": 10,
				"low":     5,
			},
			Concurrency: 10,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error("task failed: "+task.Type(), err)
			}),
		},
	)

	go func() {
		logger.Info("worker starting")
		if err := srv.Run(mux); err != nil {
			logger.Error("worker failed", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	srv.Shutdown()
	logger.Info("worker stopped")
}
