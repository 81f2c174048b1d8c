package cron

import (
	"context"
	"encoding/json"
	"fmt"

	"intothestar/config"
	"intothestar/models"
	"intothestar/services/notification"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// NewQueueClient returns an asynq client for enqueueing notification tasks,
// or nil when the queue should be skipped (dispatcher then sends directly).
func NewQueueClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
}

// StartNotificationWorker runs the async notification worker in background.
// Failed sends are retried by asynq with its default backoff.
func StartNotificationWorker(mailer notification.Mailer, logger *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		},
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TypeGuestConfirmation, handleGuestConfirmation(mailer, logger))
	mux.HandleFunc(notification.TypeAdminAlert, handleAdminAlert(mailer, logger))

	go func() {
		logger.Info("Starting notification worker")
		if err := srv.Run(mux); err != nil {
			logger.Error("Notification worker stopped", zap.Error(err))
		}
	}()

	return srv
}

func handleGuestConfirmation(mailer notification.Mailer, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.GuestConfirmationPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid guest confirmation payload", zap.Error(err))
			return fmt.Errorf("invalid payload: %w", asynq.SkipRetry)
		}
		return mailer.SendGuestConfirmation(ctx, p)
	}
}

func handleAdminAlert(mailer notification.Mailer, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.AdminAlertPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid admin alert payload", zap.Error(err))
			return fmt.Errorf("invalid payload: %w", asynq.SkipRetry)
		}
		return mailer.SendAdminAlert(ctx, p)
	}
}
