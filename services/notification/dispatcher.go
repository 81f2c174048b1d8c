package notification

import (
	"context"
	"encoding/json"

	"intothestar/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// QueueDispatcher enqueues notification tasks for the background worker.
// When the queue is unreachable it falls back to sending directly in a
// goroutine, so a Redis outage never costs a notification attempt and
// never blocks the booking flow.
type QueueDispatcher struct {
	client *asynq.Client // nil when the queue is not configured
	mailer Mailer
	logger *zap.Logger
}

func NewQueueDispatcher(client *asynq.Client, mailer Mailer, logger *zap.Logger) *QueueDispatcher {
	return &QueueDispatcher{client: client, mailer: mailer, logger: logger}
}

func (d *QueueDispatcher) enqueue(taskType string, payload any, direct func()) {
	data, err := json.Marshal(payload)
	if err != nil {
		d.logger.Error("Failed to marshal notification payload",
			zap.String("type", taskType), zap.Error(err))
		return
	}

	if d.client != nil {
		_, err := d.client.Enqueue(asynq.NewTask(taskType, data))
		if err == nil {
			return
		}
		d.logger.Warn("Failed to enqueue notification, sending directly",
			zap.String("type", taskType), zap.Error(err))
	}

	go direct()
}

func (d *QueueDispatcher) DispatchGuestConfirmation(ctx context.Context, p models.GuestConfirmationPayload) {
	d.enqueue(TypeGuestConfirmation, p, func() {
		if err := d.mailer.SendGuestConfirmation(context.Background(), p); err != nil {
			d.logger.Error("Guest confirmation email failed", zap.Error(err))
		}
	})
}

func (d *QueueDispatcher) DispatchAdminAlert(ctx context.Context, p models.AdminAlertPayload) {
	d.enqueue(TypeAdminAlert, p, func() {
		if err := d.mailer.SendAdminAlert(context.Background(), p); err != nil {
			d.logger.Error("Admin alert email failed", zap.Error(err))
		}
	})
}
