package notification

import (
	"context"

	"intothestar/models"
)

// Dispatcher hands off guest/admin notifications for delivery. Both calls
// are fire-and-forget: delivery failures are logged, never surfaced, and
// guest-visible success does not depend on them.
type Dispatcher interface {
	DispatchGuestConfirmation(ctx context.Context, p models.GuestConfirmationPayload)
	DispatchAdminAlert(ctx context.Context, p models.AdminAlertPayload)
}

// Mailer performs the actual outbound sends. The asynq worker drives it;
// errors propagate there so failed tasks can be retried.
type Mailer interface {
	SendGuestConfirmation(ctx context.Context, p models.GuestConfirmationPayload) error
	SendAdminAlert(ctx context.Context, p models.AdminAlertPayload) error
}

// Task type names for the notification queue.
const (
	TypeGuestConfirmation = "notify:guest_confirmation"
	TypeAdminAlert        = "notify:admin_alert"
)
