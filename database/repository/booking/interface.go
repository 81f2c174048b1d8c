package bookingRepo

import (
	"context"
	"errors"
	"time"

	"intothestar/models"
)

// Sentinel errors callers can branch on.
var (
	// ErrInvalidID: the supplied id is not a well-formed booking id.
	ErrInvalidID = errors.New("invalid booking id")
	// ErrNotFound: no booking exists with the supplied id.
	ErrNotFound = errors.New("booking not found")
)

// BookingRepository defines persistence for booking records. Booking writes
// need no cross-booking locking; each id is independent.
type BookingRepository interface {
	// Insert persists a new booking and returns its assigned id.
	Insert(ctx context.Context, booking *models.Booking) (string, error)
	// FindByID loads a booking. Returns ErrInvalidID for malformed ids and
	// ErrNotFound when no record exists.
	FindByID(ctx context.Context, id string) (*models.Booking, error)
	// ConfirmIfPending transitions status pending_payment -> confirmed and
	// reports whether this call performed the transition. A false result
	// with nil error means the booking was not pending (e.g. already
	// confirmed by a racing caller).
	ConfirmIfPending(ctx context.Context, id string) (bool, error)
	// SetOrderID records the payment order handle on the booking.
	SetOrderID(ctx context.Context, id, orderID string) error
	// ListAll returns every booking, newest first. Admin view.
	ListAll(ctx context.Context) ([]models.Booking, error)
	// MarkAbandonedBefore parks pending bookings created before the cutoff
	// as abandoned, returning how many were updated. Used by the sweeper.
	MarkAbandonedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
