package booking

import (
	"context"

	"intothestar/models"
)

// Confirmation outcomes.
const (
	OutcomeConfirmed        = "success"
	OutcomeAlreadyConfirmed = "already_verified"
)

// ConfirmResult reports what a verification call achieved.
type ConfirmResult struct {
	Outcome   string `json:"status"`
	BookingID string `json:"booking_id"`
}

// BookingService is the slot-reservation and confirmation engine. It runs
// a two-phase optimistic protocol: initiation only verifies slot freedom
// and creates a pending booking, while the exclusive flag flip happens at
// confirmation, where contention is rare.
type BookingService interface {
	// FreeSlotsForDate returns the unbooked slots for both zone buckets.
	FreeSlotsForDate(ctx context.Context, date string) (*models.DayAvailabilityResponse, error)
	// Initiate validates slot freedom, persists a pending booking and
	// requests a payment order. The booking write happens before the order
	// request, so an order handle always maps to a durable booking record.
	Initiate(ctx context.Context, req models.BookingRequest) (*models.InitiateBookingResponse, error)
	// VerifyAndConfirm transitions the booking to confirmed and commits
	// the slot. Idempotent: repeated calls on a confirmed booking report
	// OutcomeAlreadyConfirmed without re-sending notifications.
	VerifyAndConfirm(ctx context.Context, bookingID string) (*ConfirmResult, error)
}
