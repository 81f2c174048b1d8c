package availabilityRepo

import (
	"context"

	"intothestar/models"
)

// MarkOutcome reports what the conditional slot update observed.
type MarkOutcome int

const (
	// MarkBooked: the slot was free and this call flipped it.
	MarkBooked MarkOutcome = iota
	// MarkAlreadyBooked: the flag was already true; HeldBy identifies the holder.
	MarkAlreadyBooked
	// MarkNotFound: date/zone/time does not resolve to an existing slot.
	MarkNotFound
)

// MarkResult is the outcome of MarkSlotBooked.
type MarkResult struct {
	Outcome MarkOutcome
	HeldBy  string
}

// AvailabilityRepository defines data access for the per-day slot calendar.
type AvailabilityRepository interface {
	// Day fetches a day record. A missing date yields (nil, nil).
	Day(ctx context.Context, date string) (*models.AvailabilityDay, error)
	// FreeSlots returns all unbooked slots for a date/zone in stored order.
	// A missing date yields an empty slice.
	FreeSlots(ctx context.Context, date, zone string) ([]models.Slot, error)
	// Upsert replaces or creates a day's full slot list for both zones.
	// Trusted admin operation only.
	Upsert(ctx context.Context, date string, slotsIST, slotsGST []models.Slot) error
	// MarkSlotBooked atomically sets is_booked=true for the slot matching
	// date+zone+time if it is currently free, recording the holding booking
	// id. This conditional update is the system's single serialization
	// point: under concurrent confirmations for one slot, exactly one call
	// observes MarkBooked.
	MarkSlotBooked(ctx context.Context, date, zone, timeStr, bookingID string) (MarkResult, error)
	// ListDays returns day records, optionally filtered to one date.
	ListDays(ctx context.Context, date string) ([]models.AvailabilityDay, error)
}
