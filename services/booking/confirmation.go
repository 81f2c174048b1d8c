package booking

import (
	"context"
	"errors"
	"fmt"

	availabilityRepo "intothestar/database/repository/availability"
	bookingRepo "intothestar/database/repository/booking"
	"intothestar/models"

	"go.uber.org/zap"
)

// VerifyAndConfirm finalizes a paid booking. The slot flag flip runs first:
// it is the single serialization point, so whichever confirmer flips it
// owns the slot, and a later confirmer for a different booking is rejected
// with a conflict instead of silently double-booking.
func (s *DefaultBookingService) VerifyAndConfirm(ctx context.Context, bookingID string) (*ConfirmResult, error) {
	b, err := s.Bookings.FindByID(ctx, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrInvalidID):
			return nil, ErrInvalidID
		case errors.Is(err, bookingRepo.ErrNotFound):
			return nil, ErrBookingNotFound
		default:
			return nil, fmt.Errorf("failed to load booking: %w", err)
		}
	}

	if b.Status == models.BookingStatusConfirmed {
		return &ConfirmResult{Outcome: OutcomeAlreadyConfirmed, BookingID: bookingID}, nil
	}

	mark, err := s.Availability.MarkSlotBooked(ctx, b.SessionDate, b.TimeZone, b.SessionTime, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to commit slot: %w", err)
	}

	switch mark.Outcome {
	case availabilityRepo.MarkBooked:
		// This call won the slot.
	case availabilityRepo.MarkAlreadyBooked:
		if mark.HeldBy != bookingID {
			// Another booking already holds the slot. Leave this one
			// pending for manual reconciliation and alert the admin.
			s.Logger.Warn("Slot conflict on confirmation",
				zap.String("booking", bookingID),
				zap.String("heldBy", mark.HeldBy),
				zap.String("date", b.SessionDate),
				zap.String("time", b.SessionTime),
				zap.String("zone", b.TimeZone),
			)
			s.Notifier.DispatchAdminAlert(ctx, adminAlertFor(b, bookingID,
				fmt.Sprintf("slot already held by booking %s; payment needs manual reconciliation", mark.HeldBy)))
			return nil, ErrSlotConflict
		}
		// Same holder: a retry after a crash between the slot write and
		// the status write. Fall through and repair the status.
	case availabilityRepo.MarkNotFound:
		// The slot was removed or never existed. The guest already paid,
		// so confirm anyway and leave the calendar inconsistency to the
		// admin alert trail.
		s.Logger.Warn("Confirmed booking targets a missing slot",
			zap.String("booking", bookingID),
			zap.String("date", b.SessionDate),
			zap.String("time", b.SessionTime),
			zap.String("zone", b.TimeZone),
		)
	}

	transitioned, err := s.Bookings.ConfirmIfPending(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to confirm booking: %w", err)
	}
	if !transitioned {
		// A concurrent verification beat us to the status write; it also
		// owns the notifications.
		return &ConfirmResult{Outcome: OutcomeAlreadyConfirmed, BookingID: bookingID}, nil
	}

	s.Notifier.DispatchGuestConfirmation(ctx, models.GuestConfirmationPayload{
		Email:       b.Email,
		FirstName:   b.FirstName,
		SessionDate: b.SessionDate,
		SessionTime: b.SessionTime,
		TimeZone:    b.TimeZone,
	})
	s.Notifier.DispatchAdminAlert(ctx, adminAlertFor(b, bookingID, ""))

	return &ConfirmResult{Outcome: OutcomeConfirmed, BookingID: bookingID}, nil
}

func adminAlertFor(b *models.Booking, bookingID, reason string) models.AdminAlertPayload {
	return models.AdminAlertPayload{
		BookingID:    bookingID,
		FirstName:    b.FirstName,
		LastName:     b.LastName,
		Email:        b.Email,
		SessionDate:  b.SessionDate,
		SessionTime:  b.SessionTime,
		TimeZone:     b.TimeZone,
		AmountPaid:   b.AmountPaid,
		CurrencyPaid: b.CurrencyPaid,
		Reason:       reason,
	}
}
