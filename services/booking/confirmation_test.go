package booking

import (
	"context"
	"testing"

	"intothestar/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestVerifyInvalidID(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	_, err := svc.VerifyAndConfirm(context.Background(), "definitely-not-hex")
	if ErrorCode(err) != CodeInvalidID {
		t.Fatalf("expected invalidId, got %v", err)
	}
}

func TestVerifyBookingNotFound(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	_, err := svc.VerifyAndConfirm(context.Background(), primitive.NewObjectID().Hex())
	if ErrorCode(err) != CodeBookingNotFound {
		t.Fatalf("expected bookingNotFound, got %v", err)
	}
}

func TestVerifyConfirmsAndNotifies(t *testing.T) {
	svc, avail, books, _, dispatcher := newTestService()
	seedDay(avail)

	resp, err := svc.Initiate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := svc.VerifyAndConfirm(context.Background(), resp.BookingID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Outcome != OutcomeConfirmed {
		t.Fatalf("expected confirmed, got %s", result.Outcome)
	}

	b, _ := books.FindByID(context.Background(), resp.BookingID)
	if b.Status != models.BookingStatusConfirmed {
		t.Fatalf("expected confirmed status, got %s", b.Status)
	}

	day, _ := avail.Day(context.Background(), "2024-05-01")
	var slot *models.Slot
	for i := range day.SlotsIST {
		if day.SlotsIST[i].Time == "10:00" {
			slot = &day.SlotsIST[i]
		}
	}
	if slot == nil || !slot.IsBooked {
		t.Fatal("slot must be flagged booked after confirmation")
	}
	if slot.BookedBy != resp.BookingID {
		t.Fatalf("slot attributed to %q, want %q", slot.BookedBy, resp.BookingID)
	}

	if dispatcher.guestCount != 1 || dispatcher.adminCount != 1 {
		t.Fatalf("expected one guest and one admin notification, got %d/%d",
			dispatcher.guestCount, dispatcher.adminCount)
	}
	if dispatcher.lastGuest.Email != "asha@example.com" {
		t.Fatalf("unexpected guest payload: %+v", dispatcher.lastGuest)
	}
}

func TestVerifyIdempotent(t *testing.T) {
	svc, avail, _, _, dispatcher := newTestService()
	seedDay(avail)

	resp, err := svc.Initiate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.VerifyAndConfirm(context.Background(), resp.BookingID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A retried webhook is a safe no-op, twice.
	for i := 0; i < 2; i++ {
		result, err := svc.VerifyAndConfirm(context.Background(), resp.BookingID)
		if err != nil {
			t.Fatalf("retry %d errored: %v", i, err)
		}
		if result.Outcome != OutcomeAlreadyConfirmed {
			t.Fatalf("retry %d: expected already_verified, got %s", i, result.Outcome)
		}
	}

	if dispatcher.guestCount != 1 || dispatcher.adminCount != 1 {
		t.Fatalf("retries must not re-send notifications, got %d/%d",
			dispatcher.guestCount, dispatcher.adminCount)
	}
}

func TestVerifySlotConflict(t *testing.T) {
	svc, avail, books, _, dispatcher := newTestService()
	seedDay(avail)

	// Two pending bookings race for the 10:00 IST slot.
	first, err := svc.Initiate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Initiate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.VerifyAndConfirm(context.Background(), first.BookingID); err != nil {
		t.Fatalf("first confirmation failed: %v", err)
	}
	guestSends := dispatcher.guestCount

	_, err = svc.VerifyAndConfirm(context.Background(), second.BookingID)
	if ErrorCode(err) != CodeSlotConflict {
		t.Fatalf("expected slotConflict, got %v", err)
	}

	// The loser stays pending for manual reconciliation and only the
	// admin hears about it.
	b, _ := books.FindByID(context.Background(), second.BookingID)
	if b.Status != models.BookingStatusPending {
		t.Fatalf("conflicted booking must stay pending, got %s", b.Status)
	}
	if dispatcher.guestCount != guestSends {
		t.Fatal("conflicted booking must not trigger a guest confirmation")
	}
	if dispatcher.lastAlert.Reason == "" {
		t.Fatal("conflict alert must carry a reconciliation reason")
	}

	// The slot stays attributed to the winner.
	day, _ := avail.Day(context.Background(), "2024-05-01")
	for _, s := range day.SlotsIST {
		if s.Time == "10:00" && s.BookedBy != first.BookingID {
			t.Fatalf("slot attributed to %q, want %q", s.BookedBy, first.BookingID)
		}
	}
}

func TestVerifyRepairsCrashedConfirmation(t *testing.T) {
	svc, avail, books, _, _ := newTestService()
	seedDay(avail)

	resp, err := svc.Initiate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Simulate a crash between the slot write and the status write: the
	// slot is held by this booking but the record is still pending.
	if _, err := avail.MarkSlotBooked(context.Background(), "2024-05-01", models.ZoneIST, "10:00", resp.BookingID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := svc.VerifyAndConfirm(context.Background(), resp.BookingID)
	if err != nil {
		t.Fatalf("retry after crash must repair the booking: %v", err)
	}
	if result.Outcome != OutcomeConfirmed {
		t.Fatalf("expected confirmed, got %s", result.Outcome)
	}

	b, _ := books.FindByID(context.Background(), resp.BookingID)
	if b.Status != models.BookingStatusConfirmed {
		t.Fatalf("expected confirmed status, got %s", b.Status)
	}
}

func TestVerifyMissingSlotStillConfirms(t *testing.T) {
	svc, avail, books, _, dispatcher := newTestService()
	seedDay(avail)

	resp, err := svc.Initiate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The admin replaces the day and the target slot disappears.
	if err := avail.Upsert(context.Background(), "2024-05-01", []models.Slot{{Time: "14:00"}}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The guest already paid; the booking confirms regardless.
	result, err := svc.VerifyAndConfirm(context.Background(), resp.BookingID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Outcome != OutcomeConfirmed {
		t.Fatalf("expected confirmed, got %s", result.Outcome)
	}

	b, _ := books.FindByID(context.Background(), resp.BookingID)
	if b.Status != models.BookingStatusConfirmed {
		t.Fatalf("expected confirmed status, got %s", b.Status)
	}
	if dispatcher.guestCount != 1 {
		t.Fatal("guest confirmation must still be sent")
	}
}
