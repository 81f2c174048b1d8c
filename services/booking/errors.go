package booking

import (
	"errors"
	"fmt"
)

// BookingError is a typed domain error with a stable code the transport
// layer maps onto HTTP statuses.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Error codes.
const (
	CodeDateNotAvailable = "dateNotAvailable"
	CodeSlotUnavailable  = "slotUnavailable"
	CodeBookingNotFound  = "bookingNotFound"
	CodeInvalidID        = "invalidId"
	CodeSlotConflict     = "slotConflict"
)

var (
	ErrDateNotAvailable = &BookingError{Code: CodeDateNotAvailable, Message: "date not available"}
	ErrSlotUnavailable  = &BookingError{Code: CodeSlotUnavailable, Message: "slot is no longer available"}
	ErrBookingNotFound  = &BookingError{Code: CodeBookingNotFound, Message: "booking not found"}
	ErrInvalidID        = &BookingError{Code: CodeInvalidID, Message: "invalid booking id format"}
	ErrSlotConflict     = &BookingError{Code: CodeSlotConflict, Message: "slot already held by another booking"}
)

// ErrorCode extracts the domain error code, or "" for non-domain errors.
func ErrorCode(err error) string {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
