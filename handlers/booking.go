package handlers

import (
	"net/http"

	"intothestar/models"
	"intothestar/services/booking"
	"intothestar/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the public booking endpoints.
type BookingHandler struct {
	svc    booking.BookingService
	logger *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{svc: svc, logger: logger}
}

// GetAvailability returns the free slots for a date, both zone buckets.
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	date := c.Param("date")
	if !utils.ValidSessionDate(date) {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", "expected YYYY-MM-DD")
		return
	}

	resp, err := h.svc.FreeSlotsForDate(c.Request.Context(), date)
	if err != nil {
		h.logger.Error("Failed to load availability", zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load availability", "")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// InitiateBooking validates the submission and starts the reservation.
func (h *BookingHandler) InitiateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.svc.Initiate(c.Request.Context(), req)
	if err != nil {
		switch booking.ErrorCode(err) {
		case booking.CodeDateNotAvailable:
			utils.JSONError(c, http.StatusBadRequest, "Date not available", "")
		case booking.CodeSlotUnavailable:
			utils.JSONError(c, http.StatusBadRequest, "Slot is no longer available", "")
		default:
			h.logger.Error("Booking initiation failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to initiate booking", "")
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VerifyBooking confirms a booking after payment. Safe to retry.
func (h *BookingHandler) VerifyBooking(c *gin.Context) {
	bookingID := c.Param("bookingID")

	result, err := h.svc.VerifyAndConfirm(c.Request.Context(), bookingID)
	if err != nil {
		switch booking.ErrorCode(err) {
		case booking.CodeInvalidID:
			utils.JSONError(c, http.StatusBadRequest, "Invalid booking ID format", "")
		case booking.CodeBookingNotFound:
			utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
		case booking.CodeSlotConflict:
			utils.JSONError(c, http.StatusConflict, "Slot already held by another booking", "flagged for manual reconciliation")
		default:
			h.logger.Error("Booking verification failed",
				zap.String("booking", bookingID), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to verify booking", "")
		}
		return
	}
	c.JSON(http.StatusOK, result)
}
