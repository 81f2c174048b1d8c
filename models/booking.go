package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking status lifecycle. A booking is created as pending_payment and
// moves to confirmed on verified payment. There is no transition out of
// confirmed. The sweeper may park stale pending bookings as abandoned.
const (
	BookingStatusPending   = "pending_payment"
	BookingStatusConfirmed = "confirmed"
	BookingStatusAbandoned = "abandoned"
)

// Booking is a guest's session reservation. Guest identity and session
// target fields are immutable after creation; only Status and OrderID
// change afterwards.
type Booking struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName    string             `bson:"first_name" json:"first_name"`
	LastName     string             `bson:"last_name" json:"last_name"`
	Email        string             `bson:"email" json:"email"`
	DOB          string             `bson:"dob" json:"dob"` // "YYYY-MM-DD"
	TOBHour      int                `bson:"tob_hour" json:"tob_hour"`
	TOBMinute    int                `bson:"tob_minute" json:"tob_minute"`
	CountryCode  string             `bson:"country_code" json:"country_code"`
	MobileNumber string             `bson:"mobile_number" json:"mobile_number"`
	SessionDate  string             `bson:"session_date" json:"session_date"` // "YYYY-MM-DD"
	SessionTime  string             `bson:"session_time" json:"session_time"` // "HH:MM"
	TimeZone     string             `bson:"time_zone" json:"time_zone"`       // "IST" or "GST"
	AmountPaid   float64            `bson:"amount_paid" json:"amount_paid"`
	CurrencyPaid string             `bson:"currency_paid" json:"currency_paid"`
	Status       string             `bson:"status" json:"status"`
	OrderID      string             `bson:"order_id,omitempty" json:"order_id,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

// BookingRequest is the guest-facing submission payload, validated at the
// boundary before reaching the engine.
type BookingRequest struct {
	FirstName    string  `json:"first_name" binding:"required"`
	LastName     string  `json:"last_name" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	DOB          string  `json:"dob" binding:"required"`
	TOBHour      int     `json:"tob_hour" binding:"min=0,max=23"`
	TOBMinute    int     `json:"tob_minute" binding:"min=0,max=59"`
	CountryCode  string  `json:"country_code" binding:"required"`
	MobileNumber string  `json:"mobile_number" binding:"required"`
	SessionDate  string  `json:"session_date" binding:"required"`
	SessionTime  string  `json:"session_time" binding:"required"`
	TimeZone     string  `json:"time_zone" binding:"required,oneof=IST GST"`
	AmountPaid   float64 `json:"amount_paid" binding:"required,gt=0"`
	CurrencyPaid string  `json:"currency_paid" binding:"required"`
}

// InitiateBookingResponse is returned once a pending booking and its
// payment order exist.
type InitiateBookingResponse struct {
	Status    string `json:"status"`
	BookingID string `json:"booking_id"`
	OrderID   string `json:"order_id"`
	Amount    int64  `json:"amount"` // smallest currency unit
	Currency  string `json:"currency"`
}
