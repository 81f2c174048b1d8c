package models

// GuestConfirmationPayload is the queued payload for a guest confirmation email.
type GuestConfirmationPayload struct {
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	SessionDate string `json:"sessionDate"`
	SessionTime string `json:"sessionTime"`
	TimeZone    string `json:"timeZone"`
}

// AdminAlertPayload is the queued payload for an admin alert email. It
// carries a snapshot of the booking at confirmation time.
type AdminAlertPayload struct {
	BookingID    string  `json:"bookingId"`
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	Email        string  `json:"email"`
	SessionDate  string  `json:"sessionDate"`
	SessionTime  string  `json:"sessionTime"`
	TimeZone     string  `json:"timeZone"`
	AmountPaid   float64 `json:"amountPaid"`
	CurrencyPaid string  `json:"currencyPaid"`
	Reason       string  `json:"reason,omitempty"` // set for reconciliation alerts
}
