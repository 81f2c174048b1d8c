package admin

import (
	"context"
	"errors"

	"intothestar/models"
)

// ErrInvalidCredentials is returned on a failed admin login.
var ErrInvalidCredentials = errors.New("incorrect username or password")

// AdminService gates the trusted administrative operations: bookings
// overview, availability management and settings. Callers of everything
// except Authenticate must already hold a valid admin token.
type AdminService interface {
	// Authenticate checks the admin credentials and issues a JWT.
	Authenticate(username, password string) (string, error)
	// ListBookings returns all bookings, newest first.
	ListBookings(ctx context.Context) ([]models.Booking, error)
	// Availability lists day records, optionally filtered to one date.
	Availability(ctx context.Context, date string) ([]models.AvailabilityDay, error)
	// UpdateAvailability replaces a day's slot lists for both zones.
	UpdateAvailability(ctx context.Context, req models.UpdateAvailabilityRequest) error
	// Settings returns the singleton settings document.
	Settings(ctx context.Context) (*models.GlobalSettings, error)
	// UpdateSettings writes the singleton settings document.
	UpdateSettings(ctx context.Context, req models.SettingsRequest) (*models.GlobalSettings, error)
}
