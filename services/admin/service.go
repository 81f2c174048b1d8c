package admin

import (
	"context"
	"fmt"
	"strings"
	"time"

	"intothestar/config"
	availabilityRepo "intothestar/database/repository/availability"
	bookingRepo "intothestar/database/repository/booking"
	settingsRepo "intothestar/database/repository/settings"
	"intothestar/models"
	"intothestar/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const adminTokenTTL = 2 * time.Hour

// DefaultAdminService implements AdminService.
type DefaultAdminService struct {
	AvailabilityRepo availabilityRepo.AvailabilityRepository
	BookingRepo      bookingRepo.BookingRepository
	SettingsRepo     settingsRepo.SettingsRepository
	Logger           *zap.Logger
}

// Authenticate compares against the configured bcrypt hash. A configured
// value that is not a bcrypt hash is compared as plaintext so development
// setups work without pre-hashing.
func (s *DefaultAdminService) Authenticate(username, password string) (string, error) {
	cfg := config.AppConfig
	if username != cfg.AdminUsername {
		return "", ErrInvalidCredentials
	}

	stored := cfg.AdminPasswordHash
	if stored == "" {
		return "", ErrInvalidCredentials
	}

	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") {
		if bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) != nil {
			return "", ErrInvalidCredentials
		}
	} else if stored != password {
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateAdminToken(username, adminTokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to issue admin token: %w", err)
	}
	s.Logger.Info("Admin authenticated", zap.String("username", username))
	return token, nil
}

func (s *DefaultAdminService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.BookingRepo.ListAll(ctx)
}

func (s *DefaultAdminService) Availability(ctx context.Context, date string) ([]models.AvailabilityDay, error) {
	return s.AvailabilityRepo.ListDays(ctx, date)
}

// UpdateAvailability validates and writes a day's full slot lists. Slot
// times are normalized to HH:MM and must be unique within a zone bucket.
func (s *DefaultAdminService) UpdateAvailability(ctx context.Context, req models.UpdateAvailabilityRequest) error {
	if !utils.ValidSessionDate(req.Date) {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", req.Date)
	}

	slotsIST, err := normalizeSlots(req.SlotsIST, models.ZoneIST)
	if err != nil {
		return err
	}
	slotsGST, err := normalizeSlots(req.SlotsGST, models.ZoneGST)
	if err != nil {
		return err
	}

	if err := s.AvailabilityRepo.Upsert(ctx, req.Date, slotsIST, slotsGST); err != nil {
		return err
	}
	s.Logger.Info("Availability updated",
		zap.String("date", req.Date),
		zap.Int("istSlots", len(slotsIST)),
		zap.Int("gstSlots", len(slotsGST)),
	)
	return nil
}

func normalizeSlots(slots []models.Slot, zone string) ([]models.Slot, error) {
	seen := make(map[string]bool, len(slots))
	out := make([]models.Slot, 0, len(slots))
	for _, slot := range slots {
		t, err := utils.NormalizeSessionTime(slot.Time)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", zone, err)
		}
		if seen[t] {
			return nil, fmt.Errorf("%s: duplicate slot time %s", zone, t)
		}
		seen[t] = true
		slot.Time = t
		out = append(out, slot)
	}
	return out, nil
}

func (s *DefaultAdminService) Settings(ctx context.Context) (*models.GlobalSettings, error) {
	return s.SettingsRepo.Get(ctx)
}

func (s *DefaultAdminService) UpdateSettings(ctx context.Context, req models.SettingsRequest) (*models.GlobalSettings, error) {
	settings := &models.GlobalSettings{BasePriceAED: req.BasePriceAED}
	if err := s.SettingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	s.Logger.Info("Settings updated", zap.Float64("basePriceAED", req.BasePriceAED))
	return settings, nil
}
