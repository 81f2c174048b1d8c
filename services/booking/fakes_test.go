package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	availabilityRepo "intothestar/database/repository/availability"
	bookingRepo "intothestar/database/repository/booking"
	"intothestar/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeAvailability implements the availability repository over an in-memory
// day map, including the conditional-update semantics of MarkSlotBooked.
type fakeAvailability struct {
	mu   sync.Mutex
	days map[string]*models.AvailabilityDay
}

func newFakeAvailability() *fakeAvailability {
	return &fakeAvailability{days: make(map[string]*models.AvailabilityDay)}
}

func (f *fakeAvailability) addDay(date string, ist, gst []models.Slot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.days[date] = &models.AvailabilityDay{Date: date, SlotsIST: ist, SlotsGST: gst}
}

func (f *fakeAvailability) Day(ctx context.Context, date string) (*models.AvailabilityDay, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	day, ok := f.days[date]
	if !ok {
		return nil, nil
	}
	copied := *day
	return &copied, nil
}

func (f *fakeAvailability) FreeSlots(ctx context.Context, date, zone string) ([]models.Slot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	day, ok := f.days[date]
	if !ok {
		return []models.Slot{}, nil
	}
	free := []models.Slot{}
	for _, s := range day.SlotsForZone(zone) {
		if !s.IsBooked {
			free = append(free, s)
		}
	}
	return free, nil
}

func (f *fakeAvailability) Upsert(ctx context.Context, date string, ist, gst []models.Slot) error {
	f.addDay(date, ist, gst)
	return nil
}

func (f *fakeAvailability) MarkSlotBooked(ctx context.Context, date, zone, timeStr, bookingID string) (availabilityRepo.MarkResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	day, ok := f.days[date]
	if !ok {
		return availabilityRepo.MarkResult{Outcome: availabilityRepo.MarkNotFound}, nil
	}
	slots := day.SlotsIST
	if zone == models.ZoneGST {
		slots = day.SlotsGST
	}
	for i := range slots {
		if slots[i].Time != timeStr {
			continue
		}
		if slots[i].IsBooked {
			return availabilityRepo.MarkResult{
				Outcome: availabilityRepo.MarkAlreadyBooked,
				HeldBy:  slots[i].BookedBy,
			}, nil
		}
		slots[i].IsBooked = true
		slots[i].BookedBy = bookingID
		return availabilityRepo.MarkResult{Outcome: availabilityRepo.MarkBooked}, nil
	}
	return availabilityRepo.MarkResult{Outcome: availabilityRepo.MarkNotFound}, nil
}

func (f *fakeAvailability) ListDays(ctx context.Context, date string) ([]models.AvailabilityDay, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	days := []models.AvailabilityDay{}
	for _, d := range f.days {
		if date == "" || d.Date == date {
			days = append(days, *d)
		}
	}
	return days, nil
}

// fakeBookings is an in-memory booking repository.
type fakeBookings struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newFakeBookings() *fakeBookings {
	return &fakeBookings{bookings: make(map[string]*models.Booking)}
}

func (f *fakeBookings) Insert(ctx context.Context, b *models.Booking) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	copied := *b
	f.bookings[b.ID.Hex()] = &copied
	return b.ID.Hex(), nil
}

func (f *fakeBookings) FindByID(ctx context.Context, id string) (*models.Booking, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, bookingRepo.ErrInvalidID
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookings) ConfirmIfPending(ctx context.Context, id string) (bool, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return false, bookingRepo.ErrInvalidID
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok || b.Status == models.BookingStatusConfirmed {
		return false, nil
	}
	b.Status = models.BookingStatusConfirmed
	return true, nil
}

func (f *fakeBookings) SetOrderID(ctx context.Context, id, orderID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if b, ok := f.bookings[id]; ok {
		b.OrderID = orderID
	}
	return nil
}

func (f *fakeBookings) ListAll(ctx context.Context) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Booking{}
	for _, b := range f.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBookings) MarkAbandonedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, b := range f.bookings {
		if b.Status == models.BookingStatusPending && b.CreatedAt.Before(cutoff) {
			b.Status = models.BookingStatusAbandoned
			n++
		}
	}
	return n, nil
}

// fakeGateway records order requests and can be forced to fail.
type fakeGateway struct {
	mu     sync.Mutex
	fail   bool
	orders []fakeOrder
	nextID string
}

type fakeOrder struct {
	AmountMinor int64
	Currency    string
	ReferenceID string
}

func (f *fakeGateway) CreateOrder(ctx context.Context, amountMinor int64, currency, referenceID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return "", errors.New("gateway unavailable")
	}
	f.orders = append(f.orders, fakeOrder{amountMinor, currency, referenceID})
	if f.nextID != "" {
		return f.nextID, nil
	}
	return "pi_test_" + referenceID, nil
}

// fakeDispatcher counts notification dispatches.
type fakeDispatcher struct {
	mu          sync.Mutex
	guestCount  int
	adminCount  int
	lastGuest   models.GuestConfirmationPayload
	lastAlert   models.AdminAlertPayload
}

func (f *fakeDispatcher) DispatchGuestConfirmation(ctx context.Context, p models.GuestConfirmationPayload) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.guestCount++
	f.lastGuest = p
}

func (f *fakeDispatcher) DispatchAdminAlert(ctx context.Context, p models.AdminAlertPayload) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.adminCount++
	f.lastAlert = p
}
