package models

// Slot is a single bookable time unit within a day and timezone bucket.
type Slot struct {
	Time     string `bson:"time" json:"time"`           // wall-clock "HH:MM", unique within its zone bucket
	IsBooked bool   `bson:"is_booked" json:"is_booked"` // flips false -> true exactly once, at confirmation
	BookedBy string `bson:"booked_by,omitempty" json:"booked_by,omitempty"` // booking id that holds the slot
}

// AvailabilityDay is the per-calendar-day record of bookable slots,
// partitioned into the two supported timezone buckets.
type AvailabilityDay struct {
	Date     string `bson:"date" json:"date"` // "YYYY-MM-DD", unique key
	SlotsIST []Slot `bson:"slots_ist" json:"slots_ist"`
	SlotsGST []Slot `bson:"slots_gst" json:"slots_gst"`
}

// Supported timezone buckets.
const (
	ZoneIST = "IST"
	ZoneGST = "GST"
)

// SlotsForZone returns the slot sequence for the given zone bucket.
func (d *AvailabilityDay) SlotsForZone(zone string) []Slot {
	if zone == ZoneGST {
		return d.SlotsGST
	}
	return d.SlotsIST
}

// UpdateAvailabilityRequest defines the admin payload replacing a day's full slot list.
type UpdateAvailabilityRequest struct {
	Date     string `json:"date" binding:"required"`
	SlotsIST []Slot `json:"slots_ist"`
	SlotsGST []Slot `json:"slots_gst"`
}

// DayAvailabilityResponse is the public view of a day's free slots.
type DayAvailabilityResponse struct {
	SlotsIST []Slot `json:"slots_ist"`
	SlotsGST []Slot `json:"slots_gst"`
}
