package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"intothestar/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAvailabilityRepo is the MongoDB-backed implementation.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs the repo on the given database handle.
func NewMongoAvailabilityRepo(db *mongo.Database) *MongoAvailabilityRepo {
	return &MongoAvailabilityRepo{coll: db.Collection("availability")}
}

// EnsureIndexes creates the unique date index.
func (repo *MongoAvailabilityRepo) EnsureIndexes(ctx context.Context) error {
	_, err := repo.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create availability date index: %w", err)
	}
	return nil
}

func zoneField(zone string) string {
	if zone == models.ZoneGST {
		return "slots_gst"
	}
	return "slots_ist"
}

func (repo *MongoAvailabilityRepo) Day(ctx context.Context, date string) (*models.AvailabilityDay, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var day models.AvailabilityDay
	err := repo.coll.FindOne(ctx, bson.M{"date": date}).Decode(&day)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching availability for %s: %w", date, err)
	}
	return &day, nil
}

func (repo *MongoAvailabilityRepo) FreeSlots(ctx context.Context, date, zone string) ([]models.Slot, error) {
	day, err := repo.Day(ctx, date)
	if err != nil {
		return nil, err
	}
	if day == nil {
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

func (repo *MongoAvailabilityRepo) Upsert(ctx context.Context, date string, slotsIST, slotsGST []models.Slot) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if slotsIST == nil {
		slotsIST = []models.Slot{}
	}
	if slotsGST == nil {
		slotsGST = []models.Slot{}
	}

	_, err := repo.coll.UpdateOne(ctx,
		bson.M{"date": date},
		bson.M{"$set": bson.M{"slots_ist": slotsIST, "slots_gst": slotsGST}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert availability for %s: %w", date, err)
	}
	return nil
}

// MarkSlotBooked performs the conditional flag flip. The filter only matches
// while the slot is still free, so concurrent confirmers race on a single
// compare-and-set: MatchedCount tells us whether this call won. On a miss a
// follow-up read distinguishes an already-booked slot from a missing one.
func (repo *MongoAvailabilityRepo) MarkSlotBooked(ctx context.Context, date, zone, timeStr, bookingID string) (MarkResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	field := zoneField(zone)
	filter := bson.M{
		"date": date,
		field: bson.M{
			"$elemMatch": bson.M{
				"time":      timeStr,
				"is_booked": false,
			},
		},
	}
	update := bson.M{
		"$set": bson.M{
			field + ".$.is_booked": true,
			field + ".$.booked_by": bookingID,
		},
	}

	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return MarkResult{}, fmt.Errorf("failed to mark slot booked: %w", err)
	}
	if res.MatchedCount > 0 {
		return MarkResult{Outcome: MarkBooked}, nil
	}

	// Lost the conditional update; find out why.
	var day models.AvailabilityDay
	err = repo.coll.FindOne(ctx, bson.M{
		"date": date,
		field:  bson.M{"$elemMatch": bson.M{"time": timeStr}},
	}).Decode(&day)
	if err == mongo.ErrNoDocuments {
		return MarkResult{Outcome: MarkNotFound}, nil
	}
	if err != nil {
		return MarkResult{}, fmt.Errorf("failed to inspect slot state: %w", err)
	}

	for _, s := range day.SlotsForZone(zone) {
		if s.Time == timeStr && s.IsBooked {
			return MarkResult{Outcome: MarkAlreadyBooked, HeldBy: s.BookedBy}, nil
		}
	}
	// Slot reappeared as free between the update and the read; report
	// already-booked with no holder so the caller surfaces a conflict
	// instead of silently succeeding.
	return MarkResult{Outcome: MarkAlreadyBooked}, nil
}

func (repo *MongoAvailabilityRepo) ListDays(ctx context.Context, date string) ([]models.AvailabilityDay, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if date != "" {
		filter["date"] = date
	}

	cursor, err := repo.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error listing availability: %w", err)
	}
	defer cursor.Close(ctx)

	days := []models.AvailabilityDay{}
	if err := cursor.All(ctx, &days); err != nil {
		return nil, fmt.Errorf("error decoding availability list: %w", err)
	}
	return days, nil
}
