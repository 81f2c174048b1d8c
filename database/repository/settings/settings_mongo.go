package settingsRepo

import (
	"context"
	"fmt"
	"time"

	"intothestar/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const settingsDocID = "global_settings"

// SettingsRepository defines access to the singleton settings document.
type SettingsRepository interface {
	Get(ctx context.Context) (*models.GlobalSettings, error)
	Update(ctx context.Context, settings *models.GlobalSettings) error
}

// MongoSettingsRepo is the MongoDB-backed implementation.
type MongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepo constructs the repo on the given database handle.
func NewMongoSettingsRepo(db *mongo.Database) *MongoSettingsRepo {
	return &MongoSettingsRepo{coll: db.Collection("settings")}
}

// Get returns the settings document, falling back to the default base
// price when none has ever been written.
func (repo *MongoSettingsRepo) Get(ctx context.Context) (*models.GlobalSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var settings models.GlobalSettings
	err := repo.coll.FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		return &models.GlobalSettings{BasePriceAED: models.DefaultBasePriceAED}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching settings: %w", err)
	}
	return &settings, nil
}

func (repo *MongoSettingsRepo) Update(ctx context.Context, settings *models.GlobalSettings) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := repo.coll.UpdateOne(ctx,
		bson.M{"_id": settingsDocID},
		bson.M{"$set": bson.M{"base_price_aed": settings.BasePriceAED}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	return nil
}
