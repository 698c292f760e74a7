package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lightbill/models"
)

type MongoSettingsRepo struct {
	DB *mongo.Client
}

func NewMongoSettingsRepo(db *mongo.Client) *MongoSettingsRepo {
	return &MongoSettingsRepo{DB: db}
}

func (r *MongoSettingsRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("settings")
}

// SaveSettings upserts the single settings document.
func (r *MongoSettingsRepo) SaveSettings(settings *models.Settings) error {
	ctx := context.Background()

	if settings.ID == "" {
		settings.ID = "general"
	}
	if settings.CreatedAt.IsZero() {
		settings.CreatedAt = time.Now().UTC()
	}
	now := time.Now().UTC()
	settings.UpdatedAt = &now

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection().ReplaceOne(ctx, bson.M{"_id": settings.ID}, settings, opts)
	return err
}

func (r *MongoSettingsRepo) GetSettings() (*models.Settings, error) {
	ctx := context.Background()

	var settings models.Settings
	err := r.collection().FindOne(ctx, bson.M{}).Decode(&settings)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}
