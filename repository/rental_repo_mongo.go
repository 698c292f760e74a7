package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lightbill/models"
)

type MongoRentalRepo struct {
	DB *mongo.Client
}

func NewMongoRentalRepo(db *mongo.Client) *MongoRentalRepo {
	return &MongoRentalRepo{DB: db}
}

func (r *MongoRentalRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("rentals")
}

// CreateRental inserts a rental document with its line items embedded.
func (r *MongoRentalRepo) CreateRental(rental *models.Rental) error {
	ctx := context.Background()

	if rental.ID == "" {
		rental.ID = primitive.NewObjectID().Hex()
	}
	if rental.CreatedAt.IsZero() {
		rental.CreatedAt = time.Now().UTC()
	}

	_, err := r.collection().InsertOne(ctx, rental)
	return err
}

// GetRentals fetches rentals matching the filters, newest first.
func (r *MongoRentalRepo) GetRentals(filters map[string]interface{}) ([]*models.Rental, error) {
	ctx := context.Background()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.collection().Find(ctx, toBSONFilter(filters), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Rental
	for cur.Next(ctx) {
		var rental models.Rental
		if err := cur.Decode(&rental); err != nil {
			return nil, err
		}
		out = append(out, &rental)
	}
	return out, cur.Err()
}

func (r *MongoRentalRepo) GetRentalByID(id string) (*models.Rental, error) {
	ctx := context.Background()

	var rental models.Rental
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&rental)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &rental, nil
}

func (r *MongoRentalRepo) UpdateRental(id string, rental *models.Rental) error {
	ctx := context.Background()

	rental.ID = id
	now := time.Now().UTC()
	rental.UpdatedAt = &now

	_, err := r.collection().ReplaceOne(ctx, bson.M{"_id": id}, rental)
	return err
}

func (r *MongoRentalRepo) UpdateRentalStatus(id string, status string) error {
	ctx := context.Background()

	_, err := r.collection().UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}},
	)
	return err
}

func (r *MongoRentalRepo) DeleteRental(id string) error {
	ctx := context.Background()

	_, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	return err
}
