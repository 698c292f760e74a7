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

type MongoInventoryRepo struct {
	DB *mongo.Client
}

func NewMongoInventoryRepo(db *mongo.Client) *MongoInventoryRepo {
	return &MongoInventoryRepo{DB: db}
}

func (r *MongoInventoryRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("inventory")
}

func (r *MongoInventoryRepo) CreateItem(item *models.InventoryItem) error {
	ctx := context.Background()

	if item.ID == "" {
		item.ID = primitive.NewObjectID().Hex()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}

	_, err := r.collection().InsertOne(ctx, item)
	return err
}

func (r *MongoInventoryRepo) GetItems(filters map[string]interface{}) ([]*models.InventoryItem, error) {
	ctx := context.Background()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := r.collection().Find(ctx, toBSONFilter(filters), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.InventoryItem
	for cur.Next(ctx) {
		var item models.InventoryItem
		if err := cur.Decode(&item); err != nil {
			return nil, err
		}
		out = append(out, &item)
	}
	return out, cur.Err()
}

func (r *MongoInventoryRepo) GetItemByID(id string) (*models.InventoryItem, error) {
	ctx := context.Background()

	var item models.InventoryItem
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *MongoInventoryRepo) UpdateItem(id string, item *models.InventoryItem) error {
	ctx := context.Background()

	item.ID = id
	now := time.Now().UTC()
	item.UpdatedAt = &now

	_, err := r.collection().ReplaceOne(ctx, bson.M{"_id": id}, item)
	return err
}

func (r *MongoInventoryRepo) DeleteItem(id string) error {
	ctx := context.Background()

	_, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	return err
}
