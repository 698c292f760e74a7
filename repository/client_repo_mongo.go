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

type MongoClientRepo struct {
	DB *mongo.Client
}

func NewMongoClientRepo(db *mongo.Client) *MongoClientRepo {
	return &MongoClientRepo{DB: db}
}

func (r *MongoClientRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("clients")
}

func (r *MongoClientRepo) CreateClient(client *models.Client) error {
	ctx := context.Background()

	if client.ID == "" {
		client.ID = primitive.NewObjectID().Hex()
	}
	if client.CreatedAt.IsZero() {
		client.CreatedAt = time.Now().UTC()
	}

	_, err := r.collection().InsertOne(ctx, client)
	return err
}

func (r *MongoClientRepo) GetClients(filters map[string]interface{}) ([]*models.Client, error) {
	ctx := context.Background()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := r.collection().Find(ctx, toBSONFilter(filters), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Client
	for cur.Next(ctx) {
		var client models.Client
		if err := cur.Decode(&client); err != nil {
			return nil, err
		}
		out = append(out, &client)
	}
	return out, cur.Err()
}

func (r *MongoClientRepo) GetClientByID(id string) (*models.Client, error) {
	ctx := context.Background()

	var client models.Client
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&client)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

func (r *MongoClientRepo) GetClientByName(name string) (*models.Client, error) {
	ctx := context.Background()

	var client models.Client
	err := r.collection().FindOne(ctx, bson.M{"name": name}).Decode(&client)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

func (r *MongoClientRepo) UpdateClient(id string, client *models.Client) error {
	ctx := context.Background()

	client.ID = id
	now := time.Now().UTC()
	client.UpdatedAt = &now

	_, err := r.collection().ReplaceOne(ctx, bson.M{"_id": id}, client)
	return err
}

func (r *MongoClientRepo) DeleteClient(id string) error {
	ctx := context.Background()

	_, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	return err
}
