package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lightbill/models"
)

type MongoPaymentRepo struct {
	DB *mongo.Client
}

func NewMongoPaymentRepo(db *mongo.Client) *MongoPaymentRepo {
	return &MongoPaymentRepo{DB: db}
}

func (r *MongoPaymentRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("payments")
}

func (r *MongoPaymentRepo) CreatePayment(payment *models.Payment) error {
	ctx := context.Background()

	if payment.ID == "" {
		payment.ID = primitive.NewObjectID().Hex()
	}
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = time.Now().UTC()
	}

	_, err := r.collection().InsertOne(ctx, payment)
	return err
}

func (r *MongoPaymentRepo) GetPayments(filters map[string]interface{}) ([]*models.Payment, error) {
	ctx := context.Background()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.collection().Find(ctx, toBSONFilter(filters), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Payment
	for cur.Next(ctx) {
		var payment models.Payment
		if err := cur.Decode(&payment); err != nil {
			return nil, err
		}
		out = append(out, &payment)
	}
	return out, cur.Err()
}
