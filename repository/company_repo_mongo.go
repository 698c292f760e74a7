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

type MongoCompanyRepo struct {
	DB *mongo.Client
}

func NewMongoCompanyRepo(db *mongo.Client) *MongoCompanyRepo {
	return &MongoCompanyRepo{DB: db}
}

func (r *MongoCompanyRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("companies")
}

func (r *MongoCompanyRepo) CreateCompany(company *models.Company) error {
	ctx := context.Background()

	if company.ID == "" {
		company.ID = primitive.NewObjectID().Hex()
	}
	if company.CreatedAt.IsZero() {
		company.CreatedAt = time.Now().UTC()
	}

	_, err := r.collection().InsertOne(ctx, company)
	return err
}

func (r *MongoCompanyRepo) GetCompanies(filters map[string]interface{}) ([]*models.Company, error) {
	ctx := context.Background()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := r.collection().Find(ctx, toBSONFilter(filters), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Company
	for cur.Next(ctx) {
		var company models.Company
		if err := cur.Decode(&company); err != nil {
			return nil, err
		}
		out = append(out, &company)
	}
	return out, cur.Err()
}

func (r *MongoCompanyRepo) GetCompanyByID(id string) (*models.Company, error) {
	ctx := context.Background()

	var company models.Company
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&company)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &company, nil
}

func (r *MongoCompanyRepo) UpdateCompany(id string, company *models.Company) error {
	ctx := context.Background()

	company.ID = id
	now := time.Now().UTC()
	company.UpdatedAt = &now

	_, err := r.collection().ReplaceOne(ctx, bson.M{"_id": id}, company)
	return err
}

func (r *MongoCompanyRepo) DeleteCompany(id string) error {
	ctx := context.Background()

	_, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	return err
}
