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

type MongoInvoiceRepo struct {
	DB *mongo.Client
}

func NewMongoInvoiceRepo(db *mongo.Client) *MongoInvoiceRepo {
	return &MongoInvoiceRepo{DB: db}
}

func (r *MongoInvoiceRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("invoices")
}

func (r *MongoInvoiceRepo) CreateInvoice(invoice *models.Invoice) error {
	ctx := context.Background()

	if invoice.ID == "" {
		invoice.ID = primitive.NewObjectID().Hex()
	}
	if invoice.CreatedAt.IsZero() {
		invoice.CreatedAt = time.Now().UTC()
	}
	if invoice.PaymentStatus == "" {
		invoice.PaymentStatus = models.InvoiceUnpaid
	}

	_, err := r.collection().InsertOne(ctx, invoice)
	return err
}

func (r *MongoInvoiceRepo) GetInvoices(filters map[string]interface{}) ([]*models.Invoice, error) {
	ctx := context.Background()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.collection().Find(ctx, toBSONFilter(filters), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Invoice
	for cur.Next(ctx) {
		var invoice models.Invoice
		if err := cur.Decode(&invoice); err != nil {
			return nil, err
		}
		out = append(out, &invoice)
	}
	return out, cur.Err()
}

func (r *MongoInvoiceRepo) GetInvoiceByID(id string) (*models.Invoice, error) {
	ctx := context.Background()

	var invoice models.Invoice
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&invoice)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &invoice, nil
}

func (r *MongoInvoiceRepo) UpdateInvoice(id string, invoice *models.Invoice) error {
	ctx := context.Background()

	invoice.ID = id
	now := time.Now().UTC()
	invoice.UpdatedAt = &now

	_, err := r.collection().ReplaceOne(ctx, bson.M{"_id": id}, invoice)
	return err
}

func (r *MongoInvoiceRepo) UpdatePDFInfo(id string, createdAt time.Time, url string) error {
	ctx := context.Background()

	_, err := r.collection().UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"pdf_created_at": createdAt, "pdf_url": url}},
	)
	return err
}

func (r *MongoInvoiceRepo) DeleteInvoice(id string) error {
	ctx := context.Background()

	_, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	return err
}
