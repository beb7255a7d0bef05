package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/elegantedge/summer-school-backend/models"
)

// PaymentRepository defines access to the payment ledger. Records are
// append-only; there is no update or delete path.
type PaymentRepository interface {
	Insert(ctx context.Context, record *models.PaymentRecord) (interface{}, error)
	FindByEmail(ctx context.Context, email string, newestFirst bool) ([]models.PaymentRecord, error)
}

type MongoPaymentRepository struct {
	collection *mongo.Collection
}

func NewMongoPaymentRepository(db *mongo.Database) *MongoPaymentRepository {
	return &MongoPaymentRepository{collection: db.Collection("payments")}
}

func (r *MongoPaymentRepository) Insert(ctx context.Context, record *models.PaymentRecord) (interface{}, error) {
	res, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}
	return res.InsertedID, nil
}

func (r *MongoPaymentRepository) FindByEmail(ctx context.Context, email string, newestFirst bool) ([]models.PaymentRecord, error) {
	findOptions := options.Find()
	if newestFirst {
		findOptions.SetSort(bson.D{{Key: "date", Value: -1}})
	}

	cursor, err := r.collection.Find(ctx, bson.M{"email": email}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer cursor.Close(ctx)

	records := []models.PaymentRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode payments: %w", err)
	}
	return records, nil
}
