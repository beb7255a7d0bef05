package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/elegantedge/summer-school-backend/models"
)

// CartRepository defines access to the selectedClass collection.
type CartRepository interface {
	Insert(ctx context.Context, entry *models.CartEntry) (interface{}, error)
	FindByUserEmail(ctx context.Context, email string) ([]models.CartEntry, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}

type MongoCartRepository struct {
	collection *mongo.Collection
}

func NewMongoCartRepository(db *mongo.Database) *MongoCartRepository {
	return &MongoCartRepository{collection: db.Collection("selectedClass")}
}

func (r *MongoCartRepository) Insert(ctx context.Context, entry *models.CartEntry) (interface{}, error) {
	res, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("insert cart entry: %w", err)
	}
	return res.InsertedID, nil
}

func (r *MongoCartRepository) FindByUserEmail(ctx context.Context, email string) ([]models.CartEntry, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"userEmail": email})
	if err != nil {
		return nil, fmt.Errorf("list cart entries: %w", err)
	}
	defer cursor.Close(ctx)

	entries := []models.CartEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode cart entries: %w", err)
	}
	return entries, nil
}

// DeleteByID removes one cart entry and reports how many documents matched.
// Deleting an already-removed entry is not an error; callers decide what a
// zero count means.
func (r *MongoCartRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidID
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("delete cart entry: %w", err)
	}
	return res.DeletedCount, nil
}
