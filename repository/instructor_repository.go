package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/elegantedge/summer-school-backend/models"
)

// InstructorRepository defines read access to the instructor catalog.
type InstructorRepository interface {
	FindAll(ctx context.Context) ([]models.Instructor, error)
	FindByID(ctx context.Context, id string) (*models.Instructor, error)
}

type MongoInstructorRepository struct {
	collection *mongo.Collection
}

func NewMongoInstructorRepository(db *mongo.Database) *MongoInstructorRepository {
	return &MongoInstructorRepository{collection: db.Collection("instructors")}
}

func (r *MongoInstructorRepository) FindAll(ctx context.Context) ([]models.Instructor, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list instructors: %w", err)
	}
	defer cursor.Close(ctx)

	instructors := []models.Instructor{}
	if err := cursor.All(ctx, &instructors); err != nil {
		return nil, fmt.Errorf("decode instructors: %w", err)
	}
	return instructors, nil
}

func (r *MongoInstructorRepository) FindByID(ctx context.Context, id string) (*models.Instructor, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var instructor models.Instructor
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&instructor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find instructor: %w", err)
	}
	return &instructor, nil
}
