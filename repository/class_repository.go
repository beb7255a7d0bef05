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

// ClassRepository defines access to the class catalog. AdjustEnrollment is
// the only write path for seat counters and uses a relative $inc so that
// concurrent payments for the same class never lose an update.
type ClassRepository interface {
	FindAll(ctx context.Context) ([]models.Class, error)
	FindByInstructorEmail(ctx context.Context, email string) ([]models.Class, error)
	FindByID(ctx context.Context, id string) (*models.Class, error)
	AdjustEnrollment(ctx context.Context, id string, seatDelta, enrolledDelta int) (int64, error)
}

type MongoClassRepository struct {
	collection *mongo.Collection
}

func NewMongoClassRepository(db *mongo.Database) *MongoClassRepository {
	return &MongoClassRepository{collection: db.Collection("classes")}
}

func (r *MongoClassRepository) FindAll(ctx context.Context) ([]models.Class, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoClassRepository) FindByInstructorEmail(ctx context.Context, email string) ([]models.Class, error) {
	return r.find(ctx, bson.M{"email": email})
}

func (r *MongoClassRepository) find(ctx context.Context, filter bson.M) ([]models.Class, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	defer cursor.Close(ctx)

	classes := []models.Class{}
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, fmt.Errorf("decode classes: %w", err)
	}
	return classes, nil
}

func (r *MongoClassRepository) FindByID(ctx context.Context, id string) (*models.Class, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var class models.Class
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&class)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find class: %w", err)
	}
	return &class, nil
}

// AdjustEnrollment applies seatDelta to availableSeats and enrolledDelta to
// enrolledStudents in a single atomic update. Returns the number of
// documents modified (0 when the class does not exist).
func (r *MongoClassRepository) AdjustEnrollment(ctx context.Context, id string, seatDelta, enrolledDelta int) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidID
	}

	update := bson.M{"$inc": bson.M{
		"availableSeats":   seatDelta,
		"enrolledStudents": enrolledDelta,
	}}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return 0, fmt.Errorf("adjust enrollment: %w", err)
	}
	return res.ModifiedCount, nil
}
