package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartEntry is a pending, unpaid intent to enroll in a class. It is created
// when a student selects a class and removed either explicitly or by a
// completed payment.
type CartEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ClassID   string             `bson:"classId" json:"classId"`
	UserEmail string             `bson:"userEmail" json:"userEmail"`

	// Denormalized display fields copied from the class at selection time.
	Name           string  `bson:"name,omitempty" json:"name,omitempty"`
	Image          string  `bson:"image,omitempty" json:"image,omitempty"`
	InstructorName string  `bson:"instructorName,omitempty" json:"instructorName,omitempty"`
	Price          float64 `bson:"price,omitempty" json:"price,omitempty"`
}
