package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Instructor is a read-only catalog entry shown on the instructors page.
type Instructor struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Image        string             `bson:"image,omitempty" json:"image,omitempty"`
	ClassesTaken int                `bson:"classesTaken,omitempty" json:"classesTaken,omitempty"`
}
