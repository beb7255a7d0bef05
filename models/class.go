package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Class is a bookable class offering. AvailableSeats and EnrolledStudents
// are adjusted only by relative $inc updates on payment, never by
// read-modify-write.
type Class struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name             string             `bson:"name" json:"name"`
	Image            string             `bson:"image,omitempty" json:"image,omitempty"`
	InstructorName   string             `bson:"instructorName,omitempty" json:"instructorName,omitempty"`
	Email            string             `bson:"email,omitempty" json:"email,omitempty"`
	Price            float64            `bson:"price" json:"price"`
	AvailableSeats   int                `bson:"availableSeats" json:"availableSeats"`
	EnrolledStudents int                `bson:"enrolledStudents" json:"enrolledStudents"`
}
