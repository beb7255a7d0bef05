package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentRecord is written exactly once per completed payment and is never
// updated or deleted afterwards.
type PaymentRecord struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email           string             `bson:"email" json:"email"`
	TransactionID   string             `bson:"transactionId" json:"transactionId"`
	Price           float64            `bson:"price" json:"price"`
	Date            time.Time          `bson:"date" json:"date"`
	ClassID         string             `bson:"classId" json:"classId"`
	SelectedClassID string             `bson:"selectedClassId" json:"selectedClassId"`
	ClassName       string             `bson:"className,omitempty" json:"className,omitempty"`
}

// PaymentSubmission is the client payload posted after the gateway confirms
// a charge. Date is optional; the server stamps the current time when
// it is zero.
type PaymentSubmission struct {
	Email           string    `json:"email" binding:"required,email"`
	TransactionID   string    `json:"transactionId" binding:"required"`
	Price           float64   `json:"price" binding:"required"`
	Date            time.Time `json:"date"`
	ClassID         string    `json:"classId" binding:"required"`
	SelectedClassID string    `json:"selectedClassId" binding:"required"`
	ClassName       string    `json:"className"`
}

// EnrolledClass pairs a payment with the current state of the class it
// bought, for the "my enrolled classes" view.
type EnrolledClass struct {
	Payment PaymentRecord `json:"payment"`
	Class   *Class        `json:"class,omitempty"`
}
