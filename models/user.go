package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a registered account. The profile shape is client-defined beyond
// the fields below; unknown fields are kept as-is in the document.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name,omitempty" json:"name,omitempty"`
	Email    string             `bson:"email" json:"email"`
	PhotoURL string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Role     string             `bson:"role,omitempty" json:"role,omitempty"`
}
