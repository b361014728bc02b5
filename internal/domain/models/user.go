package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is an account for the dashboard login. Passwords are stored in
// clear text, matching the existing login contract.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Username string             `bson:"username" json:"username"`
	Password string             `bson:"password" json:"-"`
}
