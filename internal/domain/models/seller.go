package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Seller is one of the women who take bread out for street sale.
type Seller struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Phone    string             `bson:"phone" json:"phone"` // WhatsApp number
	JoinedAt time.Time          `bson:"joinedAt" json:"joinedAt"`
}

// NewSeller builds a seller record stamped with the current time.
func NewSeller(name, phone string) *Seller {
	return &Seller{
		Name:     name,
		Phone:    phone,
		JoinedAt: time.Now(),
	}
}
