package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Loss records spoiled or wasted goods ("Pan Malogrado", "Masa", "Insumo")
// with an estimated money value.
type Loss struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Date           time.Time          `bson:"date" json:"date"`
	Type           string             `bson:"type" json:"type"`
	Quantity       float64            `bson:"quantity" json:"quantity"`
	EstimatedValue float64            `bson:"estimatedValue" json:"estimatedValue"`
	Notes          string             `bson:"notes,omitempty" json:"notes,omitempty"`
}

// NewLoss builds a loss record stamped with the current time.
func NewLoss(lossType string, quantity, estimatedValue float64, notes string) *Loss {
	return &Loss{
		Date:           time.Now(),
		Type:           lossType,
		Quantity:       quantity,
		EstimatedValue: estimatedValue,
		Notes:          notes,
	}
}
