package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Expense records a purchase or running cost. Category is free-form
// ("Insumos", "Pérdida", "Mantenimiento", ...).
type Expense struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Date     time.Time          `bson:"date" json:"date"`
	ItemName string             `bson:"itemName" json:"itemName"`
	Category string             `bson:"category" json:"category"`
	Amount   float64            `bson:"amount" json:"amount"`
	Notes    string             `bson:"notes,omitempty" json:"notes,omitempty"`
}

// NewExpense builds an expense record stamped with the current time.
func NewExpense(itemName, category string, amount float64, notes string) *Expense {
	return &Expense{
		Date:     time.Now(),
		ItemName: itemName,
		Category: category,
		Amount:   amount,
		Notes:    notes,
	}
}
