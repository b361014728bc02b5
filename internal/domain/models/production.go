package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Production records one day's baking output, split by bread size.
type Production struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Date          time.Time          `bson:"date" json:"date"`
	PanGrandeQty  int                `bson:"panGrandeQty" json:"panGrandeQty"`
	PanPequenoQty int                `bson:"panPequenoQty" json:"panPequenoQty"`
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`
}

// NewProduction builds a production record stamped with the current time.
func NewProduction(panGrandeQty, panPequenoQty int, notes string) *Production {
	return &Production{
		Date:          time.Now(),
		PanGrandeQty:  panGrandeQty,
		PanPequenoQty: panPequenoQty,
		Notes:         notes,
	}
}
