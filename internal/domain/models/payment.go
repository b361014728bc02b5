package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records money collected from a seller. The sold quantities are
// optional detail, only stored when the caller supplies them.
type Payment struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	Date           time.Time           `bson:"date" json:"date"`
	SellerID       *primitive.ObjectID `bson:"sellerId,omitempty" json:"sellerId,omitempty"`
	Amount         float64             `bson:"amount" json:"amount"`
	PanGrandeSold  *int                `bson:"panGrandeSold,omitempty" json:"panGrandeSold,omitempty"`
	PanPequenoSold *int                `bson:"panPequenoSold,omitempty" json:"panPequenoSold,omitempty"`
	Notes          string              `bson:"notes,omitempty" json:"notes,omitempty"`
}

// PaymentView is the read shape with the seller reference resolved.
type PaymentView struct {
	ID             primitive.ObjectID `bson:"_id" json:"_id"`
	Date           time.Time          `bson:"date" json:"date"`
	Seller         *Seller            `bson:"seller" json:"sellerId"`
	Amount         float64            `bson:"amount" json:"amount"`
	PanGrandeSold  *int               `bson:"panGrandeSold,omitempty" json:"panGrandeSold,omitempty"`
	PanPequenoSold *int               `bson:"panPequenoSold,omitempty" json:"panPequenoSold,omitempty"`
	Notes          string             `bson:"notes,omitempty" json:"notes,omitempty"`
}

// NewPayment builds a payment record stamped with the current time.
func NewPayment(sellerID string, amount float64, panGrandeSold, panPequenoSold *int, notes string) (*Payment, error) {
	ref, err := parseSellerRef(sellerID)
	if err != nil {
		return nil, err
	}

	return &Payment{
		Date:           time.Now(),
		SellerID:       ref,
		Amount:         amount,
		PanGrandeSold:  panGrandeSold,
		PanPequenoSold: panPequenoSold,
		Notes:          notes,
	}, nil
}
