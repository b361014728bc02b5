package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Distribution records a batch of bread handed to a seller. TotalValue is
// computed by the caller at send time and stored as-is.
type Distribution struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	Date           time.Time           `bson:"date" json:"date"`
	SellerID       *primitive.ObjectID `bson:"sellerId,omitempty" json:"sellerId,omitempty"`
	PanGrandeSent  int                 `bson:"panGrandeSent" json:"panGrandeSent"`
	PanPequenoSent int                 `bson:"panPequenoSent" json:"panPequenoSent"`
	TotalValue     float64             `bson:"totalValue" json:"totalValue"`
}

// DistributionView is the read shape: the seller reference is resolved and
// returned under the sellerId key, null when the id does not resolve.
type DistributionView struct {
	ID             primitive.ObjectID `bson:"_id" json:"_id"`
	Date           time.Time          `bson:"date" json:"date"`
	Seller         *Seller            `bson:"seller" json:"sellerId"`
	PanGrandeSent  int                `bson:"panGrandeSent" json:"panGrandeSent"`
	PanPequenoSent int                `bson:"panPequenoSent" json:"panPequenoSent"`
	TotalValue     float64            `bson:"totalValue" json:"totalValue"`
}

// NewDistribution builds a distribution record stamped with the current time.
// An empty sellerID leaves the reference unset.
func NewDistribution(sellerID string, panGrandeSent, panPequenoSent int, totalValue float64) (*Distribution, error) {
	ref, err := parseSellerRef(sellerID)
	if err != nil {
		return nil, err
	}

	return &Distribution{
		Date:           time.Now(),
		SellerID:       ref,
		PanGrandeSent:  panGrandeSent,
		PanPequenoSent: panPequenoSent,
		TotalValue:     totalValue,
	}, nil
}

func parseSellerRef(sellerID string) (*primitive.ObjectID, error) {
	if sellerID == "" {
		return nil, nil
	}
	oid, err := primitive.ObjectIDFromHex(sellerID)
	if err != nil {
		return nil, fmt.Errorf("invalid sellerId %q: %w", sellerID, err)
	}
	return &oid, nil
}
