package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SumPaymentsSince totals payment amounts with a date on or after since.
func (s *MongoStore) SumPaymentsSince(ctx context.Context, since time.Time) (float64, error) {
	return s.sumFieldSince(ctx, collPayments, "amount", since)
}

// SumExpensesSince totals expense amounts with a date on or after since.
func (s *MongoStore) SumExpensesSince(ctx context.Context, since time.Time) (float64, error) {
	return s.sumFieldSince(ctx, collExpenses, "amount", since)
}

// SumLossesSince totals estimated loss values with a date on or after since.
func (s *MongoStore) SumLossesSince(ctx context.Context, since time.Time) (float64, error) {
	return s.sumFieldSince(ctx, collLosses, "estimatedValue", since)
}

func (s *MongoStore) sumFieldSince(ctx context.Context, coll, field string, since time.Time) (float64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "date", Value: bson.D{{Key: "$gte", Value: since}}},
		}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$" + field}}},
		}}},
	}

	cursor, err := s.db.Collection(coll).Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("aggregate %s.%s: %w", coll, field, err)
	}

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("decode %s.%s total: %w", coll, field, err)
	}

	// No matching documents produces no group at all.
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
