package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mamadbah2/toratita/internal/domain/models"
)

func (s *MongoStore) CreateProduction(ctx context.Context, p *models.Production) error {
	return s.insert(ctx, collProductions, p, &p.ID)
}

// ListProductions returns the most recent production records, newest first.
func (s *MongoStore) ListProductions(ctx context.Context) ([]models.Production, error) {
	return findSorted[models.Production](ctx, s.db.Collection(collProductions), productionLimit)
}

func (s *MongoStore) CreateSeller(ctx context.Context, seller *models.Seller) error {
	return s.insert(ctx, collSellers, seller, &seller.ID)
}

// ListSellers returns every seller; the roster is small enough that no cap
// or ordering is applied.
func (s *MongoStore) ListSellers(ctx context.Context) ([]models.Seller, error) {
	cursor, err := s.db.Collection(collSellers).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", collSellers, err)
	}

	sellers := []models.Seller{}
	if err := cursor.All(ctx, &sellers); err != nil {
		return nil, fmt.Errorf("decode %s: %w", collSellers, err)
	}
	return sellers, nil
}

// GetSeller fetches a single seller by id. Returns ErrNotFound for a
// dangling reference.
func (s *MongoStore) GetSeller(ctx context.Context, id primitive.ObjectID) (*models.Seller, error) {
	var seller models.Seller
	err := s.db.Collection(collSellers).FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&seller)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find seller: %w", err)
	}
	return &seller, nil
}

func (s *MongoStore) CreateDistribution(ctx context.Context, d *models.Distribution) error {
	return s.insert(ctx, collDistributions, d, &d.ID)
}

// ListDistributions returns the most recent distributions, newest first,
// with the seller reference resolved into the embedded document.
func (s *MongoStore) ListDistributions(ctx context.Context) ([]models.DistributionView, error) {
	pipeline := resolveSellerPipeline(distributionLimit)
	return aggregateAll[models.DistributionView](ctx, s.db.Collection(collDistributions), pipeline)
}

func (s *MongoStore) CreatePayment(ctx context.Context, p *models.Payment) error {
	return s.insert(ctx, collPayments, p, &p.ID)
}

// ListPayments returns the most recent payments, newest first, with the
// seller reference resolved into the embedded document.
func (s *MongoStore) ListPayments(ctx context.Context) ([]models.PaymentView, error) {
	pipeline := resolveSellerPipeline(paymentLimit)
	return aggregateAll[models.PaymentView](ctx, s.db.Collection(collPayments), pipeline)
}

func (s *MongoStore) CreateExpense(ctx context.Context, e *models.Expense) error {
	return s.insert(ctx, collExpenses, e, &e.ID)
}

func (s *MongoStore) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	return findSorted[models.Expense](ctx, s.db.Collection(collExpenses), expenseLimit)
}

func (s *MongoStore) CreateLoss(ctx context.Context, l *models.Loss) error {
	return s.insert(ctx, collLosses, l, &l.ID)
}

func (s *MongoStore) ListLosses(ctx context.Context) ([]models.Loss, error) {
	return findSorted[models.Loss](ctx, s.db.Collection(collLosses), lossLimit)
}

// insert persists one document and writes the generated id back through
// idOut.
func (s *MongoStore) insert(ctx context.Context, coll string, doc any, idOut *primitive.ObjectID) error {
	res, err := s.db.Collection(coll).InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert into %s: %w", coll, err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		*idOut = oid
	}
	return nil
}

// resolveSellerPipeline sorts by date descending, caps the result and joins
// the referenced seller. The $unwind keeps documents whose reference is
// missing or dangling, leaving the embedded seller unset.
func resolveSellerPipeline(limit int) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$sort", Value: bson.D{{Key: "date", Value: -1}}}},
		bson.D{{Key: "$limit", Value: limit}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: collSellers},
			{Key: "localField", Value: "sellerId"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "seller"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$seller"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}
}

func findSorted[T any](ctx context.Context, coll *mongo.Collection, limit int64) ([]T, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(limit)

	cursor, err := coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", coll.Name(), err)
	}

	out := []T{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	return out, nil
}

func aggregateAll[T any](ctx context.Context, coll *mongo.Collection, pipeline mongo.Pipeline) ([]T, error) {
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate %s: %w", coll.Name(), err)
	}

	out := []T{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	return out, nil
}
