package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/mamadbah2/toratita/internal/domain/models"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("record not found")

// Store defines the persistence operations consumed by the HTTP layer and
// the reporting service.
type Store interface {
	CreateProduction(ctx context.Context, p *models.Production) error
	ListProductions(ctx context.Context) ([]models.Production, error)

	CreateSeller(ctx context.Context, s *models.Seller) error
	ListSellers(ctx context.Context) ([]models.Seller, error)
	GetSeller(ctx context.Context, id primitive.ObjectID) (*models.Seller, error)

	CreateDistribution(ctx context.Context, d *models.Distribution) error
	ListDistributions(ctx context.Context) ([]models.DistributionView, error)

	CreatePayment(ctx context.Context, p *models.Payment) error
	ListPayments(ctx context.Context) ([]models.PaymentView, error)

	CreateExpense(ctx context.Context, e *models.Expense) error
	ListExpenses(ctx context.Context) ([]models.Expense, error)

	CreateLoss(ctx context.Context, l *models.Loss) error
	ListLosses(ctx context.Context) ([]models.Loss, error)

	FindUserByCredentials(ctx context.Context, username, password string) (*models.User, error)

	SumPaymentsSince(ctx context.Context, since time.Time) (float64, error)
	SumExpensesSince(ctx context.Context, since time.Time) (float64, error)
	SumLossesSince(ctx context.Context, since time.Time) (float64, error)
}

// Collection names, matching the existing database.
const (
	collProductions   = "productions"
	collSellers       = "sellers"
	collDistributions = "distributions"
	collPayments      = "payments"
	collExpenses      = "expenses"
	collLosses        = "losses"
	collUsers         = "users"
)

// Fixed list caps per collection.
const (
	productionLimit   = 30
	distributionLimit = 50
	paymentLimit      = 50
	expenseLimit      = 50
	lossLimit         = 50
)

// MongoStore implements Store on top of a MongoDB database.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
	logger *zap.Logger
}

// NewMongoStore connects to MongoDB and verifies the connection with a ping.
func NewMongoStore(ctx context.Context, uri, dbName string, logger *zap.Logger) (*MongoStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoStore{
		client: client,
		db:     client.Database(dbName),
		logger: logger,
	}, nil
}

// EnsureIndexes creates the unique username index. Safe to call on every
// start; Mongo treats an existing identical index as a no-op.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(collUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create username index: %w", err)
	}
	return nil
}

// EnsureAdminUser seeds the default account when no user with the given
// username exists. Returns true when a user was created.
func (s *MongoStore) EnsureAdminUser(ctx context.Context, username, password string) (bool, error) {
	coll := s.db.Collection(collUsers)

	err := coll.FindOne(ctx, bson.D{{Key: "username", Value: username}}).Err()
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return false, fmt.Errorf("check admin user: %w", err)
	}

	if _, err := coll.InsertOne(ctx, models.User{Username: username, Password: password}); err != nil {
		return false, fmt.Errorf("create admin user: %w", err)
	}

	s.logger.Info("admin user created", zap.String("username", username))
	return true, nil
}

// FindUserByCredentials looks a user up by exact username and password
// match. Returns ErrNotFound when the pair matches no document.
func (s *MongoStore) FindUserByCredentials(ctx context.Context, username, password string) (*models.User, error) {
	filter := bson.D{
		{Key: "username", Value: username},
		{Key: "password", Value: password},
	}

	var user models.User
	if err := s.db.Collection(collUsers).FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return &user, nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
