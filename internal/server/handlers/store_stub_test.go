package handlers_test

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mamadbah2/toratita/internal/domain/models"
	"github.com/mamadbah2/toratita/internal/repository/mongodb"
)

// stubStore is an in-memory Store. Setting err makes every operation fail
// with that error.
type stubStore struct {
	err error

	productions   []models.Production
	sellers       []models.Seller
	distributions []models.DistributionView
	payments      []models.PaymentView
	expenses      []models.Expense
	losses        []models.Loss
	users         []models.User

	income       float64
	expenseTotal float64
	lossTotal    float64
	lastSince    time.Time
}

var _ mongodb.Store = (*stubStore)(nil)

func (s *stubStore) CreateProduction(_ context.Context, p *models.Production) error {
	if s.err != nil {
		return s.err
	}
	p.ID = primitive.NewObjectID()
	s.productions = append(s.productions, *p)
	return nil
}

func (s *stubStore) ListProductions(context.Context) ([]models.Production, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.productions, nil
}

func (s *stubStore) CreateSeller(_ context.Context, seller *models.Seller) error {
	if s.err != nil {
		return s.err
	}
	seller.ID = primitive.NewObjectID()
	s.sellers = append(s.sellers, *seller)
	return nil
}

func (s *stubStore) ListSellers(context.Context) ([]models.Seller, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.sellers, nil
}

func (s *stubStore) GetSeller(_ context.Context, id primitive.ObjectID) (*models.Seller, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, seller := range s.sellers {
		if seller.ID == id {
			return &seller, nil
		}
	}
	return nil, mongodb.ErrNotFound
}

func (s *stubStore) CreateDistribution(_ context.Context, d *models.Distribution) error {
	if s.err != nil {
		return s.err
	}
	d.ID = primitive.NewObjectID()
	return nil
}

func (s *stubStore) ListDistributions(context.Context) ([]models.DistributionView, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.distributions, nil
}

func (s *stubStore) CreatePayment(_ context.Context, p *models.Payment) error {
	if s.err != nil {
		return s.err
	}
	p.ID = primitive.NewObjectID()
	return nil
}

func (s *stubStore) ListPayments(context.Context) ([]models.PaymentView, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.payments, nil
}

func (s *stubStore) CreateExpense(_ context.Context, e *models.Expense) error {
	if s.err != nil {
		return s.err
	}
	e.ID = primitive.NewObjectID()
	s.expenses = append(s.expenses, *e)
	return nil
}

func (s *stubStore) ListExpenses(context.Context) ([]models.Expense, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.expenses, nil
}

func (s *stubStore) CreateLoss(_ context.Context, l *models.Loss) error {
	if s.err != nil {
		return s.err
	}
	l.ID = primitive.NewObjectID()
	s.losses = append(s.losses, *l)
	return nil
}

func (s *stubStore) ListLosses(context.Context) ([]models.Loss, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.losses, nil
}

func (s *stubStore) FindUserByCredentials(_ context.Context, username, password string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.users {
		if u.Username == username && u.Password == password {
			return &u, nil
		}
	}
	return nil, mongodb.ErrNotFound
}

func (s *stubStore) SumPaymentsSince(_ context.Context, since time.Time) (float64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.lastSince = since
	return s.income, nil
}

func (s *stubStore) SumExpensesSince(_ context.Context, since time.Time) (float64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.expenseTotal, nil
}

func (s *stubStore) SumLossesSince(_ context.Context, since time.Time) (float64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.lossTotal, nil
}
