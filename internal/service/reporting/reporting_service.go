package reporting

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/toratita/internal/domain/models"
)

const dateLayout = "2006-01-02"

// reportWindow is the lookback applied to every weekly sum.
const reportWindow = 7 * 24 * time.Hour

// SummaryStore is the slice of the record store the reporting service
// consumes.
type SummaryStore interface {
	SumPaymentsSince(ctx context.Context, since time.Time) (float64, error)
	SumExpensesSince(ctx context.Context, since time.Time) (float64, error)
	SumLossesSince(ctx context.Context, since time.Time) (float64, error)
}

// Service computes the weekly money summary from the record store.
type Service struct {
	store  SummaryStore
	logger *zap.Logger
}

// NewService wires a new reporting service instance.
func NewService(store SummaryStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger}
}

// GenerateWeeklyReport sums payments, expenses and estimated losses whose
// date falls within the last seven days of now. The three sums are
// independent; any failure fails the whole report.
func (s *Service) GenerateWeeklyReport(ctx context.Context, now time.Time) (*models.WeeklyReport, error) {
	since := now.Add(-reportWindow)

	income, err := s.store.SumPaymentsSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("sum weekly income: %w", err)
	}

	expenses, err := s.store.SumExpensesSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("sum weekly expenses: %w", err)
	}

	losses, err := s.store.SumLossesSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("sum weekly losses: %w", err)
	}

	return &models.WeeklyReport{
		WeekIncome:   income,
		WeekExpenses: expenses,
		WeekLosses:   losses,
	}, nil
}

// FormatSummary renders the report as a short WhatsApp-friendly text.
func (s *Service) FormatSummary(report *models.WeeklyReport, now time.Time) string {
	start := now.Add(-reportWindow)
	net := report.WeekIncome - report.WeekExpenses - report.WeekLosses

	return fmt.Sprintf(
		"Resumen semanal (%s - %s)\nIngresos: %.2f\nGastos: %.2f\nPérdidas: %.2f\nNeto: %.2f",
		start.Format(dateLayout), now.Format(dateLayout),
		report.WeekIncome, report.WeekExpenses, report.WeekLosses, net,
	)
}

// ExportRow renders the report as a spreadsheet row: date, income,
// expenses, losses.
func (s *Service) ExportRow(report *models.WeeklyReport, now time.Time) []interface{} {
	return []interface{}{
		now.Format(dateLayout),
		report.WeekIncome,
		report.WeekExpenses,
		report.WeekLosses,
	}
}
