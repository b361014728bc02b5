package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/toratita/internal/config"
	"github.com/mamadbah2/toratita/internal/repository/sheets"
	"github.com/mamadbah2/toratita/internal/service/notify"
	"github.com/mamadbah2/toratita/internal/service/reporting"
)

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron         *cron.Cron
	reportingSvc *reporting.Service
	notifySvc    *notify.Service
	exporter     sheets.Exporter
	cfg          config.ReportingConfig
	logger       *zap.Logger
}

// NewScheduler creates a new scheduler instance. exporter may be nil when
// the spreadsheet export is not configured.
func NewScheduler(cfg config.ReportingConfig, reportingSvc *reporting.Service, notifySvc *notify.Service, exporter sheets.Exporter, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:         cron.New(),
		reportingSvc: reportingSvc,
		notifySvc:    notifySvc,
		exporter:     exporter,
		cfg:          cfg,
		logger:       logger,
	}
}

// Start registers the weekly summary job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	_, err := s.cron.AddFunc(s.cfg.CronSchedule, s.pushWeeklySummary)
	if err != nil {
		s.logger.Error("failed to schedule weekly summary", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) pushWeeklySummary() {
	s.logger.Info("generating weekly summary")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	now := time.Now()
	report, err := s.reportingSvc.GenerateWeeklyReport(ctx, now)
	if err != nil {
		s.logger.Error("failed to generate weekly summary", zap.Error(err))
		return
	}

	summary := s.reportingSvc.FormatSummary(report, now)
	if err := s.notifySvc.SendOwnerSummary(ctx, summary); err != nil {
		s.logger.Error("failed to send weekly summary", zap.Error(err))
	}

	if s.exporter != nil {
		row := s.reportingSvc.ExportRow(report, now)
		if err := s.exporter.AppendReportRow(ctx, row); err != nil {
			s.logger.Error("failed to export weekly summary", zap.Error(err))
		}
	}

	s.logger.Info("weekly summary pushed",
		zap.Float64("income", report.WeekIncome),
		zap.Float64("expenses", report.WeekExpenses),
		zap.Float64("losses", report.WeekLosses))
}
