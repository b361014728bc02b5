package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/toratita/internal/config"
	"github.com/mamadbah2/toratita/internal/repository/mongodb"
	"github.com/mamadbah2/toratita/internal/repository/sheets"
	"github.com/mamadbah2/toratita/internal/scheduler"
	"github.com/mamadbah2/toratita/internal/server/handlers"
	"github.com/mamadbah2/toratita/internal/server/router"
	notifysvc "github.com/mamadbah2/toratita/internal/service/notify"
	reportingsvc "github.com/mamadbah2/toratita/internal/service/reporting"
	whatsappclient "github.com/mamadbah2/toratita/pkg/clients/whatsapp"
	"github.com/mamadbah2/toratita/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	store, err := mongodb.NewMongoStore(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName, baseLogger.Named("repo.mongodb"))
	if err != nil {
		baseLogger.Fatal("failed to init mongodb store", zap.Error(err))
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	if err := store.EnsureIndexes(context.Background()); err != nil {
		baseLogger.Fatal("failed to ensure indexes", zap.Error(err))
	}

	created, err := store.EnsureAdminUser(context.Background(), cfg.Admin.Username, cfg.Admin.Password)
	if err != nil {
		baseLogger.Fatal("failed to seed admin user", zap.Error(err))
	}
	if created {
		baseLogger.Info("seeded default admin account", zap.String("username", cfg.Admin.Username))
	}

	var whatsClient whatsappclient.Client
	if cfg.WhatsApp.Enabled() {
		whatsClient = whatsappclient.NewClient(cfg.WhatsApp)
		baseLogger.Info("whatsapp messaging enabled")
	} else {
		baseLogger.Warn("whatsapp credentials missing, outbound messaging disabled")
	}
	notifySvc := notifysvc.NewService(cfg.WhatsApp, whatsClient, store, baseLogger.Named("svc.notify"))

	reportingSvc := reportingsvc.NewService(store, baseLogger.Named("svc.reporting"))

	var exporter sheets.Exporter
	if cfg.Sheets.Enabled() {
		exporter, err = sheets.NewGoogleSheetExporter(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets exporter", zap.Error(err))
		}
		baseLogger.Info("weekly report sheet export enabled")
	}

	authHandler := handlers.NewAuthHandler(store, baseLogger.Named("handlers.auth"))
	recordsHandler := handlers.NewRecordsHandler(store, notifySvc, baseLogger.Named("handlers.records"))
	reportsHandler := handlers.NewReportsHandler(reportingSvc, baseLogger.Named("handlers.reports"))
	engine := router.New(authHandler, recordsHandler, reportsHandler, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Reporting, reportingSvc, notifySvc, exporter, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
