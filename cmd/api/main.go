package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stagefront/config"
	_ "stagefront/docs"
	"stagefront/internal/adapters/email"
	deliveryhttp "stagefront/internal/delivery/http"
	"stagefront/internal/delivery/http/controllers"
	"stagefront/internal/delivery/http/middleware"
	"stagefront/internal/repository/sqlite"
	"stagefront/internal/services"
	"stagefront/internal/state"
	"stagefront/internal/usecase"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
	syncTimeout       = 30 * time.Second
)

// @title Stagefront API
// @version 1.0
// @description Live-music catalog and engagement API: Ticketmaster-backed event and artist listings, reviews, and reservations.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sqlite.Open(cfg.SnapshotDBPath)
	if err != nil {
		logger.Error("failed to open snapshot database", "path", cfg.SnapshotDBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()
	snapshots := sqlite.NewSnapshotRepository(db)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	initial := state.LoadInitialState(ctx, snapshots, logger)
	store := state.New(initial, snapshots, logger)

	fetcher := usecase.NewDiscoveryHTTPFetcher(
		&http.Client{Timeout: 15 * time.Second},
		usecase.DefaultDiscoveryBaseURL,
		cfg.TicketmasterAPIKey,
	)
	catalogSync := usecase.NewCatalogSyncUseCase(fetcher, store, logger, syncTimeout)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "error", err)
		os.Exit(1)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())
	engagement := services.NewEngagementService(store, emailService, logger)

	router := deliveryhttp.NewRouter(
		controllers.NewEventController(logger, store),
		controllers.NewArtistController(logger, store),
		controllers.NewEngagementController(logger, engagement, store),
		controllers.NewCatalogController(logger, catalogSync, store),
	)
	handler := middleware.LoggingMiddleware(logger,
		middleware.CORS([]string{cfg.CORSAllowedOrigin}, router))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()
	logger.Info("stagefront API listening",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"snapshot_db", cfg.SnapshotDBPath,
	)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
			os.Exit(1)
		}
		logger.Info("server stopped")
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}
}
