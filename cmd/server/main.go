package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"time"

	"eventboard/config"
	"eventboard/internal/adapters/auth"
	"eventboard/internal/adapters/email"
	"eventboard/internal/adapters/supabase"
	deliveryhttp "eventboard/internal/delivery/http"
	"eventboard/internal/delivery/http/controllers"
	"eventboard/internal/delivery/http/middleware"
	"eventboard/internal/domain"
	"eventboard/internal/repository/postgres"
	"eventboard/internal/services"

	_ "github.com/lib/pq"
)

const storeTimeout = 10 * time.Second

// @title Eventboard API
// @version 1.0
// @description Event listing backend: public reads, admin CRUD, auth.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	var (
		events domain.EventStore
		days   domain.DayStore
		users  domain.UserRepository
	)
	switch cfg.StoreProvider {
	case "supabase":
		client := supabase.New(cfg.SupabaseURL, cfg.SupabaseKey, nil)
		events, days = client, client
		logger.Info("using supabase record store", "url", cfg.SupabaseURL)
	case "postgres":
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			logger.Error("open database", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			logger.Error("ping database", "err", err)
			os.Exit(1)
		}
		events = postgres.NewEventStore(db)
		days = postgres.NewDayStore(db)
		users = postgres.NewUserRepository(db)
		logger.Info("using postgres record store")
	default:
		logger.Error("unknown store provider", "provider", cfg.StoreProvider)
		os.Exit(1)
	}
	if users == nil {
		// Admin accounts live in Postgres even when events are served from
		// Supabase. sql.Open is lazy, so a missing database only surfaces
		// when the auth routes are hit.
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			logger.Error("open database", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		users = postgres.NewUserRepository(db)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.MailerProvider,
		FromAddress: cfg.MailFromAddress,
		FromName:    cfg.MailFromName,
		SES: email.SESConfig{
			Region:             cfg.SESRegion,
			AccessKeyID:        cfg.SESAccessKeyID,
			SecretAccessKey:    cfg.SESSecretAccessKey,
			InsecureSkipVerify: cfg.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		logger.Error("mailer init", "err", err)
		os.Exit(1)
	}
	renderer := email.NewTemplateRenderer()
	var notifier domain.NotificationService
	if cfg.NotifyAddress != "" {
		notifier = services.NewNotificationService(mailer, renderer, cfg.NotifyAddress)
	}

	listing := services.NewListing(events, days, storeTimeout)
	coordinator := services.NewCoordinator(events, days, listing, notifier, logger, storeTimeout)

	tokens := auth.NewJWTTokens(cfg.JWTSecret)
	hasher := auth.NewBcryptHasher(0)
	authSvc := services.NewAuthService(users, hasher, tokens, cfg.JWTExpiry)

	listingController := controllers.NewListingController(logger, events)
	adminController := controllers.NewAdminController(logger, coordinator, listing)
	authController := controllers.NewAuthController(logger, authSvc)

	mux := deliveryhttp.NewRouter(listingController, adminController, authController, tokens, logger)

	var handler http.Handler = mux
	handler = middleware.LoggingMiddleware(logger, handler)
	handler = middleware.RequestID(handler)
	handler = middleware.CORS(cfg.AllowedOrigins, handler)

	addr := ":" + cfg.Port
	logger.Info("starting server", "addr", addr, "env", cfg.Environment, "store", cfg.StoreProvider)
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
