package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/mayarosales/cakecafe-backend/api/routes"
	"github.com/mayarosales/cakecafe-backend/internal/catalog"
	checkoutsvc "github.com/mayarosales/cakecafe-backend/internal/checkout"
	"github.com/mayarosales/cakecafe-backend/internal/inquiries"
	stripewebhook "github.com/mayarosales/cakecafe-backend/internal/webhooks/stripe"
	"github.com/mayarosales/cakecafe-backend/pkg/config"
	"github.com/mayarosales/cakecafe-backend/pkg/db"
	"github.com/mayarosales/cakecafe-backend/pkg/logger"
	"github.com/mayarosales/cakecafe-backend/pkg/mailer"
	"github.com/mayarosales/cakecafe-backend/pkg/metrics"
	"github.com/mayarosales/cakecafe-backend/pkg/migrate"
	"github.com/mayarosales/cakecafe-backend/pkg/redis"
	"github.com/mayarosales/cakecafe-backend/pkg/stripe"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	stripeClient, err := stripe.NewClient(context.Background(), cfg.Stripe, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create stripe client", err)
		os.Exit(1)
	}

	var orderMailer mailer.Mailer
	switch {
	case cfg.Resend.APIKey != "":
		orderMailer, err = mailer.New(cfg.Resend)
		if err != nil {
			logg.Error(context.Background(), "failed to create mailer", err)
			os.Exit(1)
		}
	case cfg.App.IsProd():
		logg.Error(context.Background(), "resend api key is required in prod", nil)
		os.Exit(1)
	default:
		logg.Warn(context.Background(), "resend api key missing, order emails disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	storefrontMetrics := metrics.NewStorefrontMetrics(registry)

	catalogRepo := catalog.NewRepository(dbClient.DB())
	inquiriesRepo := inquiries.NewRepository(dbClient.DB())

	catalogService := catalog.NewService(catalogRepo)
	inquiriesService := inquiries.NewService(inquiriesRepo)
	checkoutService := checkoutsvc.NewService(
		catalogRepo,
		inquiriesRepo,
		checkoutsvc.NewSessionCreator(stripeClient),
		cfg.Checkout,
		logg,
		storefrontMetrics,
	)

	webhookService, err := stripewebhook.NewService(stripewebhook.ServiceParams{
		InquiriesRepo: inquiriesRepo,
		Mailer:        orderMailer,
		Logger:        logg,
		Metrics:       storefrontMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create stripe webhook service", err)
		os.Exit(1)
	}

	webhookGuard, err := stripewebhook.NewIdempotencyGuard(redisClient, cfg.Stripe.EventIdempotencyTTL, "stripe-webhook")
	if err != nil {
		logg.Error(context.Background(), "failed to create stripe webhook guard", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":        cfg.App.Env,
		"addr":       addr,
		"stripe_env": stripeClient.Environment(),
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			catalogService,
			checkoutService,
			inquiriesService,
			stripeClient,
			webhookService,
			webhookGuard,
			registry,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
