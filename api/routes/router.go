package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mayarosales/cakecafe-backend/api/controllers"
	webhookcontrollers "github.com/mayarosales/cakecafe-backend/api/controllers/webhooks"
	"github.com/mayarosales/cakecafe-backend/api/middleware"
	"github.com/mayarosales/cakecafe-backend/internal/catalog"
	checkoutsvc "github.com/mayarosales/cakecafe-backend/internal/checkout"
	"github.com/mayarosales/cakecafe-backend/internal/inquiries"
	stripewebhook "github.com/mayarosales/cakecafe-backend/internal/webhooks/stripe"
	"github.com/mayarosales/cakecafe-backend/pkg/config"
	"github.com/mayarosales/cakecafe-backend/pkg/db"
	"github.com/mayarosales/cakecafe-backend/pkg/logger"
	"github.com/mayarosales/cakecafe-backend/pkg/redis"
	"github.com/mayarosales/cakecafe-backend/pkg/stripe"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	catalogService catalog.Service,
	checkoutService checkoutsvc.Service,
	inquiriesService inquiries.Service,
	stripeClient *stripe.Client,
	stripeWebhookService *stripewebhook.Service,
	stripeWebhookGuard *stripewebhook.IdempotencyGuard,
	metricsGatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	formPolicy := middleware.NewFormRateLimitPolicy(
		"forms",
		cfg.FormRateLimit.Window,
		cfg.FormRateLimit.IPLimit,
		cfg.FormRateLimit.EmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbP, redisClient, logg))
	})

	if metricsGatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(metricsGatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", controllers.ListProducts(catalogService, logg))
		r.Get("/gallery", controllers.ListGallery(catalogService, logg))

		r.Post("/checkout", controllers.Checkout(checkoutService, logg))
		r.With(middleware.FormRateLimit(formPolicy, redisClient, logg)).Post("/custom-order", controllers.CreateCustomOrder(inquiriesService, logg))
		r.With(middleware.FormRateLimit(formPolicy, redisClient, logg)).Post("/inquiries", controllers.CreateInquiry(inquiriesService, logg))

		r.Route("/webhooks", func(r chi.Router) {
			r.Post("/stripe", webhookcontrollers.StripeWebhook(stripeWebhookService, stripeClient, stripeWebhookGuard, logg))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", controllers.AdminLogin(cfg, logg))
			r.Post("/logout", controllers.AdminLogout())
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminAuth(cfg.Admin.Password, cfg.App.IsDev(), logg))
			r.Get("/inquiries", controllers.AdminListInquiries(inquiriesService, logg))
			r.Get("/inquiries/{inquiryID}", controllers.AdminGetInquiry(inquiriesService, logg))
			r.Patch("/inquiries/{inquiryID}", controllers.AdminUpdateInquiry(inquiriesService, logg))
		})
	})

	return r
}
