package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/lifeboardhq/lifeboard/internal/alerts"
	"github.com/lifeboardhq/lifeboard/internal/api/handlers"
	mw "github.com/lifeboardhq/lifeboard/internal/api/middleware"
	"github.com/lifeboardhq/lifeboard/internal/config"
	"github.com/lifeboardhq/lifeboard/internal/domain"
	"github.com/lifeboardhq/lifeboard/internal/pubsub"
	"github.com/lifeboardhq/lifeboard/internal/service"
	"github.com/lifeboardhq/lifeboard/internal/store"
)

// App holds the router and background services for lifecycle management.
type App struct {
	Router    *chi.Mux
	Refresher *service.Refresher
	Dashboard *service.DashboardService
}

func NewApp(db *pgxpool.Pool, redisClient *redis.Client, logger *zap.Logger) *App {
	// Stores
	recordStore := store.NewRecordStore(db)
	applianceStore := store.NewApplianceStore(db)
	vehicleStore := store.NewVehicleStore(db)
	documentStore := store.NewDocumentStore(db)
	providerStore := store.NewProviderStore(db)

	var dismissalStore domain.DismissalStore
	if redisClient != nil {
		dismissalStore = store.NewRedisDismissalStore(redisClient)
	} else {
		logger.Warn("redis not configured, dismissals will not survive restarts")
		dismissalStore = store.NewMemoryDismissalStore()
	}

	// Services
	engine := alerts.NewEngine(logger)
	engine.MaxAlerts = config.MaxAlerts()
	engine.DocumentLookaheadDays = config.DocumentLookaheadDays()

	bus := pubsub.New()
	dashboard := service.NewDashboardService(
		recordStore, applianceStore, vehicleStore, documentStore,
		providerStore, dismissalStore, engine, bus, logger,
	)

	refresher := service.NewRefresher(documentStore, bus, logger)
	refresher.SetInterval(config.RefreshInterval())

	// Handlers
	dashboardHandler := handlers.NewDashboardHandler(dashboard)
	alertsHandler := handlers.NewAlertsHandler(dashboard)

	r := chi.NewRouter()

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	r.Use(mw.RateLimit(config.RateLimitRPS(), config.RateLimitBurst()))

	r.Get("/health", healthHandler(db))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/domains/{domain}/kpis", dashboardHandler.KPIs)
		r.Get("/networth", dashboardHandler.NetWorth)

		r.Route("/alerts", func(r chi.Router) {
			r.Get("/", alertsHandler.List)
			r.Post("/{id}/dismiss", alertsHandler.Dismiss)
			r.Delete("/dismissed", alertsHandler.Clear)
		})
	})

	return &App{
		Router:    r,
		Refresher: refresher,
		Dashboard: dashboard,
	}
}

func healthHandler(db *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": err.Error()})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

// Compile-time checks that stores satisfy the domain interfaces.
var (
	_ domain.RecordStore    = (*store.RecordStore)(nil)
	_ domain.ApplianceStore = (*store.ApplianceStore)(nil)
	_ domain.VehicleStore   = (*store.VehicleStore)(nil)
	_ domain.DocumentStore  = (*store.DocumentStore)(nil)
	_ domain.ProviderStore  = (*store.ProviderStore)(nil)
	_ domain.DismissalStore = (*store.RedisDismissalStore)(nil)
	_ domain.DismissalStore = (*store.MemoryDismissalStore)(nil)
)
