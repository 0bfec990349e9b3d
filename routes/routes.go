package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/upb/customer-service/app"
	"github.com/upb/customer-service/handlers"
	"github.com/upb/customer-service/middleware"
)

const defaultRequestTimeout = 60 * time.Second

// SetupRoutes configures all application routes and middleware
func SetupRoutes(deps *app.Dependencies) http.Handler {
	r := chi.NewRouter()

	timeout := deps.Config.Server.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	// Core middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(timeout))

	// CORS middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "https://*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.NotFound(handlers.HandleNotFound(deps.Logger))
	r.MethodNotAllowed(handlers.HandleMethodNotAllowed(deps.Logger))

	// Health check endpoints
	var storage handlers.StorageChecker
	if deps.DB != nil {
		storage = deps.DB
	}
	health := handlers.NewHealthHandler(storage, deps.Logger)
	r.Get("/healthz", health.HandleHealth)
	r.Get("/readyz", health.HandleReadiness)

	// Customer endpoints
	customers := handlers.NewCustomerHandler(deps.CustomerService, deps.Logger)
	r.Get("/customer", customers.HandleList)
	r.Get("/customer/", customers.HandleByName) // empty name, rejected by the service
	r.Get("/customer/{name}", customers.HandleByName)

	// Actuator endpoints
	actuator := handlers.NewActuatorHandler(deps.Observations, deps.Logger)
	r.Route("/actuator", func(r chi.Router) {
		r.Get("/metrics", actuator.HandleMetricNames)
		r.Get("/metrics/{name}", actuator.HandleMetric)
		if deps.Config.Observability.MetricsEnabled {
			r.Handle("/prometheus", deps.Observations.Handler())
		}
	})

	return r
}
