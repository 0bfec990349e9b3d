package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/upb/customer-service/config"
	"github.com/upb/customer-service/internal/observability"
	"github.com/upb/customer-service/repositories"
	"github.com/upb/customer-service/repositories/memory"
	"github.com/upb/customer-service/repositories/postgres"
	"github.com/upb/customer-service/services/customer"
	"go.uber.org/zap"
)

// Dependencies holds all application dependencies.
// This is the central wiring point for dependency injection.
type Dependencies struct {
	// Infrastructure
	Config *config.Config
	DB     *postgres.DB // nil when STORAGE_DRIVER=memory
	Logger *zap.Logger

	// Repository Factory
	RepoFactory *postgres.RepositoryFactory

	// Repositories
	Customers repositories.CustomerRepository

	// Observability
	Observations *observability.Registry

	// Services
	CustomerService *customer.Service
}

// NewDependencies creates and wires up all application dependencies
func NewDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		deps.Customers = memory.NewCustomerRepository(logger)
		logger.Info("using in-memory customer store")

	case config.DriverPostgres, "":
		if err := deps.initDatabase(ctx, cfg); err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		deps.initRepositories()

	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}

	deps.initServices(cfg)

	if err := SeedCustomers(ctx, deps.Customers, cfg.Storage.Seed, logger); err != nil {
		_ = deps.Close(ctx)
		return nil, fmt.Errorf("failed to seed customers: %w", err)
	}

	logger.Info("all dependencies initialized successfully",
		zap.String("storage", cfg.Storage.Driver))
	return deps, nil
}

// initDatabase initializes the PostgreSQL database connection and factory
func (d *Dependencies) initDatabase(ctx context.Context, cfg *config.Config) error {
	factory, err := postgres.NewRepositoryFactory(cfg, d.Logger)
	if err != nil {
		return fmt.Errorf("failed to create repository factory: %w", err)
	}

	d.RepoFactory = factory
	d.DB = factory.GetDB()

	if cfg.Storage.InitSchema {
		if err := factory.InitSchema(ctx); err != nil {
			_ = factory.Close()
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}

	d.Logger.Info("database connection established",
		zap.String("connection", cfg.Database.LogString()))

	return nil
}

// initRepositories initializes all repository instances
func (d *Dependencies) initRepositories() {
	repos := d.RepoFactory.NewRepositories()
	d.Customers = repos.Customers

	d.Logger.Info("repositories initialized")
}

// initServices wires the observation registry and the services on top of the repositories
func (d *Dependencies) initServices(cfg *config.Config) {
	d.Observations = observability.NewRegistry(cfg.Observability.MetricsEnabled)
	d.CustomerService = customer.NewService(d.Customers, d.Observations, d.Logger)
}

// Close gracefully shuts down all dependencies. It is safe to call twice.
func (d *Dependencies) Close(ctx context.Context) error {
	d.Logger.Info("shutting down dependencies")

	var errs []error

	if d.RepoFactory != nil {
		if err := d.RepoFactory.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		} else {
			d.Logger.Info("database connection closed")
		}
		d.RepoFactory = nil
		d.DB = nil
	}

	// Sync logger
	if d.Logger != nil {
		_ = d.Logger.Sync()
	}

	return errors.Join(errs...)
}
