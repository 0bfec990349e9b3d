package app

import (
	"context"
	"fmt"

	"github.com/upb/customer-service/models"
	"github.com/upb/customer-service/repositories"
	"go.uber.org/zap"
)

// LogCustomersOnReady logs every stored customer once the application is
// wired and before it starts serving. A failing store is only a warning.
func LogCustomersOnReady(ctx context.Context, repo repositories.CustomerRepository, logger *zap.Logger) {
	customers, err := repo.FindAll(ctx)
	if err != nil {
		logger.Warn("failed to list customers on startup", zap.Error(err))
		return
	}

	for _, c := range customers {
		logger.Info("customer", zap.Int("id", c.ID), zap.String("name", c.Name))
	}
}

// SeedCustomers inserts names when the store is empty
func SeedCustomers(ctx context.Context, repo repositories.CustomerRepository, names []string, logger *zap.Logger) error {
	if len(names) == 0 {
		return nil
	}

	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count customers: %w", err)
	}
	if count > 0 {
		logger.Info("customer store not empty, skipping seed", zap.Int("count", count))
		return nil
	}

	for _, name := range names {
		if err := repo.Insert(ctx, models.NewCustomer(name)); err != nil {
			return fmt.Errorf("failed to seed customer %q: %w", name, err)
		}
	}

	logger.Info("customers seeded", zap.Int("count", len(names)))
	return nil
}
