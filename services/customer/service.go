package customer

import (
	"context"

	"github.com/upb/customer-service/internal/observability"
	"github.com/upb/customer-service/models"
	"github.com/upb/customer-service/repositories"
	"github.com/upb/customer-service/services"
	"github.com/upb/customer-service/utils"
	"go.uber.org/zap"
)

// ObservationByName is the observation recorded around name lookups
const ObservationByName = "by-name"

// Service exposes read access to customers
type Service struct {
	repo     repositories.CustomerRepository
	recorder observability.Recorder
	logger   *zap.Logger
}

// NewService creates a new customer Service. recorder may be nil.
func NewService(repo repositories.CustomerRepository, recorder observability.Recorder, logger *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		recorder: recorder,
		logger:   logger,
	}
}

// All returns every stored customer. The result is never nil.
func (s *Service) All(ctx context.Context) ([]*models.Customer, error) {
	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("failed to list customers", zap.Error(err))
		return nil, services.WrapInternal("failed to list customers", err)
	}
	return nonNil(customers), nil
}

// ByName returns the customers whose name equals name exactly.
// The name must be non-empty and start with an upper case letter.
func (s *Service) ByName(ctx context.Context, name string) ([]*models.Customer, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	customers, err := observability.Observe(ctx, s.recorder, ObservationByName,
		func(ctx context.Context) ([]*models.Customer, error) {
			return s.repo.FindByName(ctx, name)
		})
	if err != nil {
		s.logger.Error("failed to find customers by name",
			zap.String("name", name),
			zap.Error(err),
		)
		return nil, services.WrapInternal("failed to find customers by name", err)
	}

	s.logger.Debug("customers found by name",
		zap.String("name", name),
		zap.Int("count", len(customers)),
	)
	return nonNil(customers), nil
}

// ValidateName reports whether name is acceptable as a lookup key
func ValidateName(name string) error {
	if err := utils.ValidateVar(name, "name", "required"); err != nil {
		return services.ErrNameRequired
	}
	if err := utils.ValidateVar(name, "name", "capitalized"); err != nil {
		return services.ErrNameNotUpperCase.WithDetail("name", name)
	}
	return nil
}

func nonNil(customers []*models.Customer) []*models.Customer {
	if customers == nil {
		return []*models.Customer{}
	}
	return customers
}
