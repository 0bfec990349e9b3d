// Package memory provides an in-process persistence engine for customers.
// It backs local development (STORAGE_DRIVER=memory) and handler tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/upb/customer-service/models"
	"github.com/upb/customer-service/repositories"
	"github.com/upb/customer-service/utils"
	"go.uber.org/zap"
)

// CustomerRepository stores customers in a map keyed by ID
type CustomerRepository struct {
	mu     sync.RWMutex
	rows   map[int]models.Customer
	nextID int
	logger *zap.Logger
}

// NewCustomerRepository creates an empty in-memory customer repository
func NewCustomerRepository(logger *zap.Logger) *CustomerRepository {
	return &CustomerRepository{
		rows:   make(map[int]models.Customer),
		nextID: 1,
		logger: logger,
	}
}

var _ repositories.CustomerRepository = (*CustomerRepository)(nil)

// FindAll returns copies of all customers ordered by ID
func (r *CustomerRepository) FindAll(ctx context.Context) ([]*models.Customer, error) {
	return r.collect(ctx, func(models.Customer) bool { return true })
}

// FindByName returns customers whose name equals name exactly
func (r *CustomerRepository) FindByName(ctx context.Context, name string) ([]*models.Customer, error) {
	return r.collect(ctx, func(c models.Customer) bool { return c.Name == name })
}

// FindByID returns a copy of the customer with the given ID
func (r *CustomerRepository) FindByID(ctx context.Context, id int) (*models.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.rows[id]
	if !ok {
		return nil, fmt.Errorf("customer %d: %w", id, repositories.ErrNotFound)
	}
	return &c, nil
}

// Insert assigns the next ID and stores the customer
func (r *CustomerRepository) Insert(ctx context.Context, customer *models.Customer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := utils.ValidateStruct(customer); err != nil {
		return err
	}

	r.mu.Lock()
	customer.ID = r.nextID
	r.nextID++
	r.rows[customer.ID] = *customer
	r.mu.Unlock()

	r.logger.Debug("customer created", zap.Int("id", customer.ID), zap.String("name", customer.Name))
	return nil
}

// Update replaces the stored name of an existing customer
func (r *CustomerRepository) Update(ctx context.Context, customer *models.Customer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := utils.ValidateStruct(customer); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[customer.ID]; !ok {
		return fmt.Errorf("customer %d: %w", customer.ID, repositories.ErrNotFound)
	}
	r.rows[customer.ID] = *customer
	return nil
}

// Delete removes a customer
func (r *CustomerRepository) Delete(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return fmt.Errorf("customer %d: %w", id, repositories.ErrNotFound)
	}
	delete(r.rows, id)
	return nil
}

// Count returns the number of stored customers
func (r *CustomerRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rows), nil
}

func (r *CustomerRepository) collect(ctx context.Context, keep func(models.Customer) bool) ([]*models.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	out := make([]*models.Customer, 0, len(r.rows))
	for _, c := range r.rows {
		if keep(c) {
			c := c
			out = append(out, &c)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
