package repositories

import (
	"context"
	"errors"

	"github.com/upb/customer-service/models"
)

// ErrNotFound is returned (wrapped) when a record with the requested id does not exist
var ErrNotFound = errors.New("record not found")

// CustomerRepository handles customer data operations
type CustomerRepository interface {
	// FindAll retrieves every customer; order is defined by the engine
	FindAll(ctx context.Context) ([]*models.Customer, error)

	// FindByName retrieves customers whose name matches exactly (case-sensitive)
	FindByName(ctx context.Context, name string) ([]*models.Customer, error)

	// FindByID retrieves a customer by ID
	FindByID(ctx context.Context, id int) (*models.Customer, error)

	// Insert stores a new customer and assigns its ID
	Insert(ctx context.Context, customer *models.Customer) error

	// Update updates a customer's name
	Update(ctx context.Context, customer *models.Customer) error

	// Delete deletes a customer
	Delete(ctx context.Context, id int) error

	// Count returns the number of stored customers
	Count(ctx context.Context) (int, error)
}

// Repositories aggregates all repository interfaces
type Repositories struct {
	Customers CustomerRepository
}
