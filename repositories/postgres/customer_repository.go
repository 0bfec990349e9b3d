package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/upb/customer-service/models"
	"github.com/upb/customer-service/repositories"
	"github.com/upb/customer-service/utils"
	"go.uber.org/zap"
)

// CustomerRepository implements the repositories.CustomerRepository interface
type CustomerRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *DB, logger *zap.Logger) repositories.CustomerRepository {
	return &CustomerRepository{
		db:     db,
		logger: logger,
	}
}

// FindAll retrieves all customers
func (r *CustomerRepository) FindAll(ctx context.Context) ([]*models.Customer, error) {
	query := `
		SELECT id, name
		FROM customer
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	return scanCustomers(rows)
}

// FindByName retrieves customers with exactly the given name
func (r *CustomerRepository) FindByName(ctx context.Context, name string) ([]*models.Customer, error) {
	query := `
		SELECT id, name
		FROM customer
		WHERE name = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("failed to find customers by name: %w", err)
	}
	defer rows.Close()

	return scanCustomers(rows)
}

// FindByID retrieves a customer by ID
func (r *CustomerRepository) FindByID(ctx context.Context, id int) (*models.Customer, error) {
	query := `
		SELECT id, name
		FROM customer
		WHERE id = $1
	`

	c := &models.Customer{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("customer %d: %w", id, repositories.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return c, nil
}

// Insert creates a new customer and writes the generated ID back into it
func (r *CustomerRepository) Insert(ctx context.Context, customer *models.Customer) error {
	if err := utils.ValidateStruct(customer); err != nil {
		return err
	}

	query := `
		INSERT INTO customer (name)
		VALUES ($1)
		RETURNING id
	`

	if err := r.db.QueryRowContext(ctx, query, customer.Name).Scan(&customer.ID); err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	r.logger.Debug("customer created", zap.Int("id", customer.ID), zap.String("name", customer.Name))
	return nil
}

// Update updates a customer's name
func (r *CustomerRepository) Update(ctx context.Context, customer *models.Customer) error {
	if err := utils.ValidateStruct(customer); err != nil {
		return err
	}

	query := `
		UPDATE customer
		SET name = $2
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, customer.ID, customer.Name)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("customer %d: %w", customer.ID, repositories.ErrNotFound)
	}

	r.logger.Debug("customer updated", zap.Int("id", customer.ID))
	return nil
}

// Delete deletes a customer
func (r *CustomerRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM customer WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("customer %d: %w", id, repositories.ErrNotFound)
	}

	r.logger.Debug("customer deleted", zap.Int("id", id))
	return nil
}

// Count returns the number of stored customers
func (r *CustomerRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM customer`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return n, nil
}

func scanCustomers(rows *sql.Rows) ([]*models.Customer, error) {
	customers := []*models.Customer{}
	for rows.Next() {
		c := &models.Customer{}
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", err)
	}

	return customers, nil
}
