package models

import "fmt"

// Customer is the single entity exposed by the service.
// ID is assigned by the persistence engine on insert and never changes afterwards.
type Customer struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name" validate:"required"`
}

// NewCustomer creates an unsaved Customer instance
func NewCustomer(name string) *Customer {
	return &Customer{Name: name}
}

func (c Customer) String() string {
	return fmt.Sprintf("Customer[id=%d, name=%s]", c.ID, c.Name)
}
