package repository

import (
	"context"
	"errors"

	"github.com/BenViveiros/CleanCutYardWorks/internal/domain/entity"
)

// ErrDuplicateEmail is returned by Create and Update when the customer's
// email is already held by another record. The store enforces this under
// its own lock, so concurrent writers cannot slip past a service-level
// pre-check.
var ErrDuplicateEmail = errors.New("customer email already in use")

// CustomerRepository defines the interface for customer data operations.
// GetByID and GetByEmail return (nil, nil) when no record matches; "not
// found" policy belongs to the callers.
type CustomerRepository interface {
	// Create assigns identity and returns ErrDuplicateEmail if the email
	// is taken.
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id int) (*entity.Customer, error)
	GetByEmail(ctx context.Context, email string) (*entity.Customer, error)
	// Update returns ErrDuplicateEmail if the email now collides with
	// another customer's.
	Update(ctx context.Context, customer *entity.Customer) error
	// List returns all customers in insertion order.
	List(ctx context.Context) ([]entity.Customer, error)
}
