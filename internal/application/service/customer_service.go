package service

import (
	"context"
	"errors"

	"github.com/BenViveiros/CleanCutYardWorks/internal/domain/entity"
	"github.com/BenViveiros/CleanCutYardWorks/internal/domain/repository"
	"github.com/BenViveiros/CleanCutYardWorks/pkg/apperror"
)

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// CreateCustomer creates a new customer. Email is unique across all
// customers; a duplicate yields a conflict error. The store enforces the
// uniqueness under its own lock, so the pre-check here only provides the
// fast path and a concurrent duplicate still conflicts.
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	existing, err := s.customerRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Customer with this email already exists")
	}

	customer := &entity.Customer{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperror.NewConflictError("Customer with this email already exists")
		}
		return nil, err
	}

	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id int) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers returns all customers in insertion order
func (s *CustomerService) ListCustomers(ctx context.Context) ([]entity.Customer, error) {
	return s.customerRepo.List(ctx)
}

// UpdateCustomerInput enumerates the mutable customer fields; nil means
// "leave unchanged". Identity and createdAt are not mutable.
type UpdateCustomerInput struct {
	ID      int
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

// UpdateCustomer merges the provided fields into an existing customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.Email != nil && *input.Email != customer.Email {
		existing, err := s.customerRepo.GetByEmail(ctx, *input.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Customer with this email already exists")
		}
		customer.Email = *input.Email
	}
	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.Address != nil {
		customer.Address = *input.Address
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperror.NewConflictError("Customer with this email already exists")
		}
		return nil, err
	}

	return customer, nil
}
