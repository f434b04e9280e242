package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sangkips/ledger-api/internal/domain/entity"
	"github.com/sangkips/ledger-api/internal/domain/repository"
	"github.com/sangkips/ledger-api/pkg/apperror"
	"github.com/sangkips/ledger-api/pkg/pagination"
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
	Name          string
	Email         *string
	Phone         *string
	TaxCode       *string
	ContactPerson *string
	Address       *string
	Notes         *string
}

// CreateCustomer creates a new customer owned by the actor
func (s *CustomerService) CreateCustomer(ctx context.Context, actor Actor, input *CreateCustomerInput) (*entity.Customer, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "name", Message: "name is required"}})
	}

	if input.Email != nil && *input.Email != "" {
		existing, err := s.customerRepo.GetByEmail(ctx, actor.UserID, *input.Email)
		if err != nil {
			return nil, apperror.Internal("Failed to check customer email", err)
		}
		if existing != nil {
			return nil, apperror.NewConflictError("A customer with this email already exists")
		}
	}

	customer := &entity.Customer{
		UserID:        actor.UserID,
		Name:          name,
		Email:         input.Email,
		Phone:         input.Phone,
		TaxCode:       input.TaxCode,
		ContactPerson: input.ContactPerson,
		Address:       input.Address,
		Notes:         input.Notes,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, apperror.Internal("Failed to create customer", err)
	}

	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal("Failed to load customer", err)
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	if err := actor.authorize(customer.UserID); err != nil {
		return nil, err
	}
	return customer, nil
}

// ListCustomers lists the actor's customers, or all customers for a super admin
func (s *CustomerService) ListCustomers(ctx context.Context, actor Actor, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, actor.UserID, params, search, actor.IsSuperAdmin)
	if err != nil {
		return nil, apperror.Internal("Failed to list customers", err)
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	ID            uuid.UUID
	Name          *string
	Email         *string
	Phone         *string
	TaxCode       *string
	ContactPerson *string
	Address       *string
	Notes         *string
}

// UpdateCustomer updates a customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, actor Actor, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.GetCustomer(ctx, actor, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "name", Message: "name cannot be empty"}})
		}
		customer.Name = name
	}
	if input.Email != nil {
		customer.Email = input.Email
	}
	if input.Phone != nil {
		customer.Phone = input.Phone
	}
	if input.TaxCode != nil {
		customer.TaxCode = input.TaxCode
	}
	if input.ContactPerson != nil {
		customer.ContactPerson = input.ContactPerson
	}
	if input.Address != nil {
		customer.Address = input.Address
	}
	if input.Notes != nil {
		customer.Notes = input.Notes
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, apperror.Internal("Failed to update customer", err)
	}

	return customer, nil
}

// DeleteCustomer deletes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, actor Actor, id uuid.UUID) error {
	if _, err := s.GetCustomer(ctx, actor, id); err != nil {
		return err
	}
	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return apperror.Internal("Failed to delete customer", err)
	}
	return nil
}
