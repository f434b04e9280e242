package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/ledger-api/internal/domain/entity"
	"github.com/sangkips/ledger-api/internal/domain/enum"
	"github.com/sangkips/ledger-api/internal/domain/repository"
	"github.com/sangkips/ledger-api/pkg/apperror"
	"github.com/sangkips/ledger-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// projectGuard loads projects and enforces ownership. Every service that
// works on project-scoped records goes through it.
type projectGuard struct {
	projectRepo repository.ProjectRepository
}

func (g projectGuard) load(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Project, error) {
	project, err := g.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal("Failed to load project", err)
	}
	if project == nil {
		return nil, apperror.NewNotFoundError("Project")
	}
	if err := actor.authorize(project.OwnerID); err != nil {
		return nil, err
	}
	return project, nil
}

// ProjectService handles project-related operations
type ProjectService struct {
	projectRepo  repository.ProjectRepository
	customerRepo repository.CustomerRepository
	guard        projectGuard
}

// NewProjectService creates a new project service
func NewProjectService(projectRepo repository.ProjectRepository, customerRepo repository.CustomerRepository) *ProjectService {
	return &ProjectService{
		projectRepo:  projectRepo,
		customerRepo: customerRepo,
		guard:        projectGuard{projectRepo: projectRepo},
	}
}

// CreateProjectInput represents the create project input
type CreateProjectInput struct {
	Code        string
	Name        string
	Description *string
	CustomerID  *uuid.UUID
	Status      enum.ProjectStatus
	Budget      decimal.Decimal
	StartDate   *time.Time
	EndDate     *time.Time
}

// CreateProject creates a new project owned by the actor
func (s *ProjectService) CreateProject(ctx context.Context, actor Actor, input *CreateProjectInput) (*entity.Project, error) {
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	name := strings.TrimSpace(input.Name)

	var fieldErrors []apperror.FieldError
	if code == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "code", Message: "code is required"})
	}
	if name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "name is required"})
	}
	if input.Status == "" {
		input.Status = enum.ProjectStatusPlanning
	}
	if !input.Status.IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "status", Message: "invalid project status"})
	}
	if input.Budget.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "budget", Message: "budget cannot be negative"})
	}
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "end_date", Message: "end date is before start date"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	existing, err := s.projectRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, apperror.Internal("Failed to check project code", err)
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Project code already in use")
	}

	if err := s.checkCustomer(ctx, actor, input.CustomerID); err != nil {
		return nil, err
	}

	project := &entity.Project{
		OwnerID:     actor.UserID,
		CustomerID:  input.CustomerID,
		Code:        code,
		Name:        name,
		Description: input.Description,
		Status:      input.Status,
		Budget:      input.Budget,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, apperror.Internal("Failed to create project", err)
	}
	return project, nil
}

// checkCustomer verifies an optional customer exists and belongs to the actor
func (s *ProjectService) checkCustomer(ctx context.Context, actor Actor, customerID *uuid.UUID) error {
	if customerID == nil {
		return nil
	}
	customer, err := s.customerRepo.GetByID(ctx, *customerID)
	if err != nil {
		return apperror.Internal("Failed to load customer", err)
	}
	if customer == nil {
		return apperror.NewValidationError([]apperror.FieldError{{Field: "customer_id", Message: "customer does not exist"}})
	}
	return actor.authorize(customer.UserID)
}

// GetProject retrieves a project by ID
func (s *ProjectService) GetProject(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Project, error) {
	return s.guard.load(ctx, actor, id)
}

// ListProjectsInput holds project list filters
type ListProjectsInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	CustomerID *uuid.UUID
	Status     *enum.ProjectStatus
}

// ListProjects lists the actor's projects, or all projects for a super admin
func (s *ProjectService) ListProjects(ctx context.Context, actor Actor, input *ListProjectsInput) (*pagination.PaginatedResult[entity.Project], error) {
	if input.Pagination == nil {
		input.Pagination = pagination.DefaultPagination()
	}
	projects, total, err := s.projectRepo.List(ctx, &repository.ProjectFilterParams{
		Pagination: input.Pagination,
		OwnerID:    actor.ownerFilter(),
		CustomerID: input.CustomerID,
		Status:     input.Status,
		Search:     input.Search,
	})
	if err != nil {
		return nil, apperror.Internal("Failed to list projects", err)
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(projects, pag), nil
}

// UpdateProjectInput represents the update project input
type UpdateProjectInput struct {
	ID          uuid.UUID
	Name        *string
	Description *string
	CustomerID  *uuid.UUID
	Status      *enum.ProjectStatus
	Budget      *decimal.Decimal
	StartDate   *time.Time
	EndDate     *time.Time
}

// UpdateProject updates a project. The code is immutable once created.
func (s *ProjectService) UpdateProject(ctx context.Context, actor Actor, input *UpdateProjectInput) (*entity.Project, error) {
	project, err := s.guard.load(ctx, actor, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "name", Message: "name cannot be empty"}})
		}
		project.Name = name
	}
	if input.Description != nil {
		project.Description = input.Description
	}
	if input.CustomerID != nil {
		if err := s.checkCustomer(ctx, actor, input.CustomerID); err != nil {
			return nil, err
		}
		project.CustomerID = input.CustomerID
		project.Customer = nil
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "status", Message: "invalid project status"}})
		}
		project.Status = *input.Status
	}
	if input.Budget != nil {
		if input.Budget.IsNegative() {
			return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "budget", Message: "budget cannot be negative"}})
		}
		project.Budget = *input.Budget
	}
	if input.StartDate != nil {
		project.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		project.EndDate = input.EndDate
	}
	if project.StartDate != nil && project.EndDate != nil && project.EndDate.Before(*project.StartDate) {
		return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "end_date", Message: "end date is before start date"}})
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, apperror.Internal("Failed to update project", err)
	}
	return project, nil
}

// DeleteProject soft deletes a project
func (s *ProjectService) DeleteProject(ctx context.Context, actor Actor, id uuid.UUID) error {
	if _, err := s.guard.load(ctx, actor, id); err != nil {
		return err
	}
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return apperror.Internal("Failed to delete project", err)
	}
	return nil
}
