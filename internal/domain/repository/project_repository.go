package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/ledger-api/internal/domain/entity"
	"github.com/sangkips/ledger-api/internal/domain/enum"
	"github.com/sangkips/ledger-api/pkg/pagination"
)

// ProjectRepository defines the interface for project data operations
type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)
	GetByCode(ctx context.Context, code string) (*entity.Project, error)
	Update(ctx context.Context, project *entity.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ProjectFilterParams) ([]entity.Project, int64, error)
}

// ProjectFilterParams contains filtering parameters for project queries.
// A nil OwnerID lists every project.
type ProjectFilterParams struct {
	Pagination *pagination.PaginationParams
	OwnerID    *uuid.UUID
	CustomerID *uuid.UUID
	Status     *enum.ProjectStatus
	Search     string
}
