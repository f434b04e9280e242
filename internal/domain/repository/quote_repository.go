package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/ledger-api/internal/domain/entity"
	"github.com/sangkips/ledger-api/internal/domain/enum"
)

// ErrDuplicateNumber is returned by Create when the document number is already
// taken, typically by a concurrent create.
var ErrDuplicateNumber = errors.New("document number already taken")

// QuoteRepository defines the interface for quote data operations
type QuoteRepository interface {
	Create(ctx context.Context, quote *entity.Quote) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Quote, error)
	Update(ctx context.Context, quote *entity.Quote) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByProject(ctx context.Context, projectID uuid.UUID, status *enum.QuoteStatus) ([]entity.Quote, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.QuoteStatus) error
	GetNextNumber(ctx context.Context) (int64, error)
}

// InvoiceRepository defines the interface for invoice data operations
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	Update(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByProject(ctx context.Context, projectID uuid.UUID, status *enum.InvoiceStatus) ([]entity.Invoice, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.InvoiceStatus, payment enum.PaymentStatus) error
	GetNextNumber(ctx context.Context) (int64, error)
}
