package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/ledger-api/internal/domain/entity"
	"github.com/sangkips/ledger-api/internal/domain/enum"
	"github.com/sangkips/ledger-api/internal/domain/repository"
	"github.com/sangkips/ledger-api/pkg/apperror"
	"github.com/sangkips/ledger-api/pkg/utils"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// QuoteService handles quote-related operations
type QuoteService struct {
	quoteRepo repository.QuoteRepository
	guard     projectGuard
	log       *zap.Logger
}

// NewQuoteService creates a new quote service
func NewQuoteService(quoteRepo repository.QuoteRepository, projectRepo repository.ProjectRepository, log *zap.Logger) *QuoteService {
	return &QuoteService{
		quoteRepo: quoteRepo,
		guard:     projectGuard{projectRepo: projectRepo},
		log:       log,
	}
}

// QuoteInput represents the input for creating or replacing a quote
type QuoteInput struct {
	IssueDate   time.Time
	ValidUntil  *time.Time
	Status      enum.QuoteStatus
	TaxAmount   decimal.Decimal
	TotalAmount decimal.Decimal
	Notes       *string
	Items       []LineItemInput
}

func buildQuoteItems(items []LineItemInput, totals []decimal.Decimal) []entity.QuoteItem {
	out := make([]entity.QuoteItem, len(items))
	for i, in := range items {
		out[i] = entity.QuoteItem{
			ProductName: in.ProductName,
			Description: in.Description,
			Quantity:    in.Quantity,
			Unit:        in.Unit,
			UnitPrice:   in.UnitPrice,
			Total:       totals[i],
		}
	}
	return out
}

// CreateQuote creates a numbered quote under a project
func (s *QuoteService) CreateQuote(ctx context.Context, actor Actor, projectID uuid.UUID, input *QuoteInput) (*entity.Quote, error) {
	project, err := s.guard.load(ctx, actor, projectID)
	if err != nil {
		return nil, err
	}

	if input.Status == "" {
		input.Status = enum.QuoteStatusDraft
	}
	if !input.Status.IsValid() {
		return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "status", Message: "invalid quote status"}})
	}
	subtotal, total, lineTotals, err := documentTotals(input.Items, input.TaxAmount, input.TotalAmount)
	if err != nil {
		return nil, err
	}

	if input.IssueDate.IsZero() {
		input.IssueDate = time.Now()
	}

	quote := &entity.Quote{
		ProjectID:   project.ID,
		CustomerID:  project.CustomerID,
		CreatedBy:   actor.UserID,
		IssueDate:   input.IssueDate,
		ValidUntil:  input.ValidUntil,
		Status:      input.Status,
		Subtotal:    subtotal,
		TaxAmount:   input.TaxAmount,
		TotalAmount: total,
		Notes:       input.Notes,
		Items:       buildQuoteItems(input.Items, lineTotals),
	}

	err = createNumbered(ctx, s.quoteRepo.GetNextNumber, utils.QuotePrefix, "quote", func(number string) error {
		quote.Number = number
		return s.quoteRepo.Create(ctx, quote)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("quote created", zap.String("quote", quote.Number), zap.String("project_id", project.ID.String()))
	return quote, nil
}

// GetQuote retrieves a quote with its items
func (s *QuoteService) GetQuote(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Quote, error) {
	quote, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal("Failed to load quote", err)
	}
	if quote == nil {
		return nil, apperror.NewNotFoundError("Quote")
	}
	if _, err := s.guard.load(ctx, actor, quote.ProjectID); err != nil {
		return nil, err
	}
	return quote, nil
}

// ListQuotes lists a project's quotes, optionally filtered by status
func (s *QuoteService) ListQuotes(ctx context.Context, actor Actor, projectID uuid.UUID, status *enum.QuoteStatus) ([]entity.Quote, error) {
	if _, err := s.guard.load(ctx, actor, projectID); err != nil {
		return nil, err
	}
	quotes, err := s.quoteRepo.ListByProject(ctx, projectID, status)
	if err != nil {
		return nil, apperror.Internal("Failed to list quotes", err)
	}
	return quotes, nil
}

// UpdateQuote replaces a quote's content. Quotes in a final state are read-only.
func (s *QuoteService) UpdateQuote(ctx context.Context, actor Actor, id uuid.UUID, input *QuoteInput) (*entity.Quote, error) {
	quote, err := s.GetQuote(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if quote.Status.IsTerminal() {
		return nil, apperror.NewConflictError("Quote is " + quote.Status.String() + " and can no longer be edited")
	}

	subtotal, total, lineTotals, err := documentTotals(input.Items, input.TaxAmount, input.TotalAmount)
	if err != nil {
		return nil, err
	}

	if !input.IssueDate.IsZero() {
		quote.IssueDate = input.IssueDate
	}
	quote.ValidUntil = input.ValidUntil
	quote.Notes = input.Notes
	quote.Subtotal = subtotal
	quote.TaxAmount = input.TaxAmount
	quote.TotalAmount = total
	quote.Items = buildQuoteItems(input.Items, lineTotals)

	if err := s.quoteRepo.Update(ctx, quote); err != nil {
		return nil, apperror.Internal("Failed to update quote", err)
	}
	return quote, nil
}

// UpdateQuoteStatus moves a quote to a new status
func (s *QuoteService) UpdateQuoteStatus(ctx context.Context, actor Actor, id uuid.UUID, status enum.QuoteStatus) (*entity.Quote, error) {
	if !status.IsValid() {
		return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "status", Message: "invalid quote status"}})
	}
	quote, err := s.GetQuote(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if quote.Status == status {
		return quote, nil
	}
	if quote.Status.IsTerminal() {
		return nil, apperror.NewStatusTransitionError("Quote", quote.Status.String(), status.String())
	}

	if err := s.quoteRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, apperror.Internal("Failed to update quote status", err)
	}
	quote.Status = status

	s.log.Info("quote status changed", zap.String("quote", quote.Number), zap.String("status", status.String()))
	return quote, nil
}

// DeleteQuote soft deletes a quote
func (s *QuoteService) DeleteQuote(ctx context.Context, actor Actor, id uuid.UUID) error {
	if _, err := s.GetQuote(ctx, actor, id); err != nil {
		return err
	}
	if err := s.quoteRepo.Delete(ctx, id); err != nil {
		return apperror.Internal("Failed to delete quote", err)
	}
	return nil
}
