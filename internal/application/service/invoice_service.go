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

// InvoiceService handles invoice-related operations
type InvoiceService struct {
	invoiceRepo repository.InvoiceRepository
	quoteRepo   repository.QuoteRepository
	guard       projectGuard
	log         *zap.Logger
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	quoteRepo repository.QuoteRepository,
	projectRepo repository.ProjectRepository,
	log *zap.Logger,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		quoteRepo:   quoteRepo,
		guard:       projectGuard{projectRepo: projectRepo},
		log:         log,
	}
}

// InvoiceInput represents the input for creating or replacing an invoice.
// When QuoteID is set and no items are given, the quote's items are billed.
type InvoiceInput struct {
	QuoteID     *uuid.UUID
	IssueDate   time.Time
	DueDate     *time.Time
	Status      enum.InvoiceStatus
	TaxAmount   decimal.Decimal
	TotalAmount decimal.Decimal
	Notes       *string
	Items       []LineItemInput
}

func buildInvoiceItems(items []LineItemInput, totals []decimal.Decimal) []entity.InvoiceItem {
	out := make([]entity.InvoiceItem, len(items))
	for i, in := range items {
		out[i] = entity.InvoiceItem{
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

// itemsFromQuote loads the quote's lines, checking it belongs to the project
func (s *InvoiceService) itemsFromQuote(ctx context.Context, projectID, quoteID uuid.UUID) ([]LineItemInput, decimal.Decimal, error) {
	quote, err := s.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return nil, decimal.Zero, apperror.Internal("Failed to load quote", err)
	}
	if quote == nil || quote.ProjectID != projectID {
		return nil, decimal.Zero, apperror.NewValidationError([]apperror.FieldError{{Field: "quote_id", Message: "quote does not belong to this project"}})
	}
	if quote.Status == enum.QuoteStatusRejected {
		return nil, decimal.Zero, apperror.NewValidationError([]apperror.FieldError{{Field: "quote_id", Message: "cannot invoice a rejected quote"}})
	}
	items := make([]LineItemInput, len(quote.Items))
	for i, qi := range quote.Items {
		items[i] = LineItemInput{
			ProductName: qi.ProductName,
			Description: qi.Description,
			Quantity:    qi.Quantity,
			Unit:        qi.Unit,
			UnitPrice:   qi.UnitPrice,
		}
	}
	return items, quote.TaxAmount, nil
}

// CreateInvoice creates a numbered invoice under a project
func (s *InvoiceService) CreateInvoice(ctx context.Context, actor Actor, projectID uuid.UUID, input *InvoiceInput) (*entity.Invoice, error) {
	project, err := s.guard.load(ctx, actor, projectID)
	if err != nil {
		return nil, err
	}

	if input.Status == "" {
		input.Status = enum.InvoiceStatusDraft
	}
	if !input.Status.IsValid() {
		return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "status", Message: "invalid invoice status"}})
	}
	if input.QuoteID != nil && len(input.Items) == 0 {
		items, tax, err := s.itemsFromQuote(ctx, project.ID, *input.QuoteID)
		if err != nil {
			return nil, err
		}
		input.Items = items
		if input.TaxAmount.IsZero() {
			input.TaxAmount = tax
		}
	}

	subtotal, total, lineTotals, err := documentTotals(input.Items, input.TaxAmount, input.TotalAmount)
	if err != nil {
		return nil, err
	}

	if input.IssueDate.IsZero() {
		input.IssueDate = time.Now()
	}

	invoice := &entity.Invoice{
		ProjectID:     project.ID,
		QuoteID:       input.QuoteID,
		CustomerID:    project.CustomerID,
		CreatedBy:     actor.UserID,
		IssueDate:     input.IssueDate,
		DueDate:       input.DueDate,
		Status:        input.Status,
		PaymentStatus: enum.PaymentStatusUnpaid,
		Subtotal:      subtotal,
		TaxAmount:     input.TaxAmount,
		TotalAmount:   total,
		Notes:         input.Notes,
		Items:         buildInvoiceItems(input.Items, lineTotals),
	}
	if invoice.Status == enum.InvoiceStatusPaid {
		invoice.PaymentStatus = enum.PaymentStatusPaid
		invoice.PaidAmount = total
	}

	err = createNumbered(ctx, s.invoiceRepo.GetNextNumber, utils.InvoicePrefix, "invoice", func(number string) error {
		invoice.Number = number
		return s.invoiceRepo.Create(ctx, invoice)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("invoice created", zap.String("invoice", invoice.Number), zap.String("project_id", project.ID.String()))
	return invoice, nil
}

// GetInvoice retrieves an invoice with its items
func (s *InvoiceService) GetInvoice(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal("Failed to load invoice", err)
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	if _, err := s.guard.load(ctx, actor, invoice.ProjectID); err != nil {
		return nil, err
	}
	return invoice, nil
}

// ListInvoices lists a project's invoices, optionally filtered by status
func (s *InvoiceService) ListInvoices(ctx context.Context, actor Actor, projectID uuid.UUID, status *enum.InvoiceStatus) ([]entity.Invoice, error) {
	if _, err := s.guard.load(ctx, actor, projectID); err != nil {
		return nil, err
	}
	invoices, err := s.invoiceRepo.ListByProject(ctx, projectID, status)
	if err != nil {
		return nil, apperror.Internal("Failed to list invoices", err)
	}
	return invoices, nil
}

// UpdateInvoice replaces an invoice's content. Only draft invoices are editable.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, actor Actor, id uuid.UUID, input *InvoiceInput) (*entity.Invoice, error) {
	invoice, err := s.GetInvoice(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if invoice.Status != enum.InvoiceStatusDraft {
		return nil, apperror.NewConflictError("Only draft invoices can be edited")
	}

	subtotal, total, lineTotals, err := documentTotals(input.Items, input.TaxAmount, input.TotalAmount)
	if err != nil {
		return nil, err
	}

	if !input.IssueDate.IsZero() {
		invoice.IssueDate = input.IssueDate
	}
	invoice.DueDate = input.DueDate
	invoice.Notes = input.Notes
	invoice.Subtotal = subtotal
	invoice.TaxAmount = input.TaxAmount
	invoice.TotalAmount = total
	invoice.Items = buildInvoiceItems(input.Items, lineTotals)

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, apperror.Internal("Failed to update invoice", err)
	}
	return invoice, nil
}

// UpdateInvoiceStatusInput carries a status change and optional payment state
type UpdateInvoiceStatusInput struct {
	Status        enum.InvoiceStatus
	PaymentStatus *enum.PaymentStatus
}

// UpdateInvoiceStatus moves an invoice to a new status. Marking an invoice paid
// also marks its payment as paid.
func (s *InvoiceService) UpdateInvoiceStatus(ctx context.Context, actor Actor, id uuid.UUID, input *UpdateInvoiceStatusInput) (*entity.Invoice, error) {
	if !input.Status.IsValid() {
		return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "status", Message: "invalid invoice status"}})
	}
	if input.PaymentStatus != nil && !input.PaymentStatus.IsValid() {
		return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "payment_status", Message: "invalid payment status"}})
	}

	invoice, err := s.GetInvoice(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if invoice.Status != input.Status && invoice.Status.IsTerminal() {
		return nil, apperror.NewStatusTransitionError("Invoice", invoice.Status.String(), input.Status.String())
	}

	payment := invoice.PaymentStatus
	if input.PaymentStatus != nil {
		payment = *input.PaymentStatus
	}
	if input.Status == enum.InvoiceStatusPaid {
		payment = enum.PaymentStatusPaid
	}

	if err := s.invoiceRepo.UpdateStatus(ctx, id, input.Status, payment); err != nil {
		return nil, apperror.Internal("Failed to update invoice status", err)
	}
	invoice.Status = input.Status
	invoice.PaymentStatus = payment

	s.log.Info("invoice status changed",
		zap.String("invoice", invoice.Number),
		zap.String("status", input.Status.String()),
		zap.String("payment_status", payment.String()),
	)
	return invoice, nil
}

// DeleteInvoice soft deletes an invoice
func (s *InvoiceService) DeleteInvoice(ctx context.Context, actor Actor, id uuid.UUID) error {
	if _, err := s.GetInvoice(ctx, actor, id); err != nil {
		return err
	}
	if err := s.invoiceRepo.Delete(ctx, id); err != nil {
		return apperror.Internal("Failed to delete invoice", err)
	}
	return nil
}
