package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/ledger-api/internal/domain/entity"
	"github.com/sangkips/ledger-api/internal/domain/enum"
	domainRepo "github.com/sangkips/ledger-api/internal/domain/repository"
	"gorm.io/gorm"
)

// numberTaken maps a unique violation on insert to ErrDuplicateNumber; the
// document number is the only unique column of quotes and invoices.
func numberTaken(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainRepo.ErrDuplicateNumber
	}
	return err
}

type quoteRepository struct {
	db *gorm.DB
}

// NewQuoteRepository creates a new quote repository
func NewQuoteRepository(db *gorm.DB) domainRepo.QuoteRepository {
	return &quoteRepository{db: db}
}

func (r *quoteRepository) Create(ctx context.Context, quote *entity.Quote) error {
	return numberTaken(r.db.WithContext(ctx).Omit("Project", "Customer").Create(quote).Error)
}

func (r *quoteRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Quote, error) {
	var quote entity.Quote
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items").
		First(&quote, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &quote, err
}

// Update saves the quote header and replaces its items
func (r *quoteRepository) Update(ctx context.Context, quote *entity.Quote) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quote_id = ?", quote.ID).Delete(&entity.QuoteItem{}).Error; err != nil {
			return err
		}
		for i := range quote.Items {
			quote.Items[i].ID = uuid.Nil
			quote.Items[i].QuoteID = quote.ID
		}
		if len(quote.Items) > 0 {
			if err := tx.Create(&quote.Items).Error; err != nil {
				return err
			}
		}
		return tx.Omit("Project", "Customer", "Items").Save(quote).Error
	})
}

func (r *quoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Quote{}, "id = ?", id).Error
}

func (r *quoteRepository) ListByProject(ctx context.Context, projectID uuid.UUID, status *enum.QuoteStatus) ([]entity.Quote, error) {
	var quotes []entity.Quote
	query := r.db.WithContext(ctx).Scopes(InProject(projectID))
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Preload("Items").Order("issue_date DESC, created_at DESC").Find(&quotes).Error
	return quotes, err
}

func (r *quoteRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.QuoteStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Quote{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// GetNextNumber counts soft-deleted rows too so numbers are never reused
func (r *quoteRepository) GetNextNumber(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Unscoped().Model(&entity.Quote{}).Count(&count).Error
	return count + 1, err
}

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	return numberTaken(r.db.WithContext(ctx).Omit("Project", "Customer").Create(invoice).Error)
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items").
		First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

// Update saves the invoice header and replaces its items
func (r *invoiceRepository) Update(ctx context.Context, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", invoice.ID).Delete(&entity.InvoiceItem{}).Error; err != nil {
			return err
		}
		for i := range invoice.Items {
			invoice.Items[i].ID = uuid.Nil
			invoice.Items[i].InvoiceID = invoice.ID
		}
		if len(invoice.Items) > 0 {
			if err := tx.Create(&invoice.Items).Error; err != nil {
				return err
			}
		}
		return tx.Omit("Project", "Customer", "Items").Save(invoice).Error
	})
}

func (r *invoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Invoice{}, "id = ?", id).Error
}

func (r *invoiceRepository) ListByProject(ctx context.Context, projectID uuid.UUID, status *enum.InvoiceStatus) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	query := r.db.WithContext(ctx).Scopes(InProject(projectID))
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Preload("Items").Order("issue_date DESC, created_at DESC").Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.InvoiceStatus, payment enum.PaymentStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "payment_status": payment}).Error
}

// GetNextNumber counts soft-deleted rows too so numbers are never reused
func (r *invoiceRepository) GetNextNumber(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Unscoped().Model(&entity.Invoice{}).Count(&count).Error
	return count + 1, err
}
