package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sangkips/ledger-api/internal/domain/repository"
	"github.com/sangkips/ledger-api/pkg/apperror"
	"github.com/sangkips/ledger-api/pkg/utils"
	"github.com/shopspring/decimal"
)

// LineItemInput is one priced line of a quote or invoice
type LineItemInput struct {
	ProductName *string
	Description *string
	Quantity    decimal.Decimal
	Unit        *string
	UnitPrice   decimal.Decimal
}

// lineTotal prices a line at two decimals
func (in LineItemInput) lineTotal() decimal.Decimal {
	return in.Quantity.Mul(in.UnitPrice).Round(2)
}

// priceLines validates the lines and returns per-line totals plus their sum
func priceLines(items []LineItemInput) ([]decimal.Decimal, decimal.Decimal, error) {
	var fieldErrors []apperror.FieldError
	totals := make([]decimal.Decimal, len(items))
	subtotal := decimal.Zero
	for i, item := range items {
		if !item.Quantity.IsPositive() {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: itemField(i, "quantity"), Message: "quantity must be positive"})
		}
		if item.UnitPrice.IsNegative() {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: itemField(i, "unit_price"), Message: "unit price cannot be negative"})
		}
		totals[i] = item.lineTotal()
		subtotal = subtotal.Add(totals[i])
	}
	if len(fieldErrors) > 0 {
		return nil, decimal.Zero, apperror.NewValidationError(fieldErrors)
	}
	return totals, subtotal, nil
}

// documentTotals resolves subtotal and total for a quote or invoice. Lines win
// over an explicit total; without lines the explicit total is used as-is.
func documentTotals(items []LineItemInput, tax, explicitTotal decimal.Decimal) (subtotal, total decimal.Decimal, lineTotals []decimal.Decimal, err error) {
	if tax.IsNegative() {
		return decimal.Zero, decimal.Zero, nil, apperror.NewValidationError([]apperror.FieldError{{Field: "tax_amount", Message: "tax cannot be negative"}})
	}
	if len(items) == 0 {
		if explicitTotal.IsNegative() {
			return decimal.Zero, decimal.Zero, nil, apperror.NewValidationError([]apperror.FieldError{{Field: "total_amount", Message: "total cannot be negative"}})
		}
		return explicitTotal.Sub(tax), explicitTotal, nil, nil
	}
	lineTotals, subtotal, err = priceLines(items)
	if err != nil {
		return decimal.Zero, decimal.Zero, nil, err
	}
	return subtotal, subtotal.Add(tax), lineTotals, nil
}

func itemField(i int, name string) string {
	return fmt.Sprintf("items[%d].%s", i, name)
}

// numberAttempts bounds the retries of a create that lost its document number
// to a concurrent create.
const numberAttempts = 3

// createNumbered allocates the next document number and hands it to create,
// allocating again while the number turns out to be taken.
func createNumbered(ctx context.Context, next func(context.Context) (int64, error), prefix, label string, create func(number string) error) error {
	for attempt := 1; ; attempt++ {
		seq, err := next(ctx)
		if err != nil {
			return apperror.Internal("Failed to allocate "+label+" number", err)
		}
		err = create(utils.DocumentNumber(prefix, seq))
		switch {
		case err == nil:
			return nil
		case !errors.Is(err, repository.ErrDuplicateNumber):
			return apperror.Internal("Failed to create "+label, err)
		case attempt == numberAttempts:
			return apperror.NewConflictError("Could not allocate a " + label + " number, please retry")
		}
	}
}
