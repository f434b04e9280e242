package service

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/sangkips/ledger-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLines() []LineItemInput {
	return []LineItemInput{
		{Description: strPtr("Cable"), Quantity: d(10), UnitPrice: d(15)},
		{Description: strPtr("Labour"), Quantity: d(2), UnitPrice: d(200)},
	}
}

func TestQuoteService_CreateNumbersSequentially(t *testing.T) {
	f := newFixture(t)
	svc := f.quoteService()

	first, err := svc.CreateQuote(f.ctx, f.owner, f.project.ID, &QuoteInput{TaxAmount: d(55), Items: sampleLines()})
	require.NoError(t, err)
	second, err := svc.CreateQuote(f.ctx, f.owner, f.project.ID, &QuoteInput{TotalAmount: d(1_000)})
	require.NoError(t, err)

	assert.Equal(t, "QT-000001", first.Number)
	assert.Equal(t, "QT-000002", second.Number)
	assert.Equal(t, enum.QuoteStatusDraft, first.Status)
	assert.True(t, first.Subtotal.Equal(d(550)))
	assert.True(t, first.TotalAmount.Equal(d(605)))
	require.Len(t, first.Items, 2)
	assert.True(t, first.Items[1].Total.Equal(d(400)))
	assert.True(t, second.TotalAmount.Equal(d(1_000)))
	assert.False(t, first.IssueDate.IsZero())
}

func TestQuoteService_CreateRetriesTakenNumber(t *testing.T) {
	f := newFixture(t)
	svc := f.quoteService()

	f.quotes.taken = 1
	q, err := svc.CreateQuote(f.ctx, f.owner, f.project.ID, &QuoteInput{TotalAmount: d(10)})
	require.NoError(t, err)
	assert.Equal(t, "QT-000002", q.Number)

	f.quotes.taken = numberAttempts
	_, err = svc.CreateQuote(f.ctx, f.owner, f.project.ID, &QuoteInput{TotalAmount: d(10)})
	assertAppError(t, err, http.StatusConflict)
	assert.Len(t, f.quotes.items, 1)
}

func TestQuoteService_Ownership(t *testing.T) {
	f := newFixture(t)
	svc := f.quoteService()

	_, err := svc.CreateQuote(f.ctx, f.stranger, f.project.ID, &QuoteInput{})
	assertAppError(t, err, http.StatusForbidden)

	_, err = svc.CreateQuote(f.ctx, f.owner, uuid.New(), &QuoteInput{})
	assertAppError(t, err, http.StatusNotFound)

	q, err := svc.CreateQuote(f.ctx, f.owner, f.project.ID, &QuoteInput{})
	require.NoError(t, err)

	_, err = svc.GetQuote(f.ctx, f.stranger, q.ID)
	assertAppError(t, err, http.StatusForbidden)

	_, err = svc.GetQuote(f.ctx, f.admin, q.ID)
	assert.NoError(t, err)
}

func TestQuoteService_StatusTransitions(t *testing.T) {
	f := newFixture(t)
	svc := f.quoteService()

	q, err := svc.CreateQuote(f.ctx, f.owner, f.project.ID, &QuoteInput{Items: sampleLines()})
	require.NoError(t, err)

	q, err = svc.UpdateQuoteStatus(f.ctx, f.owner, q.ID, enum.QuoteStatusSent)
	require.NoError(t, err)
	assert.Equal(t, enum.QuoteStatusSent, q.Status)

	q, err = svc.UpdateQuoteStatus(f.ctx, f.owner, q.ID, enum.QuoteStatusAccepted)
	require.NoError(t, err)

	_, err = svc.UpdateQuoteStatus(f.ctx, f.owner, q.ID, enum.QuoteStatusAccepted)
	assert.NoError(t, err)

	_, err = svc.UpdateQuoteStatus(f.ctx, f.owner, q.ID, enum.QuoteStatusDraft)
	assertAppError(t, err, http.StatusConflict)

	_, err = svc.UpdateQuote(f.ctx, f.owner, q.ID, &QuoteInput{Items: sampleLines()})
	assertAppError(t, err, http.StatusConflict)

	_, err = svc.UpdateQuoteStatus(f.ctx, f.owner, q.ID, "archived")
	assertAppError(t, err, http.StatusUnprocessableEntity)
}

func TestQuoteService_UpdateRecalculates(t *testing.T) {
	f := newFixture(t)
	svc := f.quoteService()

	q, err := svc.CreateQuote(f.ctx, f.owner, f.project.ID, &QuoteInput{Items: sampleLines()})
	require.NoError(t, err)

	q, err = svc.UpdateQuote(f.ctx, f.owner, q.ID, &QuoteInput{Items: sampleLines()[:1], TaxAmount: d(15)})
	require.NoError(t, err)
	assert.Len(t, q.Items, 1)
	assert.True(t, q.TotalAmount.Equal(d(165)))

	_, err = svc.UpdateQuote(f.ctx, f.owner, q.ID, &QuoteInput{Items: []LineItemInput{{Quantity: d(-1), UnitPrice: d(1)}}})
	assertAppError(t, err, http.StatusUnprocessableEntity)

	require.NoError(t, svc.DeleteQuote(f.ctx, f.owner, q.ID))
	_, err = svc.GetQuote(f.ctx, f.owner, q.ID)
	assertAppError(t, err, http.StatusNotFound)
}

func TestQuoteService_ListByStatus(t *testing.T) {
	f := newFixture(t)
	svc := f.quoteService()

	_, err := svc.CreateQuote(f.ctx, f.owner, f.project.ID, &QuoteInput{})
	require.NoError(t, err)
	_, err = svc.CreateQuote(f.ctx, f.owner, f.project.ID, &QuoteInput{Status: enum.QuoteStatusSent})
	require.NoError(t, err)

	sent := enum.QuoteStatusSent
	quotes, err := svc.ListQuotes(f.ctx, f.owner, f.project.ID, &sent)
	require.NoError(t, err)
	assert.Len(t, quotes, 1)

	quotes, err = svc.ListQuotes(f.ctx, f.owner, f.project.ID, nil)
	require.NoError(t, err)
	assert.Len(t, quotes, 2)
}
