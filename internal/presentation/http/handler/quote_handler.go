package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/ledger-api/internal/application/service"
	"github.com/sangkips/ledger-api/internal/domain/enum"
	"github.com/sangkips/ledger-api/internal/presentation/http/dto/request"
	"github.com/sangkips/ledger-api/internal/presentation/http/dto/response"
)

// QuoteHandler handles quote-related HTTP requests
type QuoteHandler struct {
	quoteService *service.QuoteService
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(quoteService *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

func lineItems(items []request.LineItemRequest) []service.LineItemInput {
	out := make([]service.LineItemInput, len(items))
	for i, it := range items {
		out[i] = service.LineItemInput{
			ProductName: it.ProductName,
			Description: it.Description,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			UnitPrice:   it.UnitPrice,
		}
	}
	return out
}

func quoteInput(req *request.QuoteRequest) (*service.QuoteInput, error) {
	issue, err := parseDate("issue_date", req.IssueDate)
	if err != nil {
		return nil, err
	}
	validUntil, err := parseDate("valid_until", req.ValidUntil)
	if err != nil {
		return nil, err
	}
	return &service.QuoteInput{
		IssueDate:   dateOrZero(issue),
		ValidUntil:  validUntil,
		Status:      enum.QuoteStatus(req.Status),
		TaxAmount:   req.TaxAmount,
		TotalAmount: req.TotalAmount,
		Notes:       req.Notes,
		Items:       lineItems(req.Items),
	}, nil
}

// List handles listing a project's quotes, optionally by status
func (h *QuoteHandler) List(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		return
	}
	projectID, ok := parseID(c, "id", "project")
	if !ok {
		return
	}

	var status *enum.QuoteStatus
	if raw := c.Query("status"); raw != "" {
		s, err := enum.ParseQuoteStatus(raw)
		if err != nil {
			response.BadRequest(c, "Invalid status filter")
			return
		}
		status = &s
	}

	quotes, err := h.quoteService.ListQuotes(c.Request.Context(), actor, projectID, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotes retrieved successfully", quotes)
}

// Create handles creating a quote under a project
func (h *QuoteHandler) Create(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		return
	}
	projectID, ok := parseID(c, "id", "project")
	if !ok {
		return
	}

	var req request.QuoteRequest
	if !bindJSON(c, &req) {
		return
	}
	input, err := quoteInput(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	quote, err := h.quoteService.CreateQuote(c.Request.Context(), actor, projectID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Quote created successfully", quote)
}

// Get handles getting a single quote
func (h *QuoteHandler) Get(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "quote")
	if !ok {
		return
	}

	quote, err := h.quoteService.GetQuote(c.Request.Context(), actor, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote retrieved successfully", quote)
}

// Update handles replacing a quote's content
func (h *QuoteHandler) Update(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "quote")
	if !ok {
		return
	}

	var req request.QuoteRequest
	if !bindJSON(c, &req) {
		return
	}
	input, err := quoteInput(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	quote, err := h.quoteService.UpdateQuote(c.Request.Context(), actor, id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote updated successfully", quote)
}

// UpdateStatus handles a quote status change
func (h *QuoteHandler) UpdateStatus(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "quote")
	if !ok {
		return
	}

	var req request.StatusRequest
	if !bindJSON(c, &req) {
		return
	}

	quote, err := h.quoteService.UpdateQuoteStatus(c.Request.Context(), actor, id, enum.QuoteStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote status updated successfully", quote)
}

// Delete handles deleting a quote
func (h *QuoteHandler) Delete(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "quote")
	if !ok {
		return
	}

	if err := h.quoteService.DeleteQuote(c.Request.Context(), actor, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote deleted successfully", nil)
}

// InvoiceHandler handles invoice-related HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

func invoiceInput(req *request.InvoiceRequest) (*service.InvoiceInput, error) {
	issue, err := parseDate("issue_date", req.IssueDate)
	if err != nil {
		return nil, err
	}
	due, err := parseDate("due_date", req.DueDate)
	if err != nil {
		return nil, err
	}
	return &service.InvoiceInput{
		QuoteID:     req.QuoteID,
		IssueDate:   dateOrZero(issue),
		DueDate:     due,
		Status:      enum.InvoiceStatus(req.Status),
		TaxAmount:   req.TaxAmount,
		TotalAmount: req.TotalAmount,
		Notes:       req.Notes,
		Items:       lineItems(req.Items),
	}, nil
}

// List handles listing a project's invoices, optionally by status
func (h *InvoiceHandler) List(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		return
	}
	projectID, ok := parseID(c, "id", "project")
	if !ok {
		return
	}

	var status *enum.InvoiceStatus
	if raw := c.Query("status"); raw != "" {
		s, err := enum.ParseInvoiceStatus(raw)
		if err != nil {
			response.BadRequest(c, "Invalid status filter")
			return
		}
		status = &s
	}

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), actor, projectID, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoices retrieved successfully", invoices)
}

// Create handles creating an invoice under a project
func (h *InvoiceHandler) Create(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		return
	}
	projectID, ok := parseID(c, "id", "project")
	if !ok {
		return
	}

	var req request.InvoiceRequest
	if !bindJSON(c, &req) {
		return
	}
	input, err := invoiceInput(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), actor, projectID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice created successfully", invoice)
}

// Get handles getting a single invoice
func (h *InvoiceHandler) Get(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "invoice")
	if !ok {
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), actor, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", invoice)
}

// Update handles replacing a draft invoice's content
func (h *InvoiceHandler) Update(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "invoice")
	if !ok {
		return
	}

	var req request.InvoiceRequest
	if !bindJSON(c, &req) {
		return
	}
	input, err := invoiceInput(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), actor, id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice updated successfully", invoice)
}

// UpdateStatus handles an invoice status and payment change
func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "invoice")
	if !ok {
		return
	}

	var req request.InvoiceStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	input := &service.UpdateInvoiceStatusInput{Status: enum.InvoiceStatus(req.Status)}
	if req.PaymentStatus != nil {
		payment := enum.PaymentStatus(*req.PaymentStatus)
		input.PaymentStatus = &payment
	}

	invoice, err := h.invoiceService.UpdateInvoiceStatus(c.Request.Context(), actor, id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice status updated successfully", invoice)
}

// Delete handles deleting an invoice
func (h *InvoiceHandler) Delete(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "invoice")
	if !ok {
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), actor, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice deleted successfully", nil)
}
