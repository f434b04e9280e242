package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/ledger-api/internal/application/service"
	"github.com/sangkips/ledger-api/internal/domain/entity"
	"github.com/sangkips/ledger-api/internal/domain/enum"
	"github.com/sangkips/ledger-api/internal/presentation/http/dto/request"
	"github.com/sangkips/ledger-api/internal/presentation/http/dto/response"
)

// ExpenseHandler handles expense HTTP requests for one kind. Planned costs
// are served under /expense-quotes and actual costs under /expenses.
type ExpenseHandler struct {
	expenseService *service.ExpenseService
	kind           enum.ExpenseKind
	label          string
}

// NewExpenseHandler creates a handler for planned or actual expenses
func NewExpenseHandler(expenseService *service.ExpenseService, kind enum.ExpenseKind) *ExpenseHandler {
	label := "Expense"
	if kind == enum.ExpenseKindPlanned {
		label = "Planned expense"
	}
	return &ExpenseHandler{expenseService: expenseService, kind: kind, label: label}
}

func expenseInput(req *request.ExpenseRequest) (*service.ExpenseInput, error) {
	date, err := parseDate("expense_date", req.ExpenseDate)
	if err != nil {
		return nil, err
	}
	var lines []entity.ExpenseLineItem
	if len(req.LineItems) > 0 {
		lines = make([]entity.ExpenseLineItem, len(req.LineItems))
		for i, l := range req.LineItems {
			lines[i] = entity.ExpenseLineItem{
				Description:   l.Description,
				Quantity:      l.Quantity,
				UnitPrice:     l.UnitPrice,
				LineTotal:     l.LineTotal,
				ComponentsPct: l.ComponentsPct,
			}
		}
	}
	return &service.ExpenseInput{
		Description:     req.Description,
		Amount:          req.Amount,
		Status:          enum.ExpenseStatus(req.Status),
		ExpenseDate:     dateOrZero(date),
		DepartmentID:    req.DepartmentID,
		EmployeeID:      req.EmployeeID,
		ExpenseObjectID: req.ExpenseObjectID,
		ObjectTotals:    req.ObjectTotals,
		LineItems:       lines,
	}, nil
}

// List handles listing a project's expenses of this kind
func (h *ExpenseHandler) List(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		return
	}
	projectID, ok := parseID(c, "id", "project")
	if !ok {
		return
	}
	var status *enum.ExpenseStatus
	if raw := c.Query("status"); raw != "" {
		s, err := enum.ParseExpenseStatus(raw)
		if err != nil {
			response.BadRequest(c, "Invalid status filter")
			return
		}
		status = &s
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), actor, projectID, h.kind, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.label+"s retrieved successfully", expenses)
}

// Create handles recording an expense of this kind under a project
func (h *ExpenseHandler) Create(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		return
	}
	projectID, ok := parseID(c, "id", "project")
	if !ok {
		return
	}

	var req request.ExpenseRequest
	if !bindJSON(c, &req) {
		return
	}
	input, err := expenseInput(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), actor, projectID, h.kind, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, h.label+" created successfully", expense)
}

// Get handles getting a single expense
func (h *ExpenseHandler) Get(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "expense")
	if !ok {
		return
	}

	expense, err := h.expenseService.GetExpense(c.Request.Context(), actor, id, h.kind)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.label+" retrieved successfully", expense)
}

// Update handles replacing an unreviewed expense
func (h *ExpenseHandler) Update(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "expense")
	if !ok {
		return
	}

	var req request.ExpenseRequest
	if !bindJSON(c, &req) {
		return
	}
	input, err := expenseInput(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), actor, id, h.kind, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.label+" updated successfully", expense)
}

// Approve handles approving an expense
func (h *ExpenseHandler) Approve(c *gin.Context) {
	h.review(c, h.expenseService.Approve, "approved")
}

// Reject handles rejecting an expense
func (h *ExpenseHandler) Reject(c *gin.Context) {
	h.review(c, h.expenseService.Reject, "rejected")
}

type reviewFunc func(context.Context, service.Actor, uuid.UUID, enum.ExpenseKind, *string) (*entity.ProjectExpense, error)

func (h *ExpenseHandler) review(c *gin.Context, fn reviewFunc, verb string) {
	actor, ok := GetActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "expense")
	if !ok {
		return
	}

	var req request.ReviewRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}

	expense, err := fn(c.Request.Context(), actor, id, h.kind, req.Note)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.label+" "+verb, expense)
}

// Delete handles deleting an expense
func (h *ExpenseHandler) Delete(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "expense")
	if !ok {
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), actor, id, h.kind); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.label+" deleted successfully", nil)
}
