package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/ledger-api/internal/application/service"
	"github.com/sangkips/ledger-api/internal/presentation/http/dto/request"
	"github.com/sangkips/ledger-api/internal/presentation/http/dto/response"
	"github.com/sangkips/ledger-api/pkg/pagination"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List handles listing customers with page-based pagination
func (h *CustomerHandler) List(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		return
	}

	params := pagination.ParseParams(c.Query("page"), c.Query("per_page"))
	result, err := h.customerService.ListCustomers(c.Request.Context(), actor, params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, "Customers retrieved successfully", result)
}

// Create handles creating a customer
func (h *CustomerHandler) Create(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		return
	}

	var req request.CustomerRequest
	if !bindJSON(c, &req) {
		return
	}
	input := &service.CreateCustomerInput{
		Email:         req.Email,
		Phone:         req.Phone,
		TaxCode:       req.TaxCode,
		ContactPerson: req.ContactPerson,
		Address:       req.Address,
		Notes:         req.Notes,
	}
	if req.Name != nil {
		input.Name = *req.Name
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), actor, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created successfully", customer)
}

// Get handles getting a single customer
func (h *CustomerHandler) Get(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "customer")
	if !ok {
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), actor, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved successfully", customer)
}

// Update handles updating a customer
func (h *CustomerHandler) Update(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "customer")
	if !ok {
		return
	}

	var req request.CustomerRequest
	if !bindJSON(c, &req) {
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), actor, &service.UpdateCustomerInput{
		ID:            id,
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		TaxCode:       req.TaxCode,
		ContactPerson: req.ContactPerson,
		Address:       req.Address,
		Notes:         req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer updated successfully", customer)
}

// Delete handles deleting a customer
func (h *CustomerHandler) Delete(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "customer")
	if !ok {
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), actor, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer deleted successfully", nil)
}
