package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/ledger-api/internal/application/service"
	"github.com/sangkips/ledger-api/internal/presentation/http/dto/request"
	"github.com/sangkips/ledger-api/internal/presentation/http/dto/response"
)

// OrganisationHandler handles expense objects, departments and employees
type OrganisationHandler struct {
	objectService     *service.ExpenseObjectService
	departmentService *service.DepartmentService
	employeeService   *service.EmployeeService
}

// NewOrganisationHandler creates a new organisation handler
func NewOrganisationHandler(
	objectService *service.ExpenseObjectService,
	departmentService *service.DepartmentService,
	employeeService *service.EmployeeService,
) *OrganisationHandler {
	return &OrganisationHandler{
		objectService:     objectService,
		departmentService: departmentService,
		employeeService:   employeeService,
	}
}

func objectInput(req *request.ExpenseObjectRequest) *service.ExpenseObjectInput {
	return &service.ExpenseObjectInput{
		ParentID:    req.ParentID,
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	}
}

// ListExpenseObjects handles listing expense objects; ?active=true hides inactive ones
func (h *OrganisationHandler) ListExpenseObjects(c *gin.Context) {
	objects, err := h.objectService.ListExpenseObjects(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Expense objects retrieved successfully", objects)
}

// CreateExpenseObject handles creating an expense object
func (h *OrganisationHandler) CreateExpenseObject(c *gin.Context) {
	var req request.ExpenseObjectRequest
	if !bindJSON(c, &req) {
		return
	}

	object, err := h.objectService.CreateExpenseObject(c.Request.Context(), objectInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Expense object created successfully", object)
}

// UpdateExpenseObject handles updating an expense object
func (h *OrganisationHandler) UpdateExpenseObject(c *gin.Context) {
	id, ok := parseID(c, "id", "expense object")
	if !ok {
		return
	}
	var req request.ExpenseObjectRequest
	if !bindJSON(c, &req) {
		return
	}

	object, err := h.objectService.UpdateExpenseObject(c.Request.Context(), id, objectInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Expense object updated successfully", object)
}

// DeleteExpenseObject handles deleting an expense object
func (h *OrganisationHandler) DeleteExpenseObject(c *gin.Context) {
	id, ok := parseID(c, "id", "expense object")
	if !ok {
		return
	}
	if err := h.objectService.DeleteExpenseObject(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Expense object deleted successfully", nil)
}

// ListDepartments handles listing departments
func (h *OrganisationHandler) ListDepartments(c *gin.Context) {
	departments, err := h.departmentService.ListDepartments(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Departments retrieved successfully", departments)
}

// CreateDepartment handles creating a department
func (h *OrganisationHandler) CreateDepartment(c *gin.Context) {
	var req request.DepartmentRequest
	if !bindJSON(c, &req) {
		return
	}

	department, err := h.departmentService.CreateDepartment(c.Request.Context(), &service.DepartmentInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Department created successfully", department)
}

// UpdateDepartment handles updating a department
func (h *OrganisationHandler) UpdateDepartment(c *gin.Context) {
	id, ok := parseID(c, "id", "department")
	if !ok {
		return
	}
	var req request.DepartmentRequest
	if !bindJSON(c, &req) {
		return
	}

	department, err := h.departmentService.UpdateDepartment(c.Request.Context(), id, &service.DepartmentInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Department updated successfully", department)
}

// DeleteDepartment handles deleting a department
func (h *OrganisationHandler) DeleteDepartment(c *gin.Context) {
	id, ok := parseID(c, "id", "department")
	if !ok {
		return
	}
	if err := h.departmentService.DeleteDepartment(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Department deleted successfully", nil)
}

// ListEmployees handles listing employees, optionally by department_id
func (h *OrganisationHandler) ListEmployees(c *gin.Context) {
	departmentID, ok := queryID(c, "department_id")
	if !ok {
		return
	}
	employees, err := h.employeeService.ListEmployees(c.Request.Context(), departmentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Employees retrieved successfully", employees)
}

// CreateEmployee handles linking a user to a department as an employee
func (h *OrganisationHandler) CreateEmployee(c *gin.Context) {
	var req request.EmployeeRequest
	if !bindJSON(c, &req) {
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), &service.CreateEmployeeInput{
		UserID:       req.UserID,
		DepartmentID: req.DepartmentID,
		Position:     req.Position,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Employee created successfully", employee)
}
