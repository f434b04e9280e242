package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/ledger-api/internal/application/service"
	"github.com/sangkips/ledger-api/internal/domain/enum"
	"github.com/sangkips/ledger-api/internal/presentation/http/dto/request"
	"github.com/sangkips/ledger-api/internal/presentation/http/dto/response"
	"github.com/sangkips/ledger-api/pkg/pagination"
)

// ProjectHandler handles project-related HTTP requests
type ProjectHandler struct {
	projectService *service.ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List handles listing projects, filtered by customer_id, status and search
func (h *ProjectHandler) List(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		return
	}
	customerID, ok := queryID(c, "customer_id")
	if !ok {
		return
	}

	input := &service.ListProjectsInput{
		Pagination: pagination.ParseParams(c.Query("page"), c.Query("per_page")),
		Search:     c.Query("search"),
		CustomerID: customerID,
	}
	if raw := c.Query("status"); raw != "" {
		status, err := enum.ParseProjectStatus(raw)
		if err != nil {
			response.BadRequest(c, "Invalid status filter")
			return
		}
		input.Status = &status
	}

	result, err := h.projectService.ListProjects(c.Request.Context(), actor, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, "Projects retrieved successfully", result)
}

// Create handles creating a project
func (h *ProjectHandler) Create(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		return
	}

	var req request.ProjectRequest
	if !bindJSON(c, &req) {
		return
	}
	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		response.Error(c, err)
		return
	}
	end, err := parseDate("end_date", req.EndDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	input := &service.CreateProjectInput{
		Code:        req.Code,
		Description: req.Description,
		CustomerID:  req.CustomerID,
		StartDate:   start,
		EndDate:     end,
	}
	if req.Name != nil {
		input.Name = *req.Name
	}
	if req.Status != nil {
		input.Status = enum.ProjectStatus(*req.Status)
	}
	if req.Budget != nil {
		input.Budget = *req.Budget
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), actor, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Project created successfully", project)
}

// Get handles getting a single project
func (h *ProjectHandler) Get(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "project")
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), actor, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Project retrieved successfully", project)
}

// Update handles updating a project
func (h *ProjectHandler) Update(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "project")
	if !ok {
		return
	}

	var req request.ProjectRequest
	if !bindJSON(c, &req) {
		return
	}
	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		response.Error(c, err)
		return
	}
	end, err := parseDate("end_date", req.EndDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	input := &service.UpdateProjectInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		CustomerID:  req.CustomerID,
		Budget:      req.Budget,
		StartDate:   start,
		EndDate:     end,
	}
	if req.Status != nil {
		status := enum.ProjectStatus(*req.Status)
		input.Status = &status
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), actor, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Project updated successfully", project)
}

// Delete handles deleting a project
func (h *ProjectHandler) Delete(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "project")
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), actor, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Project deleted successfully", nil)
}
