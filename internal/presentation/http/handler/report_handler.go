package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/ledger-api/internal/application/service"
	"github.com/sangkips/ledger-api/internal/presentation/http/dto/response"
	"github.com/sangkips/ledger-api/pkg/apperror"
)

// ReportHandler serves project reconciliation reports
type ReportHandler struct {
	reportService *service.ReportService
	exportService *service.ExportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService, exportService *service.ExportService) *ReportHandler {
	return &ReportHandler{reportService: reportService, exportService: exportService}
}

// Get handles building the plan-versus-actual report of a project
// @Summary Project report
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /projects/{id}/report [get]
func (h *ReportHandler) Get(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		return
	}
	projectID, ok := parseID(c, "id", "project")
	if !ok {
		return
	}

	report, err := h.reportService.GetProjectReport(c.Request.Context(), actor, projectID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Report generated successfully", report)
}

// Export handles downloading the report as an XLSX workbook
// @Summary Export project report
// @Tags reports
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Router /projects/{id}/report/export [get]
func (h *ReportHandler) Export(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		return
	}
	projectID, ok := parseID(c, "id", "project")
	if !ok {
		return
	}

	report, err := h.reportService.GetProjectReport(c.Request.Context(), actor, projectID)
	if err != nil {
		response.Error(c, err)
		return
	}

	var buf bytes.Buffer
	if err := h.exportService.WriteXLSX(&buf, report); err != nil {
		response.Error(c, apperror.Internal("Failed to export report", err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.exportService.FileName(report)))
	c.Data(http.StatusOK, service.XLSXContentType, buf.Bytes())
}
