package service

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Sheet names of an exported report workbook
const (
	SheetSummary    = "Summary"
	SheetCategories = "Categories"
	SheetObjects    = "Objects"
	SheetLines      = "Actual Expenses"
)

// XLSXContentType is the MIME type of exported workbooks
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportService renders project reports as spreadsheets
type ExportService struct{}

// NewExportService creates a new export service
func NewExportService() *ExportService {
	return &ExportService{}
}

// FileName returns the download name for a report workbook
func (s *ExportService) FileName(report *ProjectReport) string {
	return fmt.Sprintf("%s-report-%s.xlsx", report.Project.Code, report.GeneratedAt.Format("20060102"))
}

// WriteXLSX writes report as an XLSX workbook to w
func (s *ExportService) WriteXLSX(w io.Writer, report *ProjectReport) error {
	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return fmt.Errorf("rename summary sheet: %w", err)
	}
	for _, name := range []string{SheetCategories, SheetObjects, SheetLines} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	t := report.Totals
	summary := [][]interface{}{
		{"Project", report.Project.Code + " " + report.Project.Name},
		{"Generated at", report.GeneratedAt.Format("2006-01-02 15:04")},
		{"Total quotes", money(t.TotalQuotes)},
		{"Total planned expense", money(t.TotalPlannedExpense)},
		{"Planned profit", money(t.PlannedProfit)},
		{"Total invoices", money(t.TotalInvoices)},
		{"Total actual expense", money(t.TotalActualExpense)},
		{"Actual profit", money(t.ActualProfit)},
		{"Profit variance", money(t.ProfitVariance)},
		{"Profit margin (%)", t.ProfitMargin},
	}
	if err := writeRows(f, SheetSummary, summary); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetSummary, "A1", fmt.Sprintf("A%d", len(summary)), header); err != nil {
		return fmt.Errorf("style summary: %w", err)
	}

	categories := [][]interface{}{{"Category", "Department", "Planned", "Actual", "Variance", "Variance (%)", "Status", "Responsible", "Note"}}
	for _, r := range report.Categories {
		categories = append(categories, []interface{}{
			r.Category, r.Department, money(r.Planned), money(r.Actual), money(r.Variance),
			r.VariancePercent, r.Status, r.ResponsibleParty, r.Note,
		})
	}
	if err := writeTable(f, SheetCategories, categories, header); err != nil {
		return err
	}

	objects := [][]interface{}{{"Object", "Planned", "Actual", "Variance", "Variance (%)"}}
	for _, r := range report.Objects {
		objects = append(objects, []interface{}{
			r.ObjectName, money(r.Planned), money(r.Actual), money(r.Variance), r.VariancePercent,
		})
	}
	if err := writeTable(f, SheetObjects, objects, header); err != nil {
		return err
	}

	lines := [][]interface{}{{"Description", "Amount", "Planned", "Exceeds plan"}}
	for _, l := range report.ActualLines {
		lines = append(lines, []interface{}{l.Description, money(l.Amount), money(l.PlannedAmount), l.ExceedsPlan})
	}
	if err := writeTable(f, SheetLines, lines, header); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeTable(f *excelize.File, sheet string, rows [][]interface{}, header int) error {
	if err := writeRows(f, sheet, rows); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, header); err != nil {
		return fmt.Errorf("style %s header: %w", sheet, err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

// money converts an amount for spreadsheet cells
func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

