package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/ledger-api/internal/domain/entity"
	"github.com/sangkips/ledger-api/internal/domain/enum"
	"github.com/sangkips/ledger-api/internal/domain/reconciliation"
	"github.com/sangkips/ledger-api/internal/domain/repository"
	"github.com/sangkips/ledger-api/pkg/apperror"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ReportService assembles the plan-versus-actual report of a project
type ReportService struct {
	quoteRepo      repository.QuoteRepository
	invoiceRepo    repository.InvoiceRepository
	expenseRepo    repository.ExpenseRepository
	objectRepo     repository.ExpenseObjectRepository
	departmentRepo repository.DepartmentRepository
	employeeRepo   repository.EmployeeRepository
	guard          projectGuard
	options        reconciliation.Options
	log            *zap.Logger
	now            func() time.Time
}

// ReportRepositories bundles the data sources a report reads from
type ReportRepositories struct {
	Projects    repository.ProjectRepository
	Quotes      repository.QuoteRepository
	Invoices    repository.InvoiceRepository
	Expenses    repository.ExpenseRepository
	Objects     repository.ExpenseObjectRepository
	Departments repository.DepartmentRepository
	Employees   repository.EmployeeRepository
}

// NewReportService creates a new report service. tolerancePct is the on-budget
// band; non-positive values use the default.
func NewReportService(repos ReportRepositories, tolerancePct float64, log *zap.Logger) *ReportService {
	return &ReportService{
		quoteRepo:      repos.Quotes,
		invoiceRepo:    repos.Invoices,
		expenseRepo:    repos.Expenses,
		objectRepo:     repos.Objects,
		departmentRepo: repos.Departments,
		employeeRepo:   repos.Employees,
		guard:          projectGuard{projectRepo: repos.Projects},
		options:        reconciliation.Options{TolerancePct: tolerancePct},
		log:            log,
		now:            time.Now,
	}
}

// ProjectSummary identifies the project a report was built for
type ProjectSummary struct {
	ID       uuid.UUID          `json:"id"`
	Code     string             `json:"code"`
	Name     string             `json:"name"`
	Status   enum.ProjectStatus `json:"status"`
	Customer *string            `json:"customer,omitempty"`
}

// ProjectReport is a reconciliation report plus the context it was built in
type ProjectReport struct {
	Project      ProjectSummary `json:"project"`
	GeneratedAt  time.Time      `json:"generated_at"`
	TolerancePct float64        `json:"tolerance_pct"`
	reconciliation.Report
}

type reportData struct {
	quotes      []entity.Quote
	invoices    []entity.Invoice
	planned     []entity.ProjectExpense
	actual      []entity.ProjectExpense
	objects     []entity.ExpenseObject
	departments []entity.Department
	employees   map[uuid.UUID]string
}

// load fetches every report input concurrently; the first failure cancels the rest
func (s *ReportService) load(ctx context.Context, projectID uuid.UUID) (*reportData, error) {
	var data reportData
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		data.quotes, err = s.quoteRepo.ListByProject(ctx, projectID, nil)
		return err
	})
	g.Go(func() (err error) {
		data.invoices, err = s.invoiceRepo.ListByProject(ctx, projectID, nil)
		return err
	})
	g.Go(func() (err error) {
		data.planned, err = s.expenseRepo.ListByProject(ctx, projectID, enum.ExpenseKindPlanned, nil)
		return err
	})
	g.Go(func() (err error) {
		data.actual, err = s.expenseRepo.ListByProject(ctx, projectID, enum.ExpenseKindActual, nil)
		return err
	})
	g.Go(func() (err error) {
		data.objects, err = s.objectRepo.List(ctx, false)
		return err
	})
	g.Go(func() (err error) {
		data.departments, err = s.departmentRepo.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		data.employees, err = s.employeeRepo.NameMap(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetProjectReport builds the report for one project
func (s *ReportService) GetProjectReport(ctx context.Context, actor Actor, projectID uuid.UUID) (*ProjectReport, error) {
	project, err := s.guard.load(ctx, actor, projectID)
	if err != nil {
		return nil, err
	}

	start := s.now()
	data, err := s.load(ctx, project.ID)
	if err != nil {
		s.log.Error("failed to load report data", zap.String("project_id", project.ID.String()), zap.Error(err))
		return nil, apperror.Internal("Failed to load project financials", err)
	}

	report := reconciliation.Build(reconciliation.Input{
		Quotes:    toQuotes(data.quotes),
		Invoices:  toInvoices(data.invoices),
		Planned:   toExpenses(data.planned),
		Actual:    toExpenses(data.actual),
		Directory: toDirectory(data),
		Options:   s.options,
	})

	summary := ProjectSummary{ID: project.ID, Code: project.Code, Name: project.Name, Status: project.Status}
	if project.Customer != nil {
		summary.Customer = &project.Customer.Name
	}

	s.log.Debug("project report built",
		zap.String("project_id", project.ID.String()),
		zap.Int("categories", len(report.Categories)),
		zap.Int("objects", len(report.Objects)),
		zap.Duration("elapsed", s.now().Sub(start)),
	)

	tolerance := s.options.TolerancePct
	if tolerance <= 0 {
		tolerance = reconciliation.DefaultTolerancePct
	}

	return &ProjectReport{
		Project:      summary,
		GeneratedAt:  s.now(),
		TolerancePct: tolerance,
		Report:       report,
	}, nil
}

func idString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func toQuotes(quotes []entity.Quote) []reconciliation.Quote {
	out := make([]reconciliation.Quote, len(quotes))
	for i, q := range quotes {
		out[i] = reconciliation.Quote{
			ID:          q.ID.String(),
			Number:      q.Number,
			Status:      q.Status.String(),
			TotalAmount: q.TotalAmount,
		}
	}
	return out
}

func toInvoices(invoices []entity.Invoice) []reconciliation.Invoice {
	out := make([]reconciliation.Invoice, len(invoices))
	for i, inv := range invoices {
		out[i] = reconciliation.Invoice{
			ID:            inv.ID.String(),
			Number:        inv.Number,
			Status:        inv.Status.String(),
			PaymentStatus: inv.PaymentStatus.String(),
			TotalAmount:   inv.TotalAmount,
		}
	}
	return out
}

func toExpenses(expenses []entity.ProjectExpense) []reconciliation.Expense {
	out := make([]reconciliation.Expense, len(expenses))
	for i, e := range expenses {
		var lines []reconciliation.LineItem
		if len(e.LineItems) > 0 {
			lines = make([]reconciliation.LineItem, len(e.LineItems))
			for j, l := range e.LineItems {
				lines[j] = reconciliation.LineItem{
					LineTotal:     l.LineTotal,
					Quantity:      l.Quantity,
					UnitPrice:     l.UnitPrice,
					ComponentsPct: l.ComponentsPct,
				}
			}
		}
		out[i] = reconciliation.Expense{
			ID:              e.ID.String(),
			Description:     e.Description,
			Amount:          e.Amount,
			Status:          e.Status.String(),
			DepartmentID:    idString(e.DepartmentID),
			EmployeeID:      idString(e.EmployeeID),
			ExpenseObjectID: idString(e.ExpenseObjectID),
			ObjectTotals:    e.ObjectTotals,
			LineItems:       lines,
		}
	}
	return out
}

func toDirectory(data *reportData) reconciliation.Directory {
	dir := reconciliation.Directory{
		Objects:     make(map[string]string, len(data.objects)),
		Employees:   make(map[string]string, len(data.employees)),
		Departments: make(map[string]string, len(data.departments)),
	}
	for _, o := range data.objects {
		dir.Objects[o.ID.String()] = o.Name
	}
	for _, d := range data.departments {
		dir.Departments[d.ID.String()] = d.Name
	}
	for id, name := range data.employees {
		dir.Employees[id.String()] = name
	}
	return dir
}
