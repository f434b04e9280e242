package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sangkips/ledger-api/internal/domain/entity"
	"github.com/sangkips/ledger-api/internal/domain/enum"
	"github.com/sangkips/ledger-api/internal/domain/repository"
	"github.com/sangkips/ledger-api/pkg/pagination"
)

var errStore = errors.New("store unavailable")

// --- users / roles ---

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
	roles map[uuid.UUID][]uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*entity.User{}, roles: map[uuid.UUID][]uint{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetWithRoles(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u, err := r.GetByID(ctx, id)
	if u == nil || err != nil {
		return u, err
	}
	for _, roleID := range r.roles[id] {
		u.Roles = append(u.Roles, entity.Role{ID: roleID, Name: DefaultRoleName, Permissions: []entity.Permission{{Name: "view-reports"}}})
	}
	return u, nil
}

func (r *fakeUserRepo) AssignRole(_ context.Context, userID uuid.UUID, roleID uint) error {
	r.roles[userID] = append(r.roles[userID], roleID)
	return nil
}

type fakeRoleRepo struct {
	roles map[string]*entity.Role
}

func (r *fakeRoleRepo) GetByName(_ context.Context, name string) (*entity.Role, error) {
	return r.roles[name], nil
}

// --- customers / projects ---

type fakeCustomerRepo struct {
	items map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{items: map[uuid.UUID]*entity.Customer{}}
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) GetByEmail(_ context.Context, userID uuid.UUID, email string) (*entity.Customer, error) {
	for _, c := range r.items {
		if c.UserID == userID && c.Email != nil && strings.EqualFold(*c.Email, email) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *fakeCustomerRepo) List(_ context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string, skip bool) ([]entity.Customer, int64, error) {
	var out []entity.Customer
	for _, c := range r.items {
		if !skip && c.UserID != userID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(search)) {
			continue
		}
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

type fakeProjectRepo struct {
	items map[uuid.UUID]*entity.Project
	err   error
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{items: map[uuid.UUID]*entity.Project{}}
}

func (r *fakeProjectRepo) Create(_ context.Context, p *entity.Project) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeProjectRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Project, error) {
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProjectRepo) GetByCode(_ context.Context, code string) (*entity.Project, error) {
	for _, p := range r.items {
		if p.Code == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProjectRepo) Update(_ context.Context, p *entity.Project) error {
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeProjectRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *fakeProjectRepo) List(_ context.Context, params *repository.ProjectFilterParams) ([]entity.Project, int64, error) {
	var out []entity.Project
	for _, p := range r.items {
		if params.OwnerID != nil && p.OwnerID != *params.OwnerID {
			continue
		}
		if params.Status != nil && p.Status != *params.Status {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

// --- quotes / invoices ---

type fakeQuoteRepo struct {
	items map[uuid.UUID]*entity.Quote
	seq   int64
	err   error
	// taken makes the next Create calls lose their number to another writer
	taken int
}

func newFakeQuoteRepo() *fakeQuoteRepo {
	return &fakeQuoteRepo{items: map[uuid.UUID]*entity.Quote{}}
}

func (r *fakeQuoteRepo) Create(_ context.Context, q *entity.Quote) error {
	if r.taken > 0 {
		r.taken--
		r.seq++
		return repository.ErrDuplicateNumber
	}
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	r.seq++
	cp := *q
	r.items[q.ID] = &cp
	return nil
}

func (r *fakeQuoteRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Quote, error) {
	q, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

func (r *fakeQuoteRepo) Update(_ context.Context, q *entity.Quote) error {
	cp := *q
	r.items[q.ID] = &cp
	return nil
}

func (r *fakeQuoteRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *fakeQuoteRepo) ListByProject(_ context.Context, projectID uuid.UUID, status *enum.QuoteStatus) ([]entity.Quote, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []entity.Quote
	for _, q := range r.items {
		if q.ProjectID == projectID && (status == nil || q.Status == *status) {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (r *fakeQuoteRepo) UpdateStatus(_ context.Context, id uuid.UUID, status enum.QuoteStatus) error {
	r.items[id].Status = status
	return nil
}

func (r *fakeQuoteRepo) GetNextNumber(context.Context) (int64, error) {
	return r.seq + 1, nil
}

type fakeInvoiceRepo struct {
	items map[uuid.UUID]*entity.Invoice
	seq   int64
	taken int
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{items: map[uuid.UUID]*entity.Invoice{}}
}

func (r *fakeInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	if r.taken > 0 {
		r.taken--
		r.seq++
		return repository.ErrDuplicateNumber
	}
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	r.seq++
	cp := *inv
	r.items[inv.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Invoice, error) {
	inv, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *fakeInvoiceRepo) Update(_ context.Context, inv *entity.Invoice) error {
	cp := *inv
	r.items[inv.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *fakeInvoiceRepo) ListByProject(_ context.Context, projectID uuid.UUID, status *enum.InvoiceStatus) ([]entity.Invoice, error) {
	var out []entity.Invoice
	for _, inv := range r.items {
		if inv.ProjectID == projectID && (status == nil || inv.Status == *status) {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) UpdateStatus(_ context.Context, id uuid.UUID, status enum.InvoiceStatus, payment enum.PaymentStatus) error {
	r.items[id].Status = status
	r.items[id].PaymentStatus = payment
	return nil
}

func (r *fakeInvoiceRepo) GetNextNumber(context.Context) (int64, error) {
	return r.seq + 1, nil
}

// --- expenses and organisation ---

type fakeExpenseRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*entity.ProjectExpense
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{items: map[uuid.UUID]*entity.ProjectExpense{}}
}

func (r *fakeExpenseRepo) Create(_ context.Context, e *entity.ProjectExpense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	cp := *e
	r.items[e.ID] = &cp
	return nil
}

func (r *fakeExpenseRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.ProjectExpense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeExpenseRepo) Update(_ context.Context, e *entity.ProjectExpense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *e
	r.items[e.ID] = &cp
	return nil
}

func (r *fakeExpenseRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *fakeExpenseRepo) ListByProject(_ context.Context, projectID uuid.UUID, kind enum.ExpenseKind, status *enum.ExpenseStatus) ([]entity.ProjectExpense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.ProjectExpense
	for _, e := range r.items {
		if e.ProjectID == projectID && e.Kind == kind && (status == nil || e.Status == *status) {
			out = append(out, *e)
		}
	}
	return out, nil
}

type fakeObjectRepo struct {
	items map[uuid.UUID]*entity.ExpenseObject
}

func newFakeObjectRepo() *fakeObjectRepo {
	return &fakeObjectRepo{items: map[uuid.UUID]*entity.ExpenseObject{}}
}

func (r *fakeObjectRepo) Create(_ context.Context, o *entity.ExpenseObject) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	cp := *o
	r.items[o.ID] = &cp
	return nil
}

func (r *fakeObjectRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.ExpenseObject, error) {
	o, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeObjectRepo) Update(_ context.Context, o *entity.ExpenseObject) error {
	cp := *o
	r.items[o.ID] = &cp
	return nil
}

func (r *fakeObjectRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *fakeObjectRepo) List(_ context.Context, activeOnly bool) ([]entity.ExpenseObject, error) {
	var out []entity.ExpenseObject
	for _, o := range r.items {
		if !activeOnly || o.IsActive {
			out = append(out, *o)
		}
	}
	return out, nil
}

type fakeDepartmentRepo struct {
	items map[uuid.UUID]*entity.Department
}

func newFakeDepartmentRepo() *fakeDepartmentRepo {
	return &fakeDepartmentRepo{items: map[uuid.UUID]*entity.Department{}}
}

func (r *fakeDepartmentRepo) Create(_ context.Context, d *entity.Department) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	cp := *d
	r.items[d.ID] = &cp
	return nil
}

func (r *fakeDepartmentRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Department, error) {
	d, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *fakeDepartmentRepo) GetByName(_ context.Context, name string) (*entity.Department, error) {
	for _, d := range r.items {
		if strings.EqualFold(d.Name, name) {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeDepartmentRepo) Update(_ context.Context, d *entity.Department) error {
	cp := *d
	r.items[d.ID] = &cp
	return nil
}

func (r *fakeDepartmentRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *fakeDepartmentRepo) List(context.Context) ([]entity.Department, error) {
	var out []entity.Department
	for _, d := range r.items {
		out = append(out, *d)
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	items map[uuid.UUID]*entity.Employee
	names map[uuid.UUID]string
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{items: map[uuid.UUID]*entity.Employee{}, names: map[uuid.UUID]string{}}
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e *entity.Employee) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	cp := *e
	r.items[e.ID] = &cp
	return nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Employee, error) {
	e, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEmployeeRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*entity.Employee, error) {
	for _, e := range r.items {
		if e.UserID == userID {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) List(_ context.Context, departmentID *uuid.UUID) ([]entity.Employee, error) {
	var out []entity.Employee
	for _, e := range r.items {
		if departmentID == nil || (e.DepartmentID != nil && *e.DepartmentID == *departmentID) {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) NameMap(context.Context) (map[uuid.UUID]string, error) {
	return r.names, nil
}
