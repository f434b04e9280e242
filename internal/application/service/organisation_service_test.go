package service

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/sangkips/ledger-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestExpenseObjectService(t *testing.T) {
	f := newFixture(t)
	svc := NewExpenseObjectService(f.objects)

	parent, err := svc.CreateExpenseObject(f.ctx, &ExpenseObjectInput{Name: "Materials"})
	require.NoError(t, err)
	assert.True(t, parent.IsActive)

	child, err := svc.CreateExpenseObject(f.ctx, &ExpenseObjectInput{Name: "Cement", ParentID: &parent.ID, IsActive: boolPtr(false)})
	require.NoError(t, err)

	missing := uuid.New()
	_, err = svc.CreateExpenseObject(f.ctx, &ExpenseObjectInput{Name: "Orphan", ParentID: &missing})
	assertAppError(t, err, http.StatusUnprocessableEntity)

	_, err = svc.UpdateExpenseObject(f.ctx, parent.ID, &ExpenseObjectInput{ParentID: &parent.ID})
	assertAppError(t, err, http.StatusUnprocessableEntity)

	active, err := svc.ListExpenseObjects(f.ctx, true)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	child, err = svc.UpdateExpenseObject(f.ctx, child.ID, &ExpenseObjectInput{IsActive: boolPtr(true), Code: strPtr("CEM")})
	require.NoError(t, err)
	assert.Equal(t, "Cement", child.Name)
	assert.Equal(t, "CEM", *child.Code)

	require.NoError(t, svc.DeleteExpenseObject(f.ctx, child.ID))
	assertAppError(t, svc.DeleteExpenseObject(f.ctx, child.ID), http.StatusNotFound)
}

func TestDepartmentService(t *testing.T) {
	f := newFixture(t)
	svc := NewDepartmentService(f.departments)

	site, err := svc.CreateDepartment(f.ctx, &DepartmentInput{Name: "Site"})
	require.NoError(t, err)

	_, err = svc.CreateDepartment(f.ctx, &DepartmentInput{Name: "site"})
	assertAppError(t, err, http.StatusConflict)

	_, err = svc.CreateDepartment(f.ctx, &DepartmentInput{Name: ""})
	assertAppError(t, err, http.StatusUnprocessableEntity)

	site, err = svc.UpdateDepartment(f.ctx, site.ID, &DepartmentInput{Name: "Site", Description: strPtr("Field crews")})
	require.NoError(t, err)
	assert.Equal(t, "Field crews", *site.Description)

	list, err := svc.ListDepartments(f.ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.DeleteDepartment(f.ctx, site.ID))
	_, err = svc.UpdateDepartment(f.ctx, site.ID, &DepartmentInput{Name: "Site"})
	assertAppError(t, err, http.StatusNotFound)
}

func TestEmployeeService(t *testing.T) {
	f := newFixture(t)
	svc := NewEmployeeService(f.employees, f.departments, f.users)

	user := &entity.User{Email: "lan@example.com", FirstName: "Lan", LastName: "Tran"}
	require.NoError(t, f.users.Create(f.ctx, user))
	dept := &entity.Department{Name: "Site"}
	require.NoError(t, f.departments.Create(f.ctx, dept))

	_, err := svc.CreateEmployee(f.ctx, &CreateEmployeeInput{UserID: uuid.New()})
	assertAppError(t, err, http.StatusUnprocessableEntity)

	missing := uuid.New()
	_, err = svc.CreateEmployee(f.ctx, &CreateEmployeeInput{UserID: user.ID, DepartmentID: &missing})
	assertAppError(t, err, http.StatusUnprocessableEntity)

	emp, err := svc.CreateEmployee(f.ctx, &CreateEmployeeInput{UserID: user.ID, DepartmentID: &dept.ID})
	require.NoError(t, err)
	assert.Equal(t, "Lan Tran", emp.User.FullName())
	assert.Equal(t, "Site", emp.Department.Name)

	_, err = svc.CreateEmployee(f.ctx, &CreateEmployeeInput{UserID: user.ID})
	assertAppError(t, err, http.StatusConflict)

	list, err := svc.ListEmployees(f.ctx, &dept.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
