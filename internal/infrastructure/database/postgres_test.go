package database

import (
	"testing"

	"github.com/sangkips/ledger-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestPick(t *testing.T) {
	perms := []entity.Permission{
		{ID: 1, Name: PermManageQuotes},
		{ID: 2, Name: PermViewReports},
		{ID: 3, Name: PermApproveExpenses},
	}

	assert.Len(t, pick(perms, nil), 3)

	got := pick(perms, []string{PermViewReports, "unknown"})
	assert.Len(t, got, 1)
	assert.Equal(t, uint(2), got[0].ID)
}

func TestRolePermissions_ReferenceKnownPermissions(t *testing.T) {
	known := make(map[string]bool)
	for _, p := range allPermissions {
		known[p] = true
	}
	for role, grants := range rolePermissions {
		for _, g := range grants {
			assert.True(t, known[g], "role %s grants unknown permission %s", role, g)
		}
	}
	assert.NotContains(t, rolePermissions[RoleUser], PermApproveExpenses)
}
