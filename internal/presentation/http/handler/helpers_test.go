package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/ledger-api/internal/domain/entity"
	"github.com/sangkips/ledger-api/internal/presentation/http/middleware"
	"github.com/sangkips/ledger-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestGetActor(t *testing.T) {
	t.Run("unauthenticated", func(t *testing.T) {
		c, w := testContext()

		_, ok := GetActor(c)

		assert.False(t, ok)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("super admin", func(t *testing.T) {
		c, _ := testContext()
		id := uuid.New()
		c.Set(middleware.UserIDKey, id)
		c.Set(middleware.UserRolesKey, []string{"user", entity.RoleSuperAdmin})

		actor, ok := GetActor(c)

		require.True(t, ok)
		assert.Equal(t, id, actor.UserID)
		assert.True(t, actor.IsSuperAdmin)
	})

	t.Run("regular user", func(t *testing.T) {
		c, _ := testContext()
		c.Set(middleware.UserIDKey, uuid.New())

		actor, ok := GetActor(c)

		require.True(t, ok)
		assert.False(t, actor.IsSuperAdmin)
	})
}

func TestParseDate(t *testing.T) {
	str := func(s string) *string { return &s }

	got, err := parseDate("start_date", str("2026-03-01"))
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", got.Format("2006-01-02"))

	got, err = parseDate("start_date", str("2026-03-01T08:30:00Z"))
	require.NoError(t, err)
	assert.Equal(t, 8, got.Hour())

	got, err = parseDate("start_date", str("  "))
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = parseDate("start_date", nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = parseDate("start_date", str("01/03/2026"))
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "start_date", appErr.Errors[0].Field)
}

func TestQueryID(t *testing.T) {
	c, _ := testContext()
	id := uuid.New()
	c.Request = httptest.NewRequest(http.MethodGet, "/?customer_id="+id.String(), nil)

	got, ok := queryID(c, "customer_id")
	require.True(t, ok)
	assert.Equal(t, id, *got)

	got, ok = queryID(c, "missing")
	assert.True(t, ok)
	assert.Nil(t, got)

	c, w := testContext()
	c.Request = httptest.NewRequest(http.MethodGet, "/?customer_id=nope", nil)
	_, ok = queryID(c, "customer_id")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
