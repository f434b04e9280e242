package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/ledger-api/internal/config"
	"github.com/sangkips/ledger-api/internal/domain/enum"
	"github.com/sangkips/ledger-api/internal/infrastructure/database"
	"github.com/sangkips/ledger-api/internal/presentation/http/handler"
	"github.com/sangkips/ledger-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) (*gin.Engine, *utils.JWTManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtManager := utils.NewJWTManager("test-secret", "ledger-test", time.Hour, 24*time.Hour)
	cfg := &config.Config{
		App:       config.AppConfig{Name: "ledger-api"},
		RateLimit: config.RateLimitConfig{Requests: 100, Duration: 60},
	}

	// Only routes rejected before reaching a service are exercised here.
	h := &Handlers{
		Project: handler.NewProjectHandler(nil),
		Planned: handler.NewExpenseHandler(nil, enum.ExpenseKindPlanned),
		Actual:  handler.NewExpenseHandler(nil, enum.ExpenseKindActual),
	}
	router := Setup(h, &Deps{JWTManager: jwtManager, Cfg: cfg, Logger: zap.NewNop()})
	return router, jwtManager
}

func bearer(t *testing.T, m *utils.JWTManager, roles, perms []string) string {
	t.Helper()
	token, err := m.GenerateAccessToken(uuid.New(), "jane@example.com", roles, perms)
	require.NoError(t, err)
	return "Bearer " + token
}

func serve(router *gin.Engine, method, path, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSetup_Health(t *testing.T) {
	router, _ := newTestRouter(t)

	w := serve(router, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ledger-api", body["service"])
}

func TestSetup_Guards(t *testing.T) {
	router, m := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		auth   string
		want   int
	}{
		{
			name:   "no token",
			method: http.MethodGet,
			path:   "/api/v1/projects",
			want:   http.StatusUnauthorized,
		},
		{
			name:   "missing permission",
			method: http.MethodGet,
			path:   "/api/v1/projects/" + uuid.NewString(),
			auth:   bearer(t, m, []string{database.RoleAccountant}, []string{database.PermViewReports}),
			want:   http.StatusForbidden,
		},
		{
			name:   "malformed project id",
			method: http.MethodGet,
			path:   "/api/v1/projects/not-a-uuid",
			auth:   bearer(t, m, []string{database.RoleUser}, []string{database.PermManageProjects}),
			want:   http.StatusBadRequest,
		},
		{
			name:   "super admin skips permission check",
			method: http.MethodGet,
			path:   "/api/v1/projects/not-a-uuid",
			auth:   bearer(t, m, []string{database.RoleSuperAdmin}, nil),
			want:   http.StatusBadRequest,
		},
		{
			name:   "approve needs approve permission",
			method: http.MethodPost,
			path:   "/api/v1/expenses/" + uuid.NewString() + "/approve",
			auth:   bearer(t, m, []string{database.RoleUser}, []string{database.PermManageExpenses}),
			want:   http.StatusForbidden,
		},
		{
			name:   "approve with malformed expense id",
			method: http.MethodPost,
			path:   "/api/v1/expense-quotes/bad/approve",
			auth:   bearer(t, m, []string{database.RoleAccountant}, []string{database.PermApproveExpenses}),
			want:   http.StatusBadRequest,
		},
		{
			name:   "unknown route",
			method: http.MethodGet,
			path:   "/api/v1/nowhere",
			auth:   bearer(t, m, []string{database.RoleUser}, nil),
			want:   http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(router, tt.method, tt.path, tt.auth)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
