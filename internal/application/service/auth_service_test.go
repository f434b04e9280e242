package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/sangkips/ledger-api/internal/domain/entity"
	"github.com/sangkips/ledger-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthService(t *testing.T) (*AuthService, *fakeUserRepo) {
	t.Helper()
	users := newFakeUserRepo()
	roles := &fakeRoleRepo{roles: map[string]*entity.Role{DefaultRoleName: {ID: 7, Name: DefaultRoleName}}}
	jwt := utils.NewJWTManager("test-secret", "ledger-api", time.Minute, time.Hour)
	return NewAuthService(users, roles, jwt, zap.NewNop()), users
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc, users := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, &RegisterInput{FirstName: "Lan", LastName: "Nguyen", Email: " Lan@Example.com ", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "lan@example.com", user.Email)
	assert.NotEqual(t, "secret123", user.Password)
	assert.Equal(t, []uint{7}, users.roles[user.ID])

	out, err := svc.Login(ctx, &LoginInput{Email: "lan@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
	assert.Equal(t, []string{DefaultRoleName}, out.User.GetRoleNames())

	stored, _ := users.GetByID(ctx, user.ID)
	assert.NotNil(t, stored.LastLoginAt)

	refreshed, err := svc.RefreshToken(ctx, out.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, refreshed.User.ID)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{FirstName: "A", Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &RegisterInput{FirstName: "B", Email: "A@example.com", Password: "secret123"})
	assertAppError(t, err, http.StatusConflict)
}

func TestAuthService_LoginFailures(t *testing.T) {
	svc, users := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, &RegisterInput{FirstName: "A", Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &LoginInput{Email: "a@example.com", Password: "wrong"})
	assertAppError(t, err, http.StatusUnauthorized)

	_, err = svc.Login(ctx, &LoginInput{Email: "nobody@example.com", Password: "secret123"})
	assertAppError(t, err, http.StatusUnauthorized)

	users.users[user.ID].IsActive = false
	_, err = svc.Login(ctx, &LoginInput{Email: "a@example.com", Password: "secret123"})
	assertAppError(t, err, http.StatusForbidden)
}

func TestAuthService_RefreshRejectsGarbage(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.RefreshToken(context.Background(), "not-a-token")
	assertAppError(t, err, http.StatusUnauthorized)
}

func TestAuthService_ChangePassword(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, &RegisterInput{FirstName: "A", Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, &ChangePasswordInput{UserID: user.ID, CurrentPassword: "nope", NewPassword: "next-secret"})
	assertAppError(t, err, http.StatusBadRequest)

	require.NoError(t, svc.ChangePassword(ctx, &ChangePasswordInput{UserID: user.ID, CurrentPassword: "secret123", NewPassword: "next-secret"}))

	_, err = svc.Login(ctx, &LoginInput{Email: "a@example.com", Password: "next-secret"})
	assert.NoError(t, err)
}
