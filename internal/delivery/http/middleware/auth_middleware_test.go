package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubhub/internal/domain/entity"
	mockRepo "clubhub/internal/mocks/repository"
	mockSvc "clubhub/internal/mocks/service"
)

// newAuthedContext builds an echo context for /users/:id requests with the
// authenticated user id already set, as Authenticate would leave it.
func newAuthedContext(t *testing.T, authenticatedID, paramID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/users/"+paramID, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(paramID)
	c.Set(contextKeyUserID, authenticatedID)

	return c, rec
}

func TestAuthMiddleware_RequireSelfOrRole_AllowsSelf(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockIdentityProvider(t), mockRepo.NewMockUserRepository(t))

	c, _ := newAuthedContext(t, "user-1", "user-1")
	called := false

	err := m.RequireSelfOrRole("id", entity.RoleAdmin)(func(echo.Context) error {
		called = true
		return nil
	})(c)
	require.NoError(t, err)
	assert.True(t, called)
}

func TestAuthMiddleware_RequireSelfOrRole_AllowsAdminForOtherUser(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	m := NewAuthMiddleware(mockSvc.NewMockIdentityProvider(t), userRepo)

	c, _ := newAuthedContext(t, "admin-1", "user-2")
	userRepo.EXPECT().
		FindByID(c.Request().Context(), "admin-1").
		Return(&entity.User{ID: "admin-1", Role: entity.RoleAdmin}, nil)

	called := false
	err := m.RequireSelfOrRole("id", entity.RoleAdmin)(func(echo.Context) error {
		called = true
		return nil
	})(c)
	require.NoError(t, err)
	assert.True(t, called)
}

func TestAuthMiddleware_RequireSelfOrRole_ForbidsOtherUser(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	m := NewAuthMiddleware(mockSvc.NewMockIdentityProvider(t), userRepo)

	c, rec := newAuthedContext(t, "user-1", "user-2")
	userRepo.EXPECT().
		FindByID(c.Request().Context(), "user-1").
		Return(&entity.User{ID: "user-1", Role: entity.RoleUser}, nil)

	called := false
	err := m.RequireSelfOrRole("id", entity.RoleAdmin)(func(echo.Context) error {
		called = true
		return nil
	})(c)
	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddleware_RequireSelfOrRole_ForbidsMissingIdentity(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockIdentityProvider(t), mockRepo.NewMockUserRepository(t))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/users/user-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("user-1")

	err := m.RequireSelfOrRole("id", entity.RoleAdmin)(func(echo.Context) error {
		t.Fatal("handler must not run without an authenticated user")
		return nil
	})(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
