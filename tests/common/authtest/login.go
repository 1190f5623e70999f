//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"event-registration/internal/handler/dto/request"
	"event-registration/internal/pkg/cookie"
	"event-registration/internal/pkg/password"
	"event-registration/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// AdminPassword is the plain password matching HashAdminPassword.
const AdminPassword = "password123"

func HashAdminPassword(t *testing.T) string {
	t.Helper()
	hash, err := password.HashPassword(AdminPassword)
	require.NoError(t, err)
	return hash
}

// LoginAdmin returns the admin token cookie set by a successful login.
func LoginAdmin(t *testing.T, router *gin.Engine, username string) *http.Cookie {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/admin/login",
		request.LoginRequest{Username: username, Password: AdminPassword}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	tokenCookie := httptest.ExtractCookie(w, cookie.AdminTokenCookieName)
	require.NotNil(t, tokenCookie, "Admin token not found in cookies")
	require.NotEmpty(t, tokenCookie.Value, "Admin token cookie is empty")

	return tokenCookie
}

func LogoutAdmin(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/admin/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
