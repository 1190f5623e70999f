package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"event-registration/internal/handler/httperr"
	"event-registration/internal/pkg/cookie"
	"event-registration/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxOperatorKey = "operator"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAdmin accepts the admin cookie or a Bearer header, cookie first.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAdminToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				httperr.NewResponse(http.StatusUnauthorized, httperr.CodeUnauthorized, "ログインが必要です。", nil))
			return
		}

		operator, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				httperr.NewResponse(http.StatusUnauthorized, httperr.CodeUnauthorized, "認証の有効期限が切れています。再度ログインしてください。", nil))
			return
		}

		c.Set(ctxOperatorKey, operator)
		c.Next()
	}
}

func GetOperator(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxOperatorKey)
	if !exists {
		return "", false
	}
	operator, ok := v.(string)
	return operator, ok
}
