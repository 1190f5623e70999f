package api

import (
	"errors"
	"net/http"

	reqdto "event-registration/internal/handler/dto/request"
	resdto "event-registration/internal/handler/dto/response"
	"event-registration/internal/handler/httperr"
	"event-registration/internal/pkg/config"
	"event-registration/internal/pkg/cookie"
	"event-registration/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	cookieCfg    config.CookieConfig
}

func NewAuthHandler(authCommands commands.AuthCommands, cookieCfg config.CookieConfig) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		cookieCfg:    cookieCfg,
	}
}

// @Summary Admin login
// @Description Login with the operator account; the token is also set as an HttpOnly cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, msgValidation, nil)
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, commands.ErrInvalidCredentials) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, httperr.CodeUnauthorized, msgInvalidLogin, nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, msgUnavailable, nil)
		return
	}

	cookie.SetAdminToken(c, h.cookieCfg, result.Token, result.ExpiresIn)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		Username:  result.Username,
		Token:     result.Token,
		ExpiresIn: int64(result.ExpiresIn.Seconds()),
	})
}

// @Summary Admin logout
// @Description Clears the admin cookie. Tokens are stateless, so a copied token stays valid until it expires.
// @Tags auth
// @Success 204 "No Content"
// @Router /admin/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAdminToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}
