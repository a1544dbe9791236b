package api

import (
	"errors"
	"net/http"

	reqdto "phantom-mask/internal/handler/dto/request"
	resdto "phantom-mask/internal/handler/dto/response"
	"phantom-mask/internal/handler/httperr"
	"phantom-mask/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds commands.AuthCommands
}

func NewAuthHandler(cmds commands.AuthCommands) *AuthHandler {
	return &AuthHandler{cmds: cmds}
}

// @Summary Register
// @Description Create an account after solving a captcha and receive a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.TokenResponse
// @Failure 400 {object} httperr.Response
// @Router /register/ [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}

	pair, err := h.cmds.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidRegistration),
			errors.Is(err, commands.ErrDuplicateEmail),
			errors.Is(err, commands.ErrInvalidCaptcha),
			errors.Is(err, commands.ErrInvalidCaptchaHashKey):
			httperr.AbortWithDetail(c, http.StatusBadRequest, err, "Registration failed")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromTokenPair(pair))
}

// @Summary Login
// @Description Login with email, password and a solved captcha
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.TokenResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /login/ [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}

	pair, err := h.cmds.Login(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCaptcha),
			errors.Is(err, commands.ErrInvalidCaptchaHashKey),
			errors.Is(err, commands.ErrInvalidCredentials),
			errors.Is(err, commands.ErrAuthenticationFailed):
			httperr.AbortWithDetail(c, http.StatusUnauthorized, err, "Authentication failed")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromTokenPair(pair))
}

// @Summary Refresh token
// @Description Exchange a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest true "Refresh request"
// @Success 200 {object} resdto.TokenResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /token/refresh/ [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req reqdto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}

	pair, err := h.cmds.RefreshToken(c.Request.Context(), req.Refresh)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrTokenValidation),
			errors.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Token is invalid or expired", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromTokenPair(pair))
}
