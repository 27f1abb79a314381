package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/backend/internal/logger"
	"portfolio/backend/internal/service"
	"portfolio/backend/internal/snowflake"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse keeps the access_token key clients already read.
type loginResponse struct {
	AccessToken string           `json:"access_token"`
	User        operatorResponse `json:"user"`
}

type operatorResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// RegisterPublicRoutes registers routes that don't require authentication.
func (h *AuthHandler) RegisterPublicRoutes(g *echo.Group) {
	g.POST("/auth/login", h.Login)
}

// RegisterProtectedRoutes registers routes that require authentication.
func (h *AuthHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.GET("/auth/me", h.Me)
}

// Login authenticates the operator.
// @Summary Login
// @Description Authenticate the operator and get a JWT access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body loginRequest true "Login credentials"
// @Success 200 {object} loginResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	result, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return h.handleAuthError(c, err)
	}

	return c.JSON(http.StatusOK, loginResponse{
		AccessToken: result.AccessToken,
		User:        toOperatorResponse(result.Operator),
	})
}

// Me returns the authenticated operator.
// @Summary Get current operator
// @Description Get the operator identified by the bearer token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} operatorResponse
// @Failure 401 {object} errorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	operator, ok := currentOperator(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
	}
	return c.JSON(http.StatusOK, toOperatorResponse(operator))
}

func (h *AuthHandler) handleAuthError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrCredentialsRequired):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "email and password are required"})
	case errors.Is(err, service.ErrInvalidCredentials):
		logger.Warn("login rejected", "module", "handler", "action", "login", "resource", "auth", "result", "failed", "remote_ip", c.RealIP())
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
	default:
		return writeServiceError(c, err)
	}
}

func toOperatorResponse(operator service.Operator) operatorResponse {
	return operatorResponse{
		ID:    snowflake.FormatID(operator.ID),
		Email: operator.Email,
	}
}
