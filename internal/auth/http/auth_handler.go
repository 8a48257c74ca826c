// Package http provides HTTP handlers and middleware for authentication.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/slalombuild/capabilities/internal/auth/http/dto"
	authUseCase "github.com/slalombuild/capabilities/internal/auth/usecase"
	apperrors "github.com/slalombuild/capabilities/internal/errors"
	"github.com/slalombuild/capabilities/internal/httputil"
	customValidation "github.com/slalombuild/capabilities/internal/validation"
)

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	authUseCase authUseCase.AuthUseCase
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler with required dependencies.
func NewAuthHandler(
	authUseCase authUseCase.AuthUseCase,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// LoginHandler authenticates a user with email and password credentials.
// POST /auth/login - No authentication required (this is the authentication endpoint).
// Returns 200 OK with a bearer access token and the user profile, or
// 401 Unauthorized on bad credentials. The error body never reveals whether
// the email or the password was wrong.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Call use case
	output, err := h.authUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Return response with token and user profile
	response := dto.LoginResponse{
		AccessToken: output.Token,
		TokenType:   "bearer",
		User:        dto.MapUserToResponse(output.User),
	}

	c.JSON(http.StatusOK, response)
}

// MeHandler returns the profile of the authenticated user.
// GET /auth/me - Requires bearer authentication.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	user, ok := GetUser(c.Request.Context())
	if !ok || user == nil {
		// Should never happen if the authentication middleware ran
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToResponse(user))
}
