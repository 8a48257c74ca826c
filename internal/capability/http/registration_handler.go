package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/slalombuild/capabilities/internal/auth/http"
	"github.com/slalombuild/capabilities/internal/capability/http/dto"
	capabilityUseCase "github.com/slalombuild/capabilities/internal/capability/usecase"
	apperrors "github.com/slalombuild/capabilities/internal/errors"
	"github.com/slalombuild/capabilities/internal/httputil"
	customValidation "github.com/slalombuild/capabilities/internal/validation"
)

// RegistrationHandler handles HTTP requests for capability roster changes.
type RegistrationHandler struct {
	registrationUseCase capabilityUseCase.RegistrationUseCase
	logger              *slog.Logger
}

// NewRegistrationHandler creates a new registration handler with required dependencies.
func NewRegistrationHandler(
	registrationUseCase capabilityUseCase.RegistrationUseCase,
	logger *slog.Logger,
) *RegistrationHandler {
	return &RegistrationHandler{
		registrationUseCase: registrationUseCase,
		logger:              logger,
	}
}

// RegisterHandler adds a consultant to a capability's roster.
// POST /capabilities/:name/register - Requires bearer authentication.
// Consultants may only register themselves; admins may register anyone.
// The capability is addressed by the path parameter; the body's
// capability_name is accepted without being cross-checked.
func (h *RegistrationHandler) RegisterHandler(c *gin.Context) {
	var req dto.RegisterCapabilityRequest

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

	user, ok := authHTTP.GetUser(c.Request.Context())
	if !ok || user == nil {
		// Should never happen if the authentication middleware ran
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	// Call use case
	message, err := h.registrationUseCase.Register(c.Request.Context(), c.Param("name"), req.Email, user)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}

// UnregisterHandler removes a consultant from a capability's roster.
// DELETE /capabilities/:name/unregister - Requires bearer authentication and
// the admin role, enforced by middleware.
func (h *RegistrationHandler) UnregisterHandler(c *gin.Context) {
	var req dto.UnregisterCapabilityRequest

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

	user, ok := authHTTP.GetUser(c.Request.Context())
	if !ok || user == nil {
		// Should never happen if the authentication middleware ran
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	// Call use case
	message, err := h.registrationUseCase.Unregister(c.Request.Context(), c.Param("name"), req.Email, user)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}
