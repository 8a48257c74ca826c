// Package http provides HTTP handlers for capability catalog operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/slalombuild/capabilities/internal/capability/http/dto"
	capabilityUseCase "github.com/slalombuild/capabilities/internal/capability/usecase"
	"github.com/slalombuild/capabilities/internal/httputil"
)

// CapabilityHandler handles HTTP requests for reading the capability catalog.
type CapabilityHandler struct {
	capabilityUseCase capabilityUseCase.CapabilityUseCase
	logger            *slog.Logger
}

// NewCapabilityHandler creates a new capability handler with required dependencies.
func NewCapabilityHandler(
	capabilityUseCase capabilityUseCase.CapabilityUseCase,
	logger *slog.Logger,
) *CapabilityHandler {
	return &CapabilityHandler{
		capabilityUseCase: capabilityUseCase,
		logger:            logger,
	}
}

// ListHandler returns the full capability catalog with rosters.
// GET /capabilities - No authentication required.
// Capabilities are returned in seed order.
func (h *CapabilityHandler) ListHandler(c *gin.Context) {
	capabilities, err := h.capabilityUseCase.List(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCapabilitiesToListResponse(capabilities))
}

// GetHandler returns a single capability by name.
// GET /capabilities/:name - No authentication required.
// The name match is exact and case-sensitive.
func (h *CapabilityHandler) GetHandler(c *gin.Context) {
	capability, err := h.capabilityUseCase.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCapabilityToResponse(capability))
}
