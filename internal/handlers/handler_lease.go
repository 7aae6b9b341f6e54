package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reolmarked/shelf_market_app/internal/apperrors"
	portssvc "github.com/reolmarked/shelf_market_app/internal/core/ports/services"
	"github.com/reolmarked/shelf_market_app/internal/dto"
	"github.com/reolmarked/shelf_market_app/internal/middleware"
)

// leaseHandler handles HTTP requests related to lease agreements.
type leaseHandler struct {
	leaseService portssvc.LeaseSvcFacade
}

func newLeaseHandler(ls portssvc.LeaseSvcFacade) *leaseHandler {
	return &leaseHandler{leaseService: ls}
}

// registerLeaseRoutes registers all lease agreement routes. Agreements are
// write-once; there is no update or delete route.
func registerLeaseRoutes(rg *gin.RouterGroup, leaseService portssvc.LeaseSvcFacade) {
	h := newLeaseHandler(leaseService)

	leases := rg.Group("/leases")
	{
		leases.POST("", h.createLeaseAgreement)
	}
}

// createLeaseAgreement godoc
// @Summary Create a lease agreement
// @Description Binds a tenant to a shelf for a date interval. Rejected with 409 when the interval overlaps an existing agreement on the same shelf.
// @Tags leases
// @Accept json
// @Produce json
// @Param lease body dto.CreateLeaseAgreementRequest true "Agreement details"
// @Success 201 {object} dto.LeaseAgreementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Overlapping agreement"
// @Security BearerAuth
// @Router /leases [post]
func (h *leaseHandler) createLeaseAgreement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLeaseAgreementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	agreement, err := h.leaseService.CreateLeaseAgreement(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Tenant or shelf not found"})
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to create lease agreement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create lease agreement"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToLeaseAgreementResponse(agreement))
}
