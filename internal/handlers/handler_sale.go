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

// saleHandler handles HTTP requests related to sales.
type saleHandler struct {
	saleService portssvc.SaleSvcFacade
}

func newSaleHandler(ss portssvc.SaleSvcFacade) *saleHandler {
	return &saleHandler{saleService: ss}
}

// registerSaleRoutes registers all sale-related routes.
func registerSaleRoutes(rg *gin.RouterGroup, saleService portssvc.SaleSvcFacade) {
	h := newSaleHandler(saleService)

	sales := rg.Group("/sales")
	{
		sales.POST("", h.registerSale)
		sales.POST("/by-code", h.registerSaleByCode)
	}
}

// registerSale godoc
// @Summary Record a sale
// @Description Records a sale for a product. The commission rate of the lease agreement active on the shelf on the sale date is frozen onto the sale.
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body dto.RegisterSaleRequest true "Sale details"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "No active lease on the shelf"
// @Security BearerAuth
// @Router /sales [post]
func (h *saleHandler) registerSale(c *gin.Context) {
	var req dto.RegisterSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	sale, err := h.saleService.RegisterSale(c.Request.Context(), req)
	if err != nil {
		h.respondSaleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}

// registerSaleByCode godoc
// @Summary Record a sale by scanned product code
// @Description Resolves the product from its label code and records a sale at the product's current price, dated today.
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body dto.RegisterSaleByCodeRequest true "Scanned code"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "No active lease on the shelf"
// @Security BearerAuth
// @Router /sales/by-code [post]
func (h *saleHandler) registerSaleByCode(c *gin.Context) {
	var req dto.RegisterSaleByCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	sale, err := h.saleService.RegisterSaleByCode(c.Request.Context(), req.Code)
	if err != nil {
		h.respondSaleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}

func (h *saleHandler) respondSaleError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Product not found"})
	case errors.Is(err, apperrors.ErrNoActiveLease):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	default:
		logger.Error("Failed to record sale", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record sale"})
	}
}
