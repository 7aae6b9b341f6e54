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

// shelfHandler handles HTTP requests related to shelves.
type shelfHandler struct {
	leaseService portssvc.LeaseSvcFacade
}

func newShelfHandler(ls portssvc.LeaseSvcFacade) *shelfHandler {
	return &shelfHandler{leaseService: ls}
}

// registerShelfRoutes registers all shelf-related routes.
func registerShelfRoutes(rg *gin.RouterGroup, leaseService portssvc.LeaseSvcFacade) {
	h := newShelfHandler(leaseService)

	shelves := rg.Group("/shelves")
	{
		shelves.POST("", h.createShelf)
		shelves.GET("", h.listShelves)
		shelves.GET("/:shelfID", h.getShelf)
	}
}

// createShelf godoc
// @Summary Register a new shelf
// @Tags shelves
// @Accept json
// @Produce json
// @Param shelf body dto.CreateShelfRequest true "Shelf details"
// @Success 201 {object} dto.ShelfResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /shelves [post]
func (h *shelfHandler) createShelf(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateShelfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	shelf, err := h.leaseService.CreateShelf(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create shelf", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create shelf"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToShelfResponse(shelf))
}

// getShelf godoc
// @Summary Get a shelf by ID
// @Tags shelves
// @Produce json
// @Param shelfID path string true "Shelf ID"
// @Success 200 {object} dto.ShelfResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /shelves/{shelfID} [get]
func (h *shelfHandler) getShelf(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shelfID := c.Param("shelfID")

	shelf, err := h.leaseService.GetShelfByID(c.Request.Context(), shelfID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Shelf not found"})
			return
		}
		logger.Error("Failed to get shelf", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve shelf"})
		return
	}

	c.JSON(http.StatusOK, dto.ToShelfResponse(shelf))
}

// listShelves godoc
// @Summary List all shelves
// @Tags shelves
// @Produce json
// @Success 200 {array} dto.ShelfResponse
// @Security BearerAuth
// @Router /shelves [get]
func (h *shelfHandler) listShelves(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	shelves, err := h.leaseService.ListShelves(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list shelves", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list shelves"})
		return
	}

	c.JSON(http.StatusOK, dto.ToShelfResponses(shelves))
}
