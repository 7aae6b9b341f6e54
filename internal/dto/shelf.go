package dto

import (
	"time"

	"github.com/reolmarked/shelf_market_app/internal/core/domain"
)

// CreateShelfRequest defines the data needed to register a new shelf.
type CreateShelfRequest struct {
	TypeLabel string `json:"typeLabel" binding:"required"`
}

// ShelfResponse defines the data returned for a shelf.
type ShelfResponse struct {
	ShelfID   string    `json:"shelfID"`
	TypeLabel string    `json:"typeLabel"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToShelfResponse converts a domain.Shelf to ShelfResponse DTO.
func ToShelfResponse(s *domain.Shelf) ShelfResponse {
	return ShelfResponse{
		ShelfID:   s.ShelfID,
		TypeLabel: s.TypeLabel,
		CreatedAt: s.CreatedAt,
	}
}

// ToShelfResponses converts a slice of domain.Shelf to []ShelfResponse.
func ToShelfResponses(shelves []domain.Shelf) []ShelfResponse {
	responses := make([]ShelfResponse, len(shelves))
	for i, s := range shelves {
		responses[i] = ToShelfResponse(&s)
	}
	return responses
}
