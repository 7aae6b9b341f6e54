package dto

import (
	"time"

	"github.com/reolmarked/shelf_market_app/internal/core/domain"
)

// CreateTenantRequest defines the data needed to register a new tenant.
type CreateTenantRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"` // Optional
	Email string `json:"email" binding:"omitempty,email"`
}

// TenantResponse defines the data returned for a tenant.
type TenantResponse struct {
	TenantID  string    `json:"tenantID"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToTenantResponse converts a domain.Tenant to TenantResponse DTO.
func ToTenantResponse(t *domain.Tenant) TenantResponse {
	return TenantResponse{
		TenantID:  t.TenantID,
		Name:      t.Name,
		Phone:     t.Phone,
		Email:     t.Email,
		CreatedAt: t.CreatedAt,
	}
}

// ToTenantResponses converts a slice of domain.Tenant to []TenantResponse.
func ToTenantResponses(tenants []domain.Tenant) []TenantResponse {
	responses := make([]TenantResponse, len(tenants))
	for i, t := range tenants {
		responses[i] = ToTenantResponse(&t)
	}
	return responses
}
