package domain

import "time"

// Tenant is a person renting shelf space and receiving monthly settlements.
type Tenant struct {
	TenantID  string    `json:"tenantID"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"` // Optional
	Email     string    `json:"email"` // Optional
	CreatedAt time.Time `json:"createdAt"`
}
