package domain

import "time"

// Shelf is a physical rental unit on which products are displayed.
type Shelf struct {
	ShelfID   string    `json:"shelfID"`
	TypeLabel string    `json:"typeLabel"` // Descriptive label, e.g. "Standard" or "Glass cabinet"
	CreatedAt time.Time `json:"createdAt"`
}
