package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Product is an item stocked on a shelf. The code is the human-readable
// string printed on the product's label; it is derived from the shelf, the
// product's own identity and the price, and is assigned before the product
// is inserted, so a product is never stored without its code.
type Product struct {
	ProductID string          `json:"productID"`
	ShelfID   string          `json:"shelfID"`
	Price     decimal.Decimal `json:"price"`
	Code      string          `json:"code"`
	CreatedAt time.Time       `json:"createdAt"`
}

// BuildProductCode builds the label code for a product.
// Format: R{shelf}-P{product}-{price}, where shelf and product are the first
// 8 hex characters of the respective UUIDs and the price carries 2 decimals.
func BuildProductCode(shelfID string, productID string, price decimal.Decimal) string {
	return fmt.Sprintf("R%s-P%s-%s", shortRef(shelfID), shortRef(productID), price.StringFixed(2))
}

func shortRef(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
