package wishlist

import (
	"time"

	"github.com/noiratelier/storefront-backend/internal/product"
)

// Entry is one wishlist row. Product is attached on reads.
type Entry struct {
	ID        int              `json:"id"`
	UserID    int              `json:"userId"`
	ProductID int              `json:"productId"`
	CreatedAt time.Time        `json:"createdAt"`
	Product   *product.Product `json:"product,omitempty"`
}
