package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SelectedAddon is the snapshot of an addon taken when the item was added.
// Later catalog price changes do not affect it.
type SelectedAddon struct {
	ID    int     `json:"id"`    // Addon identifier within the product.
	Name  string  `json:"name"`  // Addon name at add-time.
	Price float64 `json:"price"` // Addon price at add-time.
}

// CartLineItem is one customized selection in the cart. Two customizations
// of the same product are always distinct line items, even when identical
// in content; CartItemID is what tells them apart.
//
// The JSON field names are the on-disk storage schema and must stay stable
// across releases; renaming one silently invalidates saved carts.
type CartLineItem struct {
	CartItemID         string          `json:"cartItemId"`               // Unique within the cart, generated at add-time, never reused.
	ProductID          int             `json:"productId"`                // Catalog back-reference, lookup only.
	Name               string          `json:"name"`                     // Product name snapshot.
	ImageRef           string          `json:"image"`                    // Product image snapshot.
	BasePrice          float64         `json:"basePrice"`                // Chosen base price (size-aware) snapshot.
	RemovedIngredients []string        `json:"removedIngredients"`       // Ingredients excluded from the default recipe.
	SelectedAddons     []SelectedAddon `json:"selectedAddons"`           // Addon snapshots chosen at add-time.
	Observation        string          `json:"observation"`              // Free-text note, unconstrained.
	FinalPrice         float64         `json:"finalPrice"`               // BasePrice + addon prices, frozen at add-time.
	Quantity           int             `json:"quantity"`                 // Always >= 1; reaching 0 removes the item.
	SelectedFlavor     string          `json:"selectedFlavor,omitempty"` // Chosen flavor, drinks only.
	SelectedSize       string          `json:"selectedSize,omitempty"`   // Chosen size name, drinks only.
}

// NewCartItemID builds a fresh cart item identifier. The product ID and
// timestamp keep it readable; the random suffix keeps two adds within the
// same millisecond distinct.
func NewCartItemID(productID int) string {
	suffix := uuid.NewString()[:8]

	return fmt.Sprintf("%d-%d-%s", productID, time.Now().UnixMilli(), suffix)
}

// LineTotal returns the price contribution of this line item.
func (item *CartLineItem) LineTotal() float64 {
	return item.FinalPrice * float64(item.Quantity)
}

// Valid reports whether the item satisfies the structural invariants the
// cart relies on. Content-level checks against the catalog happen when the
// item is built, not here.
func (item *CartLineItem) Valid() bool {
	return item.CartItemID != "" && item.Quantity >= 1 && item.FinalPrice >= 0
}
