package usecase

import (
	"context"

	"lanche/internal/domain/entity"
)

// Customization describes how a user tailored a product before adding it
// to the cart. Everything else on the line item is snapshotted from the
// catalog product.
type Customization struct {
	RemovedIngredients []string `json:"removed_ingredients"` // Must all be removable ingredients of the product.
	AddonIDs           []int    `json:"addon_ids"`           // Must all be addons offered by the product.
	Flavor             string   `json:"flavor"`              // Required to match one of the product's flavors when set.
	Size               string   `json:"size"`                // Required to match one of the product's sizes when set.
	Observation        string   `json:"observation"`         // Free text, unconstrained.
	Quantity           int      `json:"quantity"`            // Defaults to 1 when zero.
}

// CartUsecase is the single source of truth for the shopping cart. Every
// mutation writes the full item list through to durable storage; storage
// failures are logged and swallowed, since in-memory state is primary.
//
// Remove, increment and decrement of an unknown cartItemID are silent
// no-ops: callers cannot distinguish "already removed" from "never
// existed".
type CartUsecase interface {
	// AddProduct builds a fully snapshotted line item from the catalog
	// product and the customization, then appends it to the cart.
	AddProduct(ctx context.Context, productID int, choice *Customization) (*entity.CartLineItem, error)

	// AddCustomizedItem appends an already built line item to the cart.
	// The caller is responsible for a valid, fully snapshotted item with a
	// freshly generated unique CartItemID; two customizations of the same
	// product are always distinct rows, even when identical in content.
	AddCustomizedItem(ctx context.Context, item *entity.CartLineItem) error

	// RemoveItem removes the line item with that ID, if present.
	RemoveItem(ctx context.Context, cartItemID string)

	// IncrementItem increases the item's quantity by one.
	IncrementItem(ctx context.Context, cartItemID string)

	// DecrementItem decreases the item's quantity by one; at quantity one
	// the item is removed instead.
	DecrementItem(ctx context.Context, cartItemID string)

	// Items returns a snapshot copy of the line items in insertion order.
	Items() []entity.CartLineItem

	// TotalItems is the sum of quantities, recomputed on every call.
	TotalItems() int

	// TotalPrice is the sum of finalPrice x quantity, recomputed on every
	// call.
	TotalPrice() float64
}
