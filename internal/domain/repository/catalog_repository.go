// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"lanche/internal/domain/entity"
	"lanche/internal/errors"
)

// ErrProductNotFound is returned when a product is not in the catalog.
var ErrProductNotFound = errors.New("product not found")

// CatalogRepository exposes the static product catalog. The catalog is
// immutable and fully in memory, so the lookups take no context.
type CatalogRepository interface {
	// ListProducts returns every product in catalog order.
	ListProducts() []*entity.Product

	// FindProductByID retrieves a product by its unique ID.
	FindProductByID(id int) (*entity.Product, error)

	// ListCategories returns the category tags in order of first appearance.
	ListCategories() []string
}
