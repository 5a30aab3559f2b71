// Package catalog provides the static product catalog, embedded into the
// binary and validated at startup.
package catalog

import (
	"encoding/json"

	_ "embed"

	"lanche/internal/domain/entity"
	"lanche/internal/domain/repository"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

//go:embed products.json
var productsJSON []byte

// catalogRepository implements the repository.CatalogRepository interface
// over the embedded product data.
type catalogRepository struct {
	products   []*entity.Product
	byID       map[int]*entity.Product
	categories []string
}

// NewCatalogRepository parses and validates the embedded catalog. Invalid
// catalog data is a build defect, so any problem fails startup.
func NewCatalogRepository() (repository.CatalogRepository, error) {
	return newFromJSON(productsJSON)
}

func newFromJSON(data []byte) (repository.CatalogRepository, error) {
	var products []*entity.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, errors.Wrap(err, "failed to parse catalog data")
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	repo := &catalogRepository{
		products: products,
		byID:     make(map[int]*entity.Product, len(products)),
	}

	seenCategories := make(map[string]bool)
	for _, product := range products {
		if err := validate.Struct(product); err != nil {
			return nil, errors.Wrapf(err, "invalid catalog product %d", product.ID)
		}

		if _, exists := repo.byID[product.ID]; exists {
			return nil, errors.Errorf("duplicate product ID %d in catalog", product.ID)
		}
		repo.byID[product.ID] = product

		if !seenCategories[product.Category] {
			seenCategories[product.Category] = true
			repo.categories = append(repo.categories, product.Category)
		}
	}

	return repo, nil
}

// ListProducts returns every product in catalog order.
func (repo *catalogRepository) ListProducts() []*entity.Product {
	return repo.products
}

// FindProductByID retrieves a product by its unique ID.
func (repo *catalogRepository) FindProductByID(id int) (*entity.Product, error) {
	product, ok := repo.byID[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}

	return product, nil
}

// ListCategories returns the category tags in order of first appearance.
func (repo *catalogRepository) ListCategories() []string {
	return repo.categories
}
