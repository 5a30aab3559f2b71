// Package entity contains the core business objects of the project.
package entity

// Ingredient is a single component of a product's default recipe.
type Ingredient struct {
	Name      string `json:"name" validate:"required"`      // Display name of the ingredient.
	Removable bool   `json:"removable"`                     // false marks mandatory components (e.g. the bun, the patty).
}

// Addon is a paid extra that can be attached to a product.
type Addon struct {
	ID    int     `json:"id" validate:"required"`    // Identifier, unique within the product.
	Name  string  `json:"name" validate:"required"`  // Display name of the addon.
	Price float64 `json:"price" validate:"gte=0"`    // Surcharge for this addon.
}

// Flavor is one of the flavors offered by a drink.
type Flavor struct {
	Name string `json:"name" validate:"required"`
}

// Size is a drink size with its own price.
type Size struct {
	Name        string  `json:"name" validate:"required"` // Display name (e.g. "Pequeno").
	VolumeLabel string  `json:"ml"`                       // Volume label (e.g. "350ml").
	Price       float64 `json:"price" validate:"gte=0"`   // Price for this size, replaces the base price.
}

// Product is an immutable catalog record. The cart never holds Products
// directly; it copies the fields it needs into a CartLineItem at add-time.
type Product struct {
	ID          int          `json:"id" validate:"required"`       // Unique identifier across the catalog.
	Name        string       `json:"name" validate:"required"`     // Display name of the product.
	Description string       `json:"description"`                  // Menu description.
	BasePrice   float64      `json:"price" validate:"gte=0"`       // Base price before addons and sizes.
	Category    string       `json:"category" validate:"required"` // Category tag (e.g. "Hambúrguer", "Bebida").
	ImageRef    string       `json:"image" validate:"required"`    // Image URI for the menu card.
	Ingredients []Ingredient `json:"ingredients" validate:"dive"`  // Default recipe, in serving order.
	Addons      []Addon      `json:"addons" validate:"dive"`       // Paid extras available for this product.
	Flavors     []Flavor     `json:"flavors,omitempty" validate:"omitempty,dive"` // Drink flavors, if any.
	Sizes       []Size       `json:"sizes,omitempty" validate:"omitempty,dive"`   // Drink sizes, if any.
}

// IngredientRemovable reports whether the named ingredient exists in the
// recipe and may be left out.
func (p *Product) IngredientRemovable(name string) bool {
	for _, ing := range p.Ingredients {
		if ing.Name == name {
			return ing.Removable
		}
	}

	return false
}

// FindAddon returns the addon with the given ID, or false when the product
// does not offer it.
func (p *Product) FindAddon(id int) (Addon, bool) {
	for _, addon := range p.Addons {
		if addon.ID == id {
			return addon, true
		}
	}

	return Addon{}, false
}

// HasFlavor reports whether the product offers the named flavor.
func (p *Product) HasFlavor(name string) bool {
	for _, flavor := range p.Flavors {
		if flavor.Name == name {
			return true
		}
	}

	return false
}

// FindSize returns the size with the given name, or false when the product
// does not offer it.
func (p *Product) FindSize(name string) (Size, bool) {
	for _, size := range p.Sizes {
		if size.Name == name {
			return size, true
		}
	}

	return Size{}, false
}
