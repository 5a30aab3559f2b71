package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testProduct() *Product {
	return &Product{
		ID:        7,
		Name:      "Milk-shake",
		BasePrice: 11.99,
		Ingredients: []Ingredient{
			{Name: "Sorvete", Removable: false},
			{Name: "Chantilly", Removable: true},
		},
		Addons: []Addon{
			{ID: 1, Name: "Cobertura extra", Price: 2},
		},
		Flavors: []Flavor{{Name: "Chocolate"}},
		Sizes: []Size{
			{Name: "Pequeno", VolumeLabel: "300ml", Price: 11.99},
			{Name: "Grande", VolumeLabel: "500ml", Price: 15.99},
		},
	}
}

func TestProduct_IngredientRemovable(t *testing.T) {
	p := testProduct()

	assert.True(t, p.IngredientRemovable("Chantilly"))
	assert.False(t, p.IngredientRemovable("Sorvete"))
	assert.False(t, p.IngredientRemovable("Canela"))
}

func TestProduct_FindAddon(t *testing.T) {
	p := testProduct()

	addon, ok := p.FindAddon(1)
	assert.True(t, ok)
	assert.Equal(t, "Cobertura extra", addon.Name)

	_, ok = p.FindAddon(99)
	assert.False(t, ok)
}

func TestProduct_HasFlavor(t *testing.T) {
	p := testProduct()

	assert.True(t, p.HasFlavor("Chocolate"))
	assert.False(t, p.HasFlavor("Morango"))
}

func TestProduct_FindSize(t *testing.T) {
	p := testProduct()

	size, ok := p.FindSize("Grande")
	assert.True(t, ok)
	assert.InDelta(t, 15.99, size.Price, 1e-9)

	_, ok = p.FindSize("Gigante")
	assert.False(t, ok)
}
