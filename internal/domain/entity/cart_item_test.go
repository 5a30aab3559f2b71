package entity

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCartItemID_EmbedsProductID(t *testing.T) {
	id := NewCartItemID(42)

	parts := strings.SplitN(id, "-", 3)
	require.Len(t, parts, 3)
	assert.Equal(t, "42", parts[0])

	_, err := strconv.ParseInt(parts[1], 10, 64)
	assert.NoError(t, err)
	assert.NotEmpty(t, parts[2])
}

func TestNewCartItemID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		id := NewCartItemID(1)
		assert.False(t, seen[id], "duplicate cart item ID %s", id)
		seen[id] = true
	}
}

func TestCartLineItem_LineTotal(t *testing.T) {
	item := &CartLineItem{FinalPrice: 15.99, Quantity: 2}

	assert.InDelta(t, 31.98, item.LineTotal(), 1e-9)
}

func TestCartLineItem_Valid(t *testing.T) {
	tests := []struct {
		name string
		item CartLineItem
		want bool
	}{
		{"ok", CartLineItem{CartItemID: "a", Quantity: 1, FinalPrice: 0}, true},
		{"missing id", CartLineItem{Quantity: 1, FinalPrice: 1}, false},
		{"zero quantity", CartLineItem{CartItemID: "a", Quantity: 0, FinalPrice: 1}, false},
		{"negative price", CartLineItem{CartItemID: "a", Quantity: 1, FinalPrice: -0.01}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.Valid())
		})
	}
}
