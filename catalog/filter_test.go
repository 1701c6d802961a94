package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esc4n0rx/fomi-api/models"
)

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "burger", CategoryID: 10},
		{ID: 2, Name: "fries", CategoryID: 20},
		{ID: 3, Name: "cheeseburger", CategoryID: 10},
		{ID: 4, Name: "soda", CategoryID: 30},
	}
}

func TestVisibleProductsNilSelectionReturnsAll(t *testing.T) {
	products := sampleProducts()
	got := VisibleProducts(products, nil)

	require.Len(t, got, 4)
	for i := range products {
		assert.Equal(t, products[i].ID, got[i].ID, "original ordering preserved")
	}
}

func TestVisibleProductsFiltersByCategory(t *testing.T) {
	cat := uint(10)
	got := VisibleProducts(sampleProducts(), &cat)

	require.Len(t, got, 2)
	assert.Equal(t, uint(1), got[0].ID)
	assert.Equal(t, uint(3), got[1].ID)
}

func TestVisibleProductsUnknownCategoryIsEmpty(t *testing.T) {
	cat := uint(99)
	assert.Empty(t, VisibleProducts(sampleProducts(), &cat))
}

// Switching categories re-filters against the same inputs; the earlier
// result must not leak into the next one.
func TestVisibleProductsNoStaleCaching(t *testing.T) {
	products := sampleProducts()
	first := uint(10)
	second := uint(20)

	_ = VisibleProducts(products, &first)
	got := VisibleProducts(products, &second)
	require.Len(t, got, 1)
	assert.Equal(t, uint(2), got[0].ID)
}

func TestVisibleProductsDoesNotMutateInput(t *testing.T) {
	products := sampleProducts()
	cat := uint(10)
	_ = VisibleProducts(products, &cat)
	all := VisibleProducts(products, nil)
	all[0].Name = "changed"

	assert.Equal(t, "burger", products[0].Name)
	require.Len(t, products, 4)
}
