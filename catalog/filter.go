package catalog

import "github.com/esc4n0rx/fomi-api/models"

// VisibleProducts filters a product list down to one category. A nil
// selection means no filtering. Relative ordering is always preserved
// and the inputs are never mutated.
func VisibleProducts(products []models.Product, selectedCategoryID *uint) []models.Product {
	if selectedCategoryID == nil {
		out := make([]models.Product, len(products))
		copy(out, products)
		return out
	}
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.CategoryID == *selectedCategoryID {
			out = append(out, p)
		}
	}
	return out
}
