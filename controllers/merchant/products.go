package merchantControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/esc4n0rx/fomi-api/models"
)

type ProductInput struct {
	CategoryID  uint             `json:"category_id"`
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	Price       decimal.Decimal  `json:"price" binding:"required"`
	PromoPrice  *decimal.Decimal `json:"promo_price"`
	Image       string           `json:"image"`
	Available   *bool            `json:"available"`
	Featured    bool             `json:"featured"`
	Ingredients string           `json:"ingredients"`
	Allergens   string           `json:"allergens"`
}

func storeBySlug(db *gorm.DB, c *gin.Context) (*models.Store, bool) {
	var store models.Store
	if err := db.Where("slug = ?", c.Param("slug")).First(&store).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
		return nil, false
	}
	return &store, true
}

// POST /merchant/stores/:slug/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storeBySlug(db, c)
		if !ok {
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.PromoPrice != nil && !input.PromoPrice.LessThan(input.Price) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "promo_price must be lower than price"})
			return
		}

		product := models.Product{
			StoreID:     store.ID,
			CategoryID:  input.CategoryID,
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			PromoPrice:  input.PromoPrice,
			Image:       input.Image,
			Available:   input.Available == nil || *input.Available,
			Featured:    input.Featured,
			Ingredients: input.Ingredients,
			Allergens:   input.Allergens,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// PUT /merchant/stores/:slug/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storeBySlug(db, c)
		if !ok {
			return
		}

		var product models.Product
		if err := db.Where("store_id = ? AND id = ?", store.ID, c.Param("id")).First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.PromoPrice != nil && !input.PromoPrice.LessThan(input.Price) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "promo_price must be lower than price"})
			return
		}

		product.CategoryID = input.CategoryID
		product.Name = input.Name
		product.Description = input.Description
		product.Price = input.Price
		product.PromoPrice = input.PromoPrice
		product.Image = input.Image
		if input.Available != nil {
			product.Available = *input.Available
		}
		product.Featured = input.Featured
		product.Ingredients = input.Ingredients
		product.Allergens = input.Allergens

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// DELETE /merchant/stores/:slug/products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storeBySlug(db, c)
		if !ok {
			return
		}

		result := db.Where("store_id = ? AND id = ?", store.ID, c.Param("id")).Delete(&models.Product{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
