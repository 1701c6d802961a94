package storefrontControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/esc4n0rx/fomi-api/catalog"
	"github.com/esc4n0rx/fomi-api/models"
	"github.com/esc4n0rx/fomi-api/theme"
)

// findStore resolves the :slug path param into a store record.
func findStore(db *gorm.DB, c *gin.Context) (*models.Store, bool) {
	slug := c.Param("slug")
	var store models.Store
	if err := db.Where("slug = ?", slug).First(&store).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch store"})
		}
		return nil, false
	}
	return &store, true
}

// GET /stores/:slug
func GetStore(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := findStore(db, c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"store": store,
			"theme": theme.Resolve(store.Branding),
		})
	}
}

// GET /stores/:slug/categories
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := findStore(db, c)
		if !ok {
			return
		}
		categories, err := catalog.NewService(db).Categories(store.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories", "categories": categories})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// GET /stores/:slug/products?category_id=
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := findStore(db, c)
		if !ok {
			return
		}

		var categoryID *uint
		if raw := c.Query("category_id"); raw != "" {
			cid, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			id := uint(cid)
			categoryID = &id
		}

		products, err := catalog.NewService(db).Products(store.ID, categoryID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products", "products": products})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /stores/:slug/promotions
func GetPromotions(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := findStore(db, c)
		if !ok {
			return
		}
		promotions, err := catalog.NewService(db).Promotions(store.ID, time.Now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch promotions", "promotions": promotions})
			return
		}
		c.JSON(http.StatusOK, promotions)
	}
}
