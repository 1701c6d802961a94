package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	storefrontControllers "github.com/esc4n0rx/fomi-api/controllers/storefront"
)

// SetupStorefrontRoutes registers the public "/stores/:slug/*" endpoints.
func SetupStorefrontRoutes(r *gin.Engine, db *gorm.DB) {
	stores := r.Group("/stores")
	{
		stores.GET("/:slug", storefrontControllers.GetStore(db))
		stores.GET("/:slug/categories", storefrontControllers.GetCategories(db))
		stores.GET("/:slug/products", storefrontControllers.GetProducts(db))
		stores.GET("/:slug/promotions", storefrontControllers.GetPromotions(db))
	}
}
