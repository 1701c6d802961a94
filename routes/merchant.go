package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	merchantControllers "github.com/esc4n0rx/fomi-api/controllers/merchant"
	orderControllers "github.com/esc4n0rx/fomi-api/controllers/order"
	"github.com/esc4n0rx/fomi-api/middleware"
)

// SetupMerchantRoutes registers the dashboard endpoints. All of them
// require the merchant API key.
func SetupMerchantRoutes(r *gin.Engine, db *gorm.DB) {
	merchant := r.Group("/merchant")
	merchant.Use(middleware.ValidateAPIKey)
	{
		// Orders
		merchant.GET("/stores/:slug/orders", orderControllers.ListStoreOrders(db))
		merchant.GET("/stores/:slug/orders/export", orderControllers.ExportOrdersToExcel(db))
		merchant.GET("/orders/:numero", orderControllers.GetOrderByNumero(db))
		merchant.PUT("/orders/:numero/status", orderControllers.UpdateOrderStatusHandler(db))

		// Catalog management
		merchant.POST("/stores/:slug/products", merchantControllers.CreateProduct(db))
		merchant.PUT("/stores/:slug/products/:id", merchantControllers.UpdateProduct(db))
		merchant.DELETE("/stores/:slug/products/:id", merchantControllers.DeleteProduct(db))
		merchant.POST("/stores/:slug/categories", merchantControllers.CreateCategory(db))
		merchant.DELETE("/stores/:slug/categories/:id", merchantControllers.DeleteCategory(db))

		// Coupons
		merchant.POST("/stores/:slug/coupons", merchantControllers.CreateCoupon(db))
		merchant.GET("/stores/:slug/coupons", merchantControllers.ListCoupons(db))
		merchant.DELETE("/stores/:slug/coupons/:id", merchantControllers.DeleteCoupon(db))
	}
}
