package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/esc4n0rx/fomi-api/auth"
	"github.com/esc4n0rx/fomi-api/cart"
	"github.com/esc4n0rx/fomi-api/checkout"
	cartControllers "github.com/esc4n0rx/fomi-api/controllers/cart"
	checkoutControllers "github.com/esc4n0rx/fomi-api/controllers/checkout"
	"github.com/esc4n0rx/fomi-api/middleware"
)

// SetupCartRoutes registers the session cart and checkout endpoints.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB, sessions *cart.Sessions, orch *checkout.Orchestrator) {
	// Session issuance is public; everything else needs the token.
	r.POST("/cart/session", auth.CreateCartSession())

	// Carts live under the storefront path: one cart per session per
	// store, never shared across stores.
	cartGroup := r.Group("/stores/:slug/cart")
	cartGroup.Use(middleware.ValidateCartSession)
	{
		cartGroup.GET("/", cartControllers.GetCart(db, sessions))
		cartGroup.POST("/items", cartControllers.AddItem(db, sessions))
		cartGroup.PATCH("/items", cartControllers.UpdateQuantity(db, sessions))
		cartGroup.DELETE("/items/:product_id", cartControllers.RemoveItem(db, sessions))
		cartGroup.DELETE("/", cartControllers.ClearCart(db, sessions))
	}

	r.POST("/stores/:slug/checkout", middleware.ValidateCartSession, checkoutControllers.Checkout(db, sessions, orch))
}
