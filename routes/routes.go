package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/esc4n0rx/fomi-api/cart"
	"github.com/esc4n0rx/fomi-api/checkout"
)

// SetupRoutes is the single entry-point that wires up the storefront,
// cart and merchant route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, sessions *cart.Sessions, orch *checkout.Orchestrator) {
	// Public storefront routes (no middleware)
	SetupStorefrontRoutes(r, db)

	// Session-token-protected cart and checkout routes
	SetupCartRoutes(r, db, sessions, orch)

	// API-key-protected merchant routes
	SetupMerchantRoutes(r, db)
}
