package checkoutControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/esc4n0rx/fomi-api/cart"
	"github.com/esc4n0rx/fomi-api/checkout"
	"github.com/esc4n0rx/fomi-api/models"
)

// POST /stores/:slug/checkout
func Checkout(db *gorm.DB, sessions *cart.Sessions, orch *checkout.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("session_id")
		if sessionID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing cart session"})
			return
		}

		var store models.Store
		if err := db.Where("slug = ?", c.Param("slug")).First(&store).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch store"})
			return
		}

		var draft checkout.Draft
		if err := c.ShouldBindJSON(&draft); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var coupon *models.Coupon
		if draft.CouponCode != "" {
			var found models.Coupon
			err := db.Where("store_id = ? AND code = ?", store.ID, draft.CouponCode).First(&found).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Coupon is not valid"})
					return
				}
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate coupon"})
				return
			}
			if !found.Usable(time.Now()) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Coupon is not valid"})
				return
			}
			coupon = &found
		}

		// The cart key carries the store, so a cart filled on another
		// storefront presents as empty here and fails validation.
		key := cart.ScopedKey(sessionID, store.ID)
		receipt, err := orch.Submit(c.Request.Context(), draft, sessions, key, &store, coupon)
		if err != nil {
			var vErr *checkout.ValidationError
			var sErr *checkout.SubmissionError
			switch {
			case errors.As(err, &vErr):
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": vErr.Reason, "field": vErr.Field})
			case errors.Is(err, checkout.ErrSubmitInFlight):
				c.JSON(http.StatusConflict, gin.H{"error": "A submission is already in progress"})
			case errors.As(err, &sErr):
				c.JSON(http.StatusBadGateway, gin.H{"error": "Order submission failed, please retry", "retryable": sErr.Retryable})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		c.JSON(http.StatusCreated, receipt)
	}
}
