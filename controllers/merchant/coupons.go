package merchantControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/esc4n0rx/fomi-api/models"
)

type CouponInput struct {
	Code      string            `json:"code" binding:"required"`
	Kind      models.CouponKind `json:"kind" binding:"required"`
	Value     decimal.Decimal   `json:"value" binding:"required"`
	Active    *bool             `json:"active"`
	ExpiresAt *time.Time        `json:"expires_at"`
}

// POST /merchant/stores/:slug/coupons
func CreateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storeBySlug(db, c)
		if !ok {
			return
		}

		var input CouponInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Kind != models.CouponKindPercent && input.Kind != models.CouponKindFixed {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "kind must be percent or fixed"})
			return
		}

		coupon := models.Coupon{
			StoreID:   store.ID,
			Code:      input.Code,
			Kind:      input.Kind,
			Value:     input.Value,
			Active:    input.Active == nil || *input.Active,
			ExpiresAt: input.ExpiresAt,
		}
		if err := db.Create(&coupon).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create coupon"})
			return
		}
		c.JSON(http.StatusCreated, coupon)
	}
}

// GET /merchant/stores/:slug/coupons
func ListCoupons(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storeBySlug(db, c)
		if !ok {
			return
		}

		var coupons []models.Coupon
		if err := db.Where("store_id = ?", store.ID).Order("id").Find(&coupons).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch coupons"})
			return
		}
		c.JSON(http.StatusOK, coupons)
	}
}

// DELETE /merchant/stores/:slug/coupons/:id
func DeleteCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storeBySlug(db, c)
		if !ok {
			return
		}

		result := db.Where("store_id = ? AND id = ?", store.ID, c.Param("id")).Delete(&models.Coupon{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete coupon"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted"})
	}
}
