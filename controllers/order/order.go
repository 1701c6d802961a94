package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/esc4n0rx/fomi-api/models"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

// UpdateOrderStatus moves an order one step along its lifecycle. The
// transition is validated locally before anything is written; an
// illegal edge is rejected with 409 and never reaches the database.
func UpdateOrderStatus(db *gorm.DB, numero string, status string) (*models.Order, error) {
	newStatus, err := models.ParseOrderStatus(status)
	if err != nil {
		return nil, err
	}

	var order models.Order
	if err := db.Preload("Items").Where("numero = ?", numero).First(&order).Error; err != nil {
		return nil, err
	}

	if err := order.Transition(newStatus, time.Now()); err != nil {
		return nil, err
	}

	if err := db.Save(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// GET /merchant/stores/:slug/orders
func ListStoreOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var store models.Store
		if err := db.Where("slug = ?", c.Param("slug")).First(&store).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
			return
		}

		query := db.Where("store_id = ?", store.ID).Preload("Items").Order("created_at DESC")
		if status := c.Query("status"); status != "" {
			parsed, err := models.ParseOrderStatus(status)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			query = query.Where("status = ?", parsed)
		}

		var orders []models.Order
		if err := query.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /merchant/orders/:numero
func GetOrderByNumero(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		numero := c.Param("numero")
		var order models.Order
		if err := db.Preload("Items").Where("numero = ?", numero).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /merchant/orders/:numero/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		numero := c.Param("numero")
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := UpdateOrderStatus(db, numero, req.Status)
		if err != nil {
			var stateErr *models.StateError
			switch {
			case errors.As(err, &stateErr):
				c.JSON(http.StatusConflict, gin.H{"error": stateErr.Error()})
			case errors.Is(err, gorm.ErrRecordNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
