package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/esc4n0rx/fomi-api/cart"
	"github.com/esc4n0rx/fomi-api/models"
)

type AddItemInput struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Note      string `json:"note"`
}

type UpdateQuantityInput struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
	Note      string `json:"note"`
}

func storeBySlug(db *gorm.DB, c *gin.Context) (*models.Store, bool) {
	var store models.Store
	if err := db.Where("slug = ?", c.Param("slug")).First(&store).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch store"})
		}
		return nil, false
	}
	return &store, true
}

// cartKey scopes the session's cart to the store named in the path,
// so each storefront the shopper visits gets its own cart.
func cartKey(db *gorm.DB, c *gin.Context) (string, bool) {
	id := c.GetString("session_id")
	if id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing cart session"})
		return "", false
	}
	store, ok := storeBySlug(db, c)
	if !ok {
		return "", false
	}
	return cart.ScopedKey(id, store.ID), true
}

// GET /stores/:slug/cart
func GetCart(db *gorm.DB, sessions *cart.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, ok := cartKey(db, c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, sessions.Snapshot(key))
	}
}

// POST /stores/:slug/cart/items
func AddItem(db *gorm.DB, sessions *cart.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetString("session_id")
		if id == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing cart session"})
			return
		}
		store, ok := storeBySlug(db, c)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ? AND store_id = ?", input.ProductID, store.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist in this store"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		item, err := cart.NewLineItem(&product, store.ID, input.Quantity, input.Note)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		key := cart.ScopedKey(id, store.ID)
		c.JSON(http.StatusOK, sessions.Dispatch(key, cart.AddItem{Item: item}))
	}
}

// PATCH /stores/:slug/cart/items
func UpdateQuantity(db *gorm.DB, sessions *cart.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, ok := cartKey(db, c)
		if !ok {
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		state := sessions.Dispatch(key, cart.UpdateQuantity{
			Key:      cart.LineKey{ProductID: input.ProductID, Note: input.Note},
			Quantity: input.Quantity,
		})
		c.JSON(http.StatusOK, state)
	}
}

// DELETE /stores/:slug/cart/items/:product_id
func RemoveItem(db *gorm.DB, sessions *cart.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, ok := cartKey(db, c)
		if !ok {
			return
		}

		pid, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		// Removing an absent product is a no-op, not an error.
		c.JSON(http.StatusOK, sessions.Dispatch(key, cart.RemoveItem{ProductID: uint(pid)}))
	}
}

// DELETE /stores/:slug/cart
func ClearCart(db *gorm.DB, sessions *cart.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, ok := cartKey(db, c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, sessions.Dispatch(key, cart.ClearCart{}))
	}
}
