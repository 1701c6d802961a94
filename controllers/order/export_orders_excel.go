package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/esc4n0rx/fomi-api/models"
)

// GET /merchant/stores/:slug/orders/export
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var store models.Store
		if err := db.Where("slug = ?", c.Param("slug")).First(&store).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
			return
		}

		var orders []models.Order
		if err := db.Where("store_id = ?", store.ID).Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"Numero", "Status", "Customer", "Phone", "DeliveryType", "PaymentMethod",
			"CouponCode", "Subtotal", "Discount", "DeliveryFee", "Total", "Items", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			row := sheet.AddRow()
			row.AddCell().SetValue(o.Numero)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(o.CustomerName)
			row.AddCell().SetValue(o.CustomerPhone)
			row.AddCell().SetValue(string(o.DeliveryType))
			row.AddCell().SetValue(string(o.PaymentMethod))
			row.AddCell().SetValue(o.CouponCode)
			row.AddCell().SetValue(o.Subtotal.String())
			row.AddCell().SetValue(o.Discount.String())
			row.AddCell().SetValue(o.DeliveryFee.String())
			row.AddCell().SetValue(o.Total.String())
			row.AddCell().SetValue(len(o.Items))
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=orders_"+store.Slug+".xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		}
	}
}
