package checkoutControllers

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/esc4n0rx/fomi-api/checkout"
	"github.com/esc4n0rx/fomi-api/models"
)

// GormSubmitter persists submitted orders. It implements
// checkout.Submitter; the orchestrator never sees the database.
type GormSubmitter struct {
	db *gorm.DB
}

func NewGormSubmitter(db *gorm.DB) *GormSubmitter {
	return &GormSubmitter{db: db}
}

// generateNumero builds a unique order number, e.g. 20250901130500-1A2B3C4D.
func generateNumero() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return time.Now().Format("20060102150405") + "-" + suffix
}

// SubmitOrder creates the order with all its item snapshots in one
// transaction. Nothing is written if any part fails.
func (s *GormSubmitter) SubmitOrder(ctx context.Context, p checkout.OrderPayload) (checkout.Receipt, error) {
	items := make([]models.OrderItem, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, models.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			Note:      it.Note,
		})
	}

	order := models.Order{
		Numero:        generateNumero(),
		StoreID:       p.StoreID,
		Status:        models.OrderStatusPending,
		CustomerName:  p.CustomerName,
		CustomerPhone: p.CustomerPhone,
		DeliveryType:  p.DeliveryType,
		PaymentMethod: p.PaymentMethod,
		CouponCode:    p.CouponCode,
		Subtotal:      p.Totals.Subtotal,
		Discount:      p.Totals.Discount,
		DeliveryFee:   p.Totals.DeliveryFee,
		Total:         p.Totals.Total,
		Items:         items,
		CreatedAt:     time.Now(),
	}
	if p.Address != nil {
		order.Address = *p.Address
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&order).Error
	})
	if err != nil {
		return checkout.Receipt{}, err
	}

	return checkout.Receipt{Numero: order.Numero, Status: order.Status}, nil
}
