package catalog

import (
	"time"

	"gorm.io/gorm"

	"github.com/esc4n0rx/fomi-api/models"
)

// Service reads a store's catalog. Every method returns an empty slice
// alongside the error when the read fails; callers surface the error
// and render nothing, there is no retry here.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Categories returns the store's categories in display order.
func (s *Service) Categories(storeID uint) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Where("store_id = ?", storeID).Order("id").Find(&categories).Error; err != nil {
		return []models.Category{}, err
	}
	return categories, nil
}

// Products returns the store's products, optionally restricted to one
// category, in insertion order. The category restriction is applied in
// memory by VisibleProducts so the DB query stays identical whether or
// not a category is selected.
func (s *Service) Products(storeID uint, categoryID *uint) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Where("store_id = ?", storeID).Order("id").Find(&products).Error; err != nil {
		return []models.Product{}, err
	}
	return VisibleProducts(products, categoryID), nil
}

// Promotions returns the store's promotions active at the given time.
func (s *Service) Promotions(storeID uint, now time.Time) ([]models.Promotion, error) {
	var promotions []models.Promotion
	err := s.db.Preload("Product").
		Where("store_id = ? AND starts_at <= ? AND ends_at >= ?", storeID, now, now).
		Order("id").
		Find(&promotions).Error
	if err != nil {
		return []models.Promotion{}, err
	}
	return promotions, nil
}
