package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ovenworks/bakeshop/internal/models"
)

var ErrNoOrders = errors.New("no orders")

func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Create(order).Error
}

func (r *GormRepo) ListOrdersForUser(ctx context.Context, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// TrendingItem counts order rows per item (not summed quantities) and picks
// the item with the most rows. The tie-break among equal counts is whatever
// row the database returns first.
func (r *GormRepo) TrendingItem(ctx context.Context) (*models.Item, error) {
	var row struct {
		ItemID     uint
		OrderCount int64
	}

	err := r.DB.WithContext(ctx).
		Model(&models.Order{}).
		Select("item_id, COUNT(*) AS order_count").
		Group("item_id").
		Order("order_count DESC").
		Limit(1).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoOrders
		}
		return nil, err
	}

	var item models.Item
	if err := r.DB.WithContext(ctx).First(&item, row.ItemID).Error; err != nil {
		return nil, err
	}
	return &item, nil
}
