package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ovenworks/bakeshop/internal/logging"
	"github.com/ovenworks/bakeshop/internal/models"
	"github.com/ovenworks/bakeshop/internal/repo"
	"github.com/ovenworks/bakeshop/internal/transport"
)

type OrderService struct {
	Repo *repo.GormRepo
}

// CreateOrder snapshots the item's selling price into the order row, so later
// price changes never touch existing orders. A zero quantity is rejected the
// same way as a missing one.
func (s *OrderService) CreateOrder(ctx context.Context, userID uint, req transport.CreateOrderRequest) (*models.Order, error) {
	l := logging.FromContext(ctx).With("svc", "order.create_order", "user_id", userID)

	if req.ItemID == 0 || req.Quantity == 0 {
		return nil, fmt.Errorf("%w: no item in cart", ErrValidation)
	}
	if req.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must be >= 1", ErrValidation)
	}

	item, err := s.Repo.GetItem(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: item %d", ErrNotFound, req.ItemID)
		}
		l.Error("create_order_error", "status", 500, "error", err)
		return nil, err
	}

	order := models.Order{
		ItemID:   item.ID,
		UserID:   userID,
		Quantity: req.Quantity,
		Price:    item.SellingPrice,
	}
	if err := s.Repo.CreateOrder(ctx, &order); err != nil {
		l.Error("create_order_error", "status", 500, "error", err)
		return nil, err
	}

	l.Info("create_order_success", "order_id", order.ID, "item_id", item.ID)
	return &order, nil
}

func (s *OrderService) ListOrdersForUser(ctx context.Context, userID uint) ([]models.Order, error) {
	return s.Repo.ListOrdersForUser(ctx, userID)
}

// TrendingItem returns the item appearing in the most order rows. Ties are
// implementation-defined: whichever row the aggregation yields first wins.
func (s *OrderService) TrendingItem(ctx context.Context) (*models.Item, error) {
	item, err := s.Repo.TrendingItem(ctx)
	if err != nil {
		if errors.Is(err, repo.ErrNoOrders) {
			return nil, fmt.Errorf("%w: no orders yet", ErrEmpty)
		}
		return nil, err
	}
	return item, nil
}
