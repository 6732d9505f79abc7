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

type CatalogService struct {
	Repo *repo.GormRepo
}

func (s *CatalogService) ListAvailableIngredients(ctx context.Context) ([]models.Ingredient, error) {
	return s.Repo.ListAvailableIngredients(ctx)
}

func (s *CatalogService) CreateIngredient(ctx context.Context, req transport.CreateIngredientRequest) (*models.Ingredient, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if req.AvailableQuantity == nil {
		return nil, fmt.Errorf("%w: available_quantity is required", ErrValidation)
	}
	if *req.AvailableQuantity < 0 {
		return nil, fmt.Errorf("%w: available_quantity must be >= 0", ErrValidation)
	}

	ingredient := models.Ingredient{
		Name:              req.Name,
		IsAvailable:       req.IsAvailable,
		AvailableQuantity: *req.AvailableQuantity,
	}
	if err := s.Repo.CreateIngredient(ctx, &ingredient); err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (s *CatalogService) ListAvailableItems(ctx context.Context) ([]models.Item, error) {
	return s.Repo.ListAvailableItems(ctx)
}

func (s *CatalogService) GetItem(ctx context.Context, id uint) (*models.Item, error) {
	item, err := s.Repo.GetItem(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: item %d", ErrNotFound, id)
		}
		return nil, err
	}
	return item, nil
}

// CreateItemWithIngredients validates and persists the item, then attaches
// the supplied recipe links. Links past the 100% running total are dropped
// without an error; the call still reports the item as created.
func (s *CatalogService) CreateItemWithIngredients(ctx context.Context, req transport.CreateItemRequest) (*models.Item, error) {
	l := logging.FromContext(ctx).With("svc", "catalog.create_item")

	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if req.CostPrice == nil || req.SellingPrice == nil {
		return nil, fmt.Errorf("%w: cost_price and selling_price are required", ErrValidation)
	}
	if *req.CostPrice < 0 || *req.SellingPrice < 0 {
		return nil, fmt.Errorf("%w: prices must be >= 0", ErrValidation)
	}

	links := make([]repo.RecipeLink, 0, len(req.Ingredients))
	for _, link := range req.Ingredients {
		if link.IngredientID == 0 || link.QuantityPercent == nil {
			return nil, fmt.Errorf("%w: ingredient and quantity_percent are required", ErrValidation)
		}
		if *link.QuantityPercent < 0 || *link.QuantityPercent > 100 {
			return nil, fmt.Errorf("%w: quantity_percent must be between 0 and 100", ErrValidation)
		}
		links = append(links, repo.RecipeLink{
			IngredientID:    link.IngredientID,
			QuantityPercent: *link.QuantityPercent,
		})
	}

	item := models.Item{
		Name:              req.Name,
		AvailableQuantity: req.AvailableQuantity,
		CostPrice:         *req.CostPrice,
		SellingPrice:      *req.SellingPrice,
	}
	if err := s.Repo.CreateItemWithRecipe(ctx, &item, links); err != nil {
		if errors.Is(err, repo.ErrIngredientNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		l.Error("create_item_error", "status", 500, "error", err)
		return nil, err
	}

	if len(item.Ingredients) < len(links) {
		l.Warn("recipe_links_dropped",
			"item_id", item.ID,
			"requested", len(links),
			"attached", len(item.Ingredients))
	}

	return &item, nil
}
