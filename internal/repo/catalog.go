package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ovenworks/bakeshop/internal/models"
)

var ErrIngredientNotFound = errors.New("ingredient not found")

type RecipeLink struct {
	IngredientID    uint
	QuantityPercent float64
}

func (r *GormRepo) ListAvailableIngredients(ctx context.Context) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	err := r.DB.WithContext(ctx).
		Where("is_available = ? AND available_quantity > 0", true).
		Find(&ingredients).Error
	if err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *GormRepo) CreateIngredient(ctx context.Context, ingredient *models.Ingredient) error {
	return r.DB.WithContext(ctx).Create(ingredient).Error
}

func (r *GormRepo) ListAvailableItems(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	err := r.DB.WithContext(ctx).
		Where("available_quantity > 0").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetItem(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	if err := r.DB.WithContext(ctx).Preload("Ingredients").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateItemWithRecipe persists the item and then attaches recipe links in
// request order, keeping a running percentage total. The link that pushes the
// total past 100 is dropped and no further links are attached; the links
// persisted before it stay. The whole write runs in one transaction so a
// failure partway never leaves a half-written recipe.
func (r *GormRepo) CreateItemWithRecipe(ctx context.Context, item *models.Item, links []RecipeLink) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(item).Error; err != nil {
			return err
		}

		totalPercent := 0.0
		for _, link := range links {
			var ingredient models.Ingredient
			if err := tx.First(&ingredient, link.IngredientID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrIngredientNotFound
				}
				return err
			}

			totalPercent += link.QuantityPercent
			if totalPercent > 100 {
				break
			}

			row := models.ItemIngredient{
				ItemID:          item.ID,
				IngredientID:    ingredient.ID,
				QuantityPercent: link.QuantityPercent,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		return tx.Preload("Ingredients").First(item, item.ID).Error
	})
}
