package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ovenworks/bakeshop/internal/models"
	"github.com/ovenworks/bakeshop/internal/repo"
)

func initTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Ingredient{},
		&models.Item{},
		&models.ItemIngredient{},
		&models.Order{},
	); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return db
}

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()
	return repo.NewGormRepo(initTestDB(t))
}

func floatPtr(v float64) *float64 {
	return &v
}

func createTestItem(t *testing.T, r *repo.GormRepo, name string, price float64) *models.Item {
	t.Helper()

	item := models.Item{
		Name:              name,
		AvailableQuantity: 10,
		CostPrice:         price / 2,
		SellingPrice:      price,
	}
	require.NoError(t, r.DB.Create(&item).Error)
	return &item
}
