package models

import (
	"time"
)

type User struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string     `json:"name"`
	Email        string     `gorm:"uniqueIndex;not null"     json:"email"`
	PasswordHash string     `gorm:"not null"                 json:"-"`
	IsStaff      bool       `gorm:"default:false"            json:"is_staff"`
	IsActive     bool       `gorm:"default:true"             json:"is_active"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type Ingredient struct {
	ID                uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name              string    `gorm:"not null"                 json:"name"`
	IsAvailable       bool      `gorm:"default:false"            json:"is_available"`
	AvailableQuantity float64   `gorm:"not null"                 json:"available_quantity"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type Item struct {
	ID                uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name              string           `gorm:"not null"                 json:"name"`
	AvailableQuantity int              `gorm:"default:0"                json:"available_quantity"`
	CostPrice         float64          `gorm:"not null"                 json:"cost_price"`
	SellingPrice      float64          `gorm:"not null"                 json:"selling_price"`
	Ingredients       []ItemIngredient `gorm:"foreignKey:ItemID"        json:"ingredients,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

type ItemIngredient struct {
	ID              uint        `gorm:"primaryKey;autoIncrement"       json:"id"`
	ItemID          uint        `gorm:"index;not null"                 json:"item_id"`
	IngredientID    uint        `gorm:"index;not null"                 json:"ingredient_id"`
	QuantityPercent float64     `gorm:"not null"                       json:"quantity_percent"`
	Item            *Item       `gorm:"constraint:OnDelete:CASCADE"    json:"-"`
	Ingredient      *Ingredient `gorm:"constraint:OnDelete:CASCADE"    json:"-"`
}

type Order struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"    json:"id"`
	ItemID    uint      `gorm:"index;not null"              json:"item_id"`
	UserID    uint      `gorm:"index;not null"              json:"user_id"`
	Quantity  int       `gorm:"default:1"                   json:"quantity"`
	Price     float64   `gorm:"not null"                    json:"price"`
	Item      *Item     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
