package repo

import (
	"errors"

	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type GormRepo struct {
	DB *gorm.DB
}

func NewGormRepo(db *gorm.DB) *GormRepo {
	return &GormRepo{DB: db}
}
