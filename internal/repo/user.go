package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ovenworks/bakeshop/internal/hash"
	"github.com/ovenworks/bakeshop/internal/models"
)

// Authenticate fails closed: an unknown email, an inactive account and a
// wrong password all come back as ErrInvalidCredentials.
func (r *GormRepo) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("email = ? AND is_active = ?", email, true).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// UserByEmail ignores is_active: the duplicate-registration probe must see
// deactivated accounts too.
func (r *GormRepo) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) UserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) CreateUser(ctx context.Context, u *models.User) error {
	return r.DB.WithContext(ctx).Create(u).Error
}

func (r *GormRepo) TouchLastLogin(ctx context.Context, u *models.User) error {
	now := time.Now()
	u.LastLogin = &now
	return r.DB.WithContext(ctx).Model(u).Update("last_login", now).Error
}
