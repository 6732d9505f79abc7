package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/ovenworks/bakeshop/internal/hash"
	"github.com/ovenworks/bakeshop/internal/logging"
	"github.com/ovenworks/bakeshop/internal/models"
	"github.com/ovenworks/bakeshop/internal/repo"
	"github.com/ovenworks/bakeshop/internal/tokens"
)

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
}

type AuthResult struct {
	Token string
	User  *models.User
}

func roleFor(u *models.User) string {
	if u.IsStaff {
		return "admin"
	}
	return "user"
}

func (s *AuthService) issueToken(u *models.User) (string, error) {
	return tokens.SignAccessToken(strconv.FormatUint(uint64(u.ID), 10), roleFor(u), s.JWTSecret)
}

func (s *AuthService) Register(ctx context.Context, email, password, name string) (*AuthResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: please provide both email address and password", ErrValidation)
	}

	existing, err := s.Repo.UserByEmail(ctx, email)
	if err != nil {
		l.Error("register_error", "status", 500, "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email already used", ErrConflict)
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register_error", "status", 500, "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: pwHash,
		IsActive:     true,
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: email already used", ErrConflict)
		}
		l.Error("register_error", "status", 500, "error", err)
		return nil, err
	}

	token, err := s.issueToken(&user)
	if err != nil {
		l.Error("register_error", "status", 500, "reason", "cannot sign token", "error", err)
		return nil, err
	}

	l.Info("register_successful", "user_id", user.ID)
	return &AuthResult{Token: token, User: &user}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: please provide both email address and password", ErrValidation)
	}

	user, err := s.Repo.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, repo.ErrInvalidCredentials) {
			l.Warn("login_failed", "status", 401)
			return nil, fmt.Errorf("%w: invalid credentials", ErrAuth)
		}
		l.Error("login_error", "status", 500, "error", err)
		return nil, err
	}

	if err := s.Repo.TouchLastLogin(ctx, user); err != nil {
		l.Warn("last_login_update_failed", "user_id", user.ID, "error", err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		l.Error("login_error", "status", 500, "reason", "cannot sign token", "error", err)
		return nil, err
	}

	l.Info("login_successful", "user_id", user.ID)
	return &AuthResult{Token: token, User: user}, nil
}

func (s *AuthService) UserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.Repo.UserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
	}
	return user, nil
}
