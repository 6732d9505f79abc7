package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ovenworks/bakeshop/internal/logging"
	"github.com/ovenworks/bakeshop/internal/mykafka"
	"github.com/ovenworks/bakeshop/internal/service"
	"github.com/ovenworks/bakeshop/internal/transport"
)

type AuthHandler struct {
	Svc      *service.AuthService
	Producer *mykafka.Producer
}

func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	res, err := h.Svc.Register(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		return errorResponse(c, err)
	}

	publish(c, h.Producer, "user_events", fmt.Sprint(res.User.ID), map[string]any{
		"type":   "user_registered",
		"userID": res.User.ID,
		"email":  res.User.Email,
	})

	return c.JSON(http.StatusCreated, transport.AuthResponse{
		Token: res.Token,
		User:  transport.PublicUser{Name: res.User.Name, Email: res.User.Email},
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	res, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		return errorResponse(c, err)
	}

	publish(c, h.Producer, "user_events", fmt.Sprint(res.User.ID), map[string]any{
		"type":   "user_logged_in",
		"userID": res.User.ID,
		"email":  res.User.Email,
	})

	return c.JSON(http.StatusOK, transport.AuthResponse{
		Token: res.Token,
		User:  transport.PublicUser{Name: res.User.Name, Email: res.User.Email},
	})
}

func (h *AuthHandler) Me(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := userIDFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	user, err := h.Svc.UserByID(ctx, userID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, user)
}
