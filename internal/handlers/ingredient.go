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

type IngredientHandler struct {
	Svc      *service.CatalogService
	Producer *mykafka.Producer
}

func (h *IngredientHandler) ListIngredients(c echo.Context) error {
	ctx := c.Request().Context()

	ingredients, err := h.Svc.ListAvailableIngredients(ctx)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, ingredients)
}

func (h *IngredientHandler) CreateIngredient(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "ingredient_create")

	var req transport.CreateIngredientRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_ingredient_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ingredient, err := h.Svc.CreateIngredient(ctx, req)
	if err != nil {
		return errorResponse(c, err)
	}

	publish(c, h.Producer, "catalog_events", fmt.Sprint(ingredient.ID), map[string]any{
		"type":         "ingredient_created",
		"ingredientID": ingredient.ID,
		"name":         ingredient.Name,
	})

	return c.JSON(http.StatusCreated, ingredient)
}
