package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/ovenworks/bakeshop/internal/logging"
	"github.com/ovenworks/bakeshop/internal/mykafka"
	"github.com/ovenworks/bakeshop/internal/service"
	"github.com/ovenworks/bakeshop/internal/service/search"
	"github.com/ovenworks/bakeshop/internal/transport"
)

type ItemHandler struct {
	Svc      *service.CatalogService
	Orders   *service.OrderService
	Producer *mykafka.Producer
	ES       *elasticsearch.Client
	Index    string
}

func (h *ItemHandler) ListItems(c echo.Context) error {
	ctx := c.Request().Context()

	items, err := h.Svc.ListAvailableItems(ctx)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) GetItem(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
	}

	item, err := h.Svc.GetItem(ctx, uint(id))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) CreateItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "item_create")

	var req transport.CreateItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_item_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	item, err := h.Svc.CreateItemWithIngredients(ctx, req)
	if err != nil {
		return errorResponse(c, err)
	}

	if h.ES != nil {
		if err := search.IndexItem(ctx, h.ES, h.Index, item); err != nil {
			l.Error("es index error", "item_id", item.ID, "error", err)
		}
	}

	publish(c, h.Producer, "catalog_events", fmt.Sprint(item.ID), map[string]any{
		"type":   "item_created",
		"itemID": item.ID,
		"name":   item.Name,
	})

	return c.JSON(http.StatusCreated, item)
}

func (h *ItemHandler) GetTrendingItem(c echo.Context) error {
	ctx := c.Request().Context()

	item, err := h.Orders.TrendingItem(ctx)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, item)
}
