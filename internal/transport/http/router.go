package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/ovenworks/bakeshop/internal/handlers"
	"github.com/ovenworks/bakeshop/internal/middleware/auth"
)

type Deps struct {
	AuthHandler       *handlers.AuthHandler
	IngredientHandler *handlers.IngredientHandler
	ItemHandler       *handlers.ItemHandler
	OrderHandler      *handlers.OrderHandler
	SearchHandler     *handlers.SearchHandler
	Tokens            *auth.TokenMiddleware
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	v1 := e.Group("/api/v1")

	v1.POST("/register", d.AuthHandler.Register)
	v1.POST("/login", d.AuthHandler.Login)

	admin := v1.Group("", d.Tokens.AdminOnly)

	admin.GET("/ingredients", d.IngredientHandler.ListIngredients)
	admin.POST("/ingredients", d.IngredientHandler.CreateIngredient)
	admin.POST("/items", d.ItemHandler.CreateItem)

	authed := v1.Group("", d.Tokens.RequireLogin)

	authed.GET("/me", d.AuthHandler.Me)
	authed.GET("/items", d.ItemHandler.ListItems)
	authed.GET("/items/trending", d.ItemHandler.GetTrendingItem)
	authed.GET("/items/:id", d.ItemHandler.GetItem)
	authed.GET("/orders", d.OrderHandler.ListOrders)
	authed.POST("/orders", d.OrderHandler.CreateOrder)
	authed.GET("/search", d.SearchHandler.Search)
}
