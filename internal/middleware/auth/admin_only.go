package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ovenworks/bakeshop/internal/tokens"
)

func (t *TokenMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw, err := bearerToken(c)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
		}

		claims, err := tokens.AccessClaimsFromToken(raw, t.JWTSecret)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}

		if claims.Role != "admin" {
			return echo.NewHTTPError(http.StatusForbidden, "not enough rights")
		}

		if err := setUserContext(c, claims); err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		return next(c)
	}
}
