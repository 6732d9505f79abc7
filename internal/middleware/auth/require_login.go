package auth

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ovenworks/bakeshop/internal/tokens"
)

type TokenMiddleware struct {
	JWTSecret []byte
}

func (t *TokenMiddleware) RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw, err := bearerToken(c)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
		}

		claims, err := tokens.AccessClaimsFromToken(raw, t.JWTSecret)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}

		if err := setUserContext(c, claims); err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		return next(c)
	}
}

func bearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	raw, found := strings.CutPrefix(header, "Bearer ")
	if !found || raw == "" {
		return "", echo.ErrUnauthorized
	}
	return raw, nil
}

func setUserContext(c echo.Context, claims *tokens.AccessClaims) error {
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return err
	}
	c.Set("userID", uint(id))
	c.Set("role", claims.Role)
	return nil
}
