package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovenworks/bakeshop/internal/tokens"
)

var testSecret = []byte("test-jwt-secret")

func newContext(t *testing.T, token string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func okNext(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestRequireLogin_ValidToken(t *testing.T) {
	t.Parallel()

	token, err := tokens.SignAccessToken("7", "user", testSecret)
	require.NoError(t, err)

	mw := &TokenMiddleware{JWTSecret: testSecret}
	c, rec := newContext(t, token)

	require.NoError(t, mw.RequireLogin(okNext)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(7), c.Get("userID"))
	assert.Equal(t, "user", c.Get("role"))
}

func TestRequireLogin_MissingToken(t *testing.T) {
	t.Parallel()

	mw := &TokenMiddleware{JWTSecret: testSecret}
	c, _ := newContext(t, "")

	err := mw.RequireLogin(okNext)(c)
	require.Error(t, err)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestRequireLogin_BadToken(t *testing.T) {
	t.Parallel()

	mw := &TokenMiddleware{JWTSecret: testSecret}
	c, _ := newContext(t, "garbage")

	err := mw.RequireLogin(okNext)(c)
	require.Error(t, err)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestAdminOnly_RejectsPlainUser(t *testing.T) {
	t.Parallel()

	token, err := tokens.SignAccessToken("7", "user", testSecret)
	require.NoError(t, err)

	mw := &TokenMiddleware{JWTSecret: testSecret}
	c, _ := newContext(t, token)

	err = mw.AdminOnly(okNext)(c)
	require.Error(t, err)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Code)
}

func TestAdminOnly_AllowsAdmin(t *testing.T) {
	t.Parallel()

	token, err := tokens.SignAccessToken("1", "admin", testSecret)
	require.NoError(t, err)

	mw := &TokenMiddleware{JWTSecret: testSecret}
	c, rec := newContext(t, token)

	require.NoError(t, mw.AdminOnly(okNext)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(1), c.Get("userID"))
	assert.Equal(t, "admin", c.Get("role"))
}
