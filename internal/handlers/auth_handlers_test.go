package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ovenworks/bakeshop/internal/models"
	"github.com/ovenworks/bakeshop/internal/repo"
	"github.com/ovenworks/bakeshop/internal/service"
	"github.com/ovenworks/bakeshop/internal/transport"
)

func initTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Ingredient{},
		&models.Item{},
		&models.ItemIngredient{},
		&models.Order{},
	); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return db
}

func newAuthHandler(t *testing.T) (*AuthHandler, *repo.GormRepo) {
	t.Helper()

	r := repo.NewGormRepo(initTestDB(t))
	h := &AuthHandler{
		Svc: &service.AuthService{Repo: r, JWTSecret: []byte("test-jwt-secret")},
	}
	return h, r
}

func doJSONRequest(t *testing.T, e *echo.Echo, method, target string, body any) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec)
}

func TestRegisterHandler(t *testing.T) {
	h, _ := newAuthHandler(t)
	e := echo.New()

	payload := transport.RegisterRequest{
		Email:    "alice@example.com",
		Password: "Secret123",
		Name:     "Alice",
	}

	rec, c := doJSONRequest(t, e, http.MethodPost, "/api/v1/register", payload)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp transport.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "Alice", resp.User.Name)
	require.Equal(t, "alice@example.com", resp.User.Email)
	require.NotContains(t, rec.Body.String(), "Secret123")

	rec2, c2 := doJSONRequest(t, e, http.MethodPost, "/api/v1/register", payload)
	require.NoError(t, h.Register(c2))
	require.Equal(t, http.StatusConflict, rec2.Code)
}

func TestRegisterHandler_MissingFields(t *testing.T) {
	h, _ := newAuthHandler(t)
	e := echo.New()

	rec, c := doJSONRequest(t, e, http.MethodPost, "/api/v1/register", map[string]string{
		"email": "alice@example.com",
	})
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginHandler(t *testing.T) {
	h, _ := newAuthHandler(t)
	e := echo.New()

	register := transport.RegisterRequest{Email: "bob@example.com", Password: "Secret123", Name: "Bob"}
	rec, c := doJSONRequest(t, e, http.MethodPost, "/api/v1/register", register)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	recOK, cOK := doJSONRequest(t, e, http.MethodPost, "/api/v1/login", transport.LoginRequest{
		Email:    "bob@example.com",
		Password: "Secret123",
	})
	require.NoError(t, h.Login(cOK))
	require.Equal(t, http.StatusOK, recOK.Code)

	var resp transport.AuthResponse
	require.NoError(t, json.Unmarshal(recOK.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	recBad, cBad := doJSONRequest(t, e, http.MethodPost, "/api/v1/login", transport.LoginRequest{
		Email:    "bob@example.com",
		Password: "wrong",
	})
	require.NoError(t, h.Login(cBad))
	require.Equal(t, http.StatusUnauthorized, recBad.Code)

	recGhost, cGhost := doJSONRequest(t, e, http.MethodPost, "/api/v1/login", transport.LoginRequest{
		Email:    "ghost@example.com",
		Password: "Secret123",
	})
	require.NoError(t, h.Login(cGhost))
	require.Equal(t, http.StatusUnauthorized, recGhost.Code, "unknown email must look like a wrong password")
}

func TestMeHandler(t *testing.T) {
	h, r := newAuthHandler(t)
	e := echo.New()

	user := models.User{Name: "Carol", Email: "carol@example.com", PasswordHash: "x", IsActive: true}
	require.NoError(t, r.DB.Create(&user).Error)

	rec, c := doJSONRequest(t, e, http.MethodGet, "/api/v1/me", nil)
	c.Set("userID", user.ID)
	require.NoError(t, h.Me(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "carol@example.com", resp.Email)
	require.NotContains(t, rec.Body.String(), "password")

	recMiss, cMiss := doJSONRequest(t, e, http.MethodGet, "/api/v1/me", nil)
	cMiss.Set("userID", uint(99))
	require.NoError(t, h.Me(cMiss))
	require.Equal(t, http.StatusNotFound, recMiss.Code)
}
