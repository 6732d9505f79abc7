package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ovenworks/bakeshop/internal/config"
	"github.com/ovenworks/bakeshop/internal/es"
	"github.com/ovenworks/bakeshop/internal/handlers"
	"github.com/ovenworks/bakeshop/internal/logging"
	authmw "github.com/ovenworks/bakeshop/internal/middleware/auth"
	"github.com/ovenworks/bakeshop/internal/mykafka"
	"github.com/ovenworks/bakeshop/internal/repo"
	"github.com/ovenworks/bakeshop/internal/service"
	httpserver "github.com/ovenworks/bakeshop/internal/transport/http"
)

const itemIndex = "items"

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	db, err := config.InitDB(configuration)
	if err != nil {
		log.Fatalf("database init error: %v", err)
	}

	jwtSecret := []byte(configuration.JWT_SECRET)

	prod := mykafka.NewProducer([]string{configuration.KAFKA_ADDRESS})

	esClient, err := es.NewClient(configuration)
	if err != nil {
		log.Fatal(err)
	}

	r := repo.NewGormRepo(db)
	authSvc := &service.AuthService{Repo: r, JWTSecret: jwtSecret}
	catalogSvc := &service.CatalogService{Repo: r}
	orderSvc := &service.OrderService{Repo: r}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := logging.IntoContext(c.Request().Context(), logger)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	})

	deps := httpserver.Deps{
		AuthHandler:       &handlers.AuthHandler{Svc: authSvc, Producer: prod},
		IngredientHandler: &handlers.IngredientHandler{Svc: catalogSvc, Producer: prod},
		ItemHandler:       &handlers.ItemHandler{Svc: catalogSvc, Orders: orderSvc, Producer: prod, ES: esClient, Index: itemIndex},
		OrderHandler:      &handlers.OrderHandler{Svc: orderSvc, Producer: prod},
		SearchHandler:     &handlers.SearchHandler{ES: esClient, Index: itemIndex},
		Tokens:            &authmw.TokenMiddleware{JWTSecret: jwtSecret},
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         configuration.HTTP_ADDR,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if err := prod.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
