package main

import (
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"Postbox/internal/api/middleware"
	"Postbox/internal/api/routes"
	"Postbox/internal/config"
	"Postbox/internal/core/accounts"
	"Postbox/internal/core/posts"
	postgresRepo "Postbox/internal/db/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	log.Println("Connected to database")

	// Run migrations
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set goose dialect:", err)
	}

	if err := goose.Up(db, "internal/db/migrations"); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	log.Println("Migrations completed successfully")

	r := chi.NewRouter()

	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst)
	r.Use(rateLimiter.Middleware)

	// Initialize repositories and services.
	// The post cache lives here for the lifetime of the process: one
	// instance, owned by the post service, torn down with it.
	accountRepo := postgresRepo.NewAccountRepository(db)
	accountService := accounts.NewAccountService(accountRepo)

	postRepo := postgresRepo.NewPostRepository(db)
	postCache := posts.NewCache(cfg.CacheCapacity, cfg.CacheTTL, slog.Default())
	postService := posts.NewPostService(postRepo, accountService, postCache)

	auth := middleware.NewBearerTokenMiddleware()

	routes.RegisterAccountRoutes(r, accountService)
	routes.RegisterPostRoutes(r, postService, auth)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	fmt.Printf("Postbox starting on port %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
