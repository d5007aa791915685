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

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/Thomasrnd/tcg-pos-frontend/internal/cart"
	"github.com/Thomasrnd/tcg-pos-frontend/internal/catalog"
	"github.com/Thomasrnd/tcg-pos-frontend/internal/checkout"
	"github.com/Thomasrnd/tcg-pos-frontend/internal/config"
	"github.com/Thomasrnd/tcg-pos-frontend/internal/events"
	"github.com/Thomasrnd/tcg-pos-frontend/internal/pos"
	"github.com/Thomasrnd/tcg-pos-frontend/internal/server"
	"github.com/Thomasrnd/tcg-pos-frontend/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}
	cfg := config.Load()
	ctx := context.Background()

	// Cart persistence: Redis when configured, in-memory otherwise.
	var store storage.Store
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatal("Redis connection failed:", err)
		}
		log.Printf("Redis ping succeeded")
		store = storage.NewRedisStore(redisClient, cfg.TerminalID)
	} else {
		log.Printf("REDIS_ADDR not set, cart will not survive restarts")
		store = storage.NewMemoryStore()
	}

	cartStore := cart.NewStore(ctx, store)

	posClient := pos.NewClient(cfg.APIBaseURL, &http.Client{Timeout: cfg.RequestTimeout})
	log.Printf("POS backend at %s", cfg.APIBaseURL)

	methodCatalog := catalog.New(posClient, cfg.CatalogTTL)
	orchestrator := checkout.NewOrchestrator(posClient)

	var publisher *events.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewPublisher(cfg.TerminalID, cfg.KafkaBrokers...)
		defer publisher.Close()
		log.Printf("publishing order events to %v", cfg.KafkaBrokers)
	}

	cartHandler := server.NewCartHandler(cartStore, cfg.RequestTimeout)
	checkoutHandler := server.NewCheckoutHandler(cartStore, methodCatalog, orchestrator, publisher, cfg.RequestTimeout, cfg.MaxUploadSize)
	catalogHandler := server.NewCatalogHandler(posClient, cfg.RequestTimeout)

	router := server.NewRouter(cartHandler, checkoutHandler, catalogHandler)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("kiosk %s starting on :%s", cfg.TerminalID, cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
