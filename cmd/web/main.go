package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"uvicorn-shop/api/handlers"
	"uvicorn-shop/internal/config"
	"uvicorn-shop/internal/email"
	"uvicorn-shop/internal/notify"
	"uvicorn-shop/internal/payment"
	"uvicorn-shop/internal/services"
	"uvicorn-shop/internal/store"
)

func main() {
	// Logger
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	cfg := config.Load()
	log.Info().
		Str("addr", cfg.HTTPAddr).
		Bool("redis", cfg.RedisAddr != "").
		Str("orders_db", cfg.OrdersDBPath).
		Msg("starting uvicorn shop")

	// Cart persistence: redis when configured, in-memory otherwise
	var kv store.Store = store.NewMemoryStore()
	if cfg.RedisAddr != "" {
		kv = store.NewRedisStore(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	}

	// Order persistence
	orders, err := store.OpenOrderStore(cfg.OrdersDBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("open order store")
	}
	defer orders.Close()
	if err := orders.Init(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("init order store")
	}

	// Order event hub; listeners register here instead of a global callback
	hub := notify.NewHub()
	hub.Register(func(ev notify.OrderEvent) {
		log.Info().
			Str("order_id", ev.OrderID).
			Str("email", ev.Email).
			Int64("total", ev.TotalPaise).
			Msg("order placed")
	})

	// Services
	catalogService := services.NewCatalogService()
	catalogService.Replace(services.SeedProducts())

	cartService := services.NewCartService(kv)

	policy := email.NewSenderPolicy(cfg.FromSender, cfg.ResendAPIKey, cfg.AllowAllEmails, cfg.TestRecipient)
	checkoutService := services.NewCheckoutService(
		services.CheckoutConfig{
			Policy:     policy,
			AdminEmail: cfg.AdminEmail,
			OwnerEmail: cfg.TestRecipient,
			AppURL:     cfg.AppURL,
		},
		email.NewResendMailer(cfg.ResendAPIKey),
		payment.NewRazorpayClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret),
		orders,
		hub,
	)

	// Handlers
	productHandler := handlers.NewProductHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService, catalogService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, cartService)
	webhookHandler := handlers.NewWebhookHandler(cfg.RazorpayWebhookSecret, orders)
	orderHandler := handlers.NewOrderHandler(orders)

	// Setup router
	router := setupRouter(productHandler, cartHandler, checkoutHandler, webhookHandler, orderHandler)

	// Start server
	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      cors.AllowAll().Handler(router),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Run server in goroutine
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server shutdown complete")
}

func setupRouter(
	productHandler *handlers.ProductHandler,
	cartHandler *handlers.CartHandler,
	checkoutHandler *handlers.CheckoutHandler,
	webhookHandler *handlers.WebhookHandler,
	orderHandler *handlers.OrderHandler,
) *gin.Engine {
	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// API Routes
	api := router.Group("/api")
	{
		// Product routes
		products := api.Group("/products")
		{
			products.GET("/", productHandler.GetAllProducts)
			products.GET("/search", productHandler.SearchProducts)
			products.GET("/:id", productHandler.GetProductByID)
		}

		// Cart routes
		cart := api.Group("/cart")
		{
			cart.POST("/", cartHandler.CreateCart)
			cart.GET("/:id", cartHandler.GetCart)
			cart.POST("/:id/items", cartHandler.AddToCart)
			cart.PUT("/:id/items/:product_id", cartHandler.UpdateCartItem)
			cart.DELETE("/:id/items/:product_id", cartHandler.RemoveCartItem)
			cart.DELETE("/:id", cartHandler.ClearCart)
		}

		// Checkout + orders
		api.POST("/checkout", checkoutHandler.Checkout)
		api.GET("/orders/:id", orderHandler.GetOrder)

		// Payment gateway callback
		api.POST("/razorpay-webhook", webhookHandler.HandleRazorpayWebhook)

		// Health check
		api.GET("/health", productHandler.HealthCheck)
	}

	return router
}
