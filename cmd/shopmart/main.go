package main

import (
	"context"
	"encoding/hex"
	"github.com/go-chi/chi/v5"
	"github.com/rookgm/shopmart/config"
	"github.com/rookgm/shopmart/internal/auth"
	handler "github.com/rookgm/shopmart/internal/handler/http"
	"github.com/rookgm/shopmart/internal/logger"
	"github.com/rookgm/shopmart/internal/middleware"
	"github.com/rookgm/shopmart/internal/repository"
	"github.com/rookgm/shopmart/internal/repository/postgres"
	"github.com/rookgm/shopmart/internal/service"
	"go.uber.org/zap"
	"log"
	"net/http"
	"time"
)

// startup database ping timeout
const pingTimeout = 3 * time.Second

func main() {

	// create new config
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Log.Sync()

	// create context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// initialize database, the pool dials lazily
	db, err := postgres.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Log.Fatal("Error initializing database", zap.Error(err))
	}
	defer db.Close()

	pingCtx, pingCancel := context.WithTimeout(ctx, pingTimeout)
	if err := db.Ping(pingCtx); err != nil {
		logger.Log.Warn("Database is unreachable, skipping migrations", zap.Error(err))
	} else {
		// migrate database
		if err := db.Migrate(); err != nil {
			logger.Log.Fatal("Error migrating database", zap.Error(err))
		}
	}
	pingCancel()

	tokenKey, err := hex.DecodeString(cfg.AuthSecret)
	if err != nil {
		logger.Log.Fatal("Error extracting token key", zap.Error(err))
	}
	token := auth.NewAuthToken(tokenKey)

	// dependency injection
	// user
	userRepo := repository.NewUserRepository(db)
	userService := service.NewUserService(userRepo)
	userHandler := handler.NewUserHandler(userService, token)

	// auth
	authService := service.NewAuthService(userRepo, token)
	authHandler := handler.NewAuthHandler(authService)

	// cart
	cartRepo := repository.NewCartRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartService := service.NewCartService(cartRepo, productRepo)
	cartHandler := handler.NewCartHandler(cartService)

	// order
	orderRepo := repository.NewOrderRepository(db)
	orderService := service.NewOrderService(orderRepo, cartRepo, nil, int32(cfg.ReturnWindowDays))
	orderHandler := handler.NewOrderHandler(orderService)

	// payment
	paymentRepo := repository.NewPaymentRepository(db)
	paymentService := service.NewPaymentService(paymentRepo, orderRepo, service.NewApproveRate(cfg.PaymentApproveRate), nil)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	// health
	healthHandler := handler.NewHealthHandler(db)

	router := chi.NewRouter()

	router.Use(middleware.Logging(logger.Log))

	router.Post("/api/user/register", userHandler.RegisterUser())
	router.Post("/api/user/login", authHandler.LoginUser())
	router.Get("/ping", healthHandler.Ping())

	// routes that require authentication
	router.Group(func(group chi.Router) {
		group.Use(handler.AuthMiddleware(token))
		group.Post("/api/user/cart", cartHandler.AddCartItem())
		group.Get("/api/user/cart", cartHandler.ListCartItems())
		group.Patch("/api/user/cart/{itemID}", cartHandler.UpdateCartItem())
		group.Delete("/api/user/cart/{itemID}", cartHandler.RemoveCartItem())
		group.Delete("/api/user/cart", cartHandler.ClearCart())
		group.Post("/api/user/orders", orderHandler.PlaceOrder())
		group.Get("/api/user/orders", orderHandler.ListUserOrders())
		group.Get("/api/user/orders/{orderID}", orderHandler.GetOrder())
		group.Post("/api/user/orders/{orderID}/cancel", orderHandler.CancelOrder())
		group.Post("/api/user/orders/{orderID}/return", orderHandler.ReturnOrder())
		group.Post("/api/user/orders/{orderID}/payment", paymentHandler.CreatePayment())
		group.Get("/api/user/orders/{orderID}/payment", paymentHandler.GetPayment())
		group.Patch("/api/orders/{orderID}/status", orderHandler.UpdateOrderStatus())
	})

	logger.Log.Info("Running server", zap.String("addr", cfg.ServerAddr))

	if err := http.ListenAndServe(cfg.ServerAddr, router); err != nil {
		logger.Log.Fatal("Error starting server", zap.Error(err))
	}

	return
}
