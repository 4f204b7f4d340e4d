package main

import (
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/noiratelier/storefront-backend/internal/address"
	"github.com/noiratelier/storefront-backend/internal/admin"
	"github.com/noiratelier/storefront-backend/internal/cart"
	"github.com/noiratelier/storefront-backend/internal/category"
	"github.com/noiratelier/storefront-backend/internal/config"
	"github.com/noiratelier/storefront-backend/internal/database"
	"github.com/noiratelier/storefront-backend/internal/notification"
	"github.com/noiratelier/storefront-backend/internal/order"
	"github.com/noiratelier/storefront-backend/internal/payment"
	"github.com/noiratelier/storefront-backend/internal/product"
	"github.com/noiratelier/storefront-backend/internal/shipping"
	"github.com/noiratelier/storefront-backend/internal/user"
	"github.com/noiratelier/storefront-backend/internal/wishlist"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()

	if err := database.Bootstrap(db); err != nil {
		log.Fatalf("schema bootstrap: %v", err)
	}

	notifier := buildNotifier(cfg)
	defer notifier.Close()

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	setupCORS(app)

	// repositories and services
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService, cfg.JWTSecret)

	productRepo := product.NewPostgresRepository(db)
	productService := product.NewService(productRepo)
	productHandler := product.NewHandler(productService)

	shippingRepo := shipping.NewPostgresRepository(db)
	shippingService := shipping.NewService(shippingRepo)
	shippingHandler := shipping.NewHandler(shippingService)

	orderRepo := order.NewPostgresRepository(db)
	orderService := order.NewService(orderRepo, shippingRepo, userRepo, notifier)
	orderHandler := order.NewHandler(orderService)

	wishlistRepo := wishlist.NewPostgresRepository(db)
	wishlistService := wishlist.NewService(wishlistRepo, productRepo)
	wishlistHandler := wishlist.NewHandler(wishlistService)

	categoryHandler := category.NewHandler(category.NewService(category.NewPostgresRepository(db)))

	razorpayClient := payment.NewRazorpayClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret, cfg.RazorpayBaseURL)
	stripeClient := payment.NewStripeClient(cfg.StripeSecretKey, cfg.StripeBaseURL)
	paymentHandler := payment.NewHandler(razorpayClient, stripeClient)

	cartHandler := cart.NewHandler(cart.NewService(cart.NewPostgresRepository(db), productRepo))
	addressHandler := address.NewHandler(address.NewService(address.NewPostgresRepository(db)))

	adminService := admin.NewService(admin.NewPostgresRepository(db), userService, orderRepo, wishlistRepo)
	adminHandler := admin.NewHandler(adminService)

	// public routes
	userHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)
	categoryHandler.RegisterPublicRoutes(app)
	shippingHandler.RegisterPublicRoutes(app)
	orderHandler.RegisterPublicRoutes(app)
	wishlistHandler.RegisterPublicRoutes(app)
	paymentHandler.RegisterPublicRoutes(app)

	// everything registered after this point requires a valid token
	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	userHandler.RegisterProtectedRoutes(app)
	cartHandler.RegisterProtectedRoutes(app)
	addressHandler.RegisterProtectedRoutes(app)
	adminHandler.RegisterProtectedRoutes(app)

	// graceful shutdown on SIGINT/SIGTERM
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-done
		log.Println("shutting down")
		_ = app.Shutdown()
	}()

	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("listen: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func mustOpenDB(url string) *sql.DB {
	if url == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", url)
	if err != nil {
		panic(err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		panic(err)
	}
	return db
}

// buildNotifier connects to the broker when one is configured and falls
// back to a no-op publisher otherwise.
func buildNotifier(cfg config.Config) notification.Notifier {
	if cfg.AMQPURL == "" {
		return notification.Noop{}
	}
	n, err := notification.NewAMQPNotifier(cfg.AMQPURL, cfg.AMQPExchange)
	if err != nil {
		log.Printf("amqp unavailable, notifications disabled: %v", err)
		return notification.Noop{}
	}
	return n
}
