package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/christianlemes/rotisserie-pwa/auth"
	"github.com/christianlemes/rotisserie-pwa/cart"
	"github.com/christianlemes/rotisserie-pwa/catalog"
	"github.com/christianlemes/rotisserie-pwa/checkout"
	"github.com/christianlemes/rotisserie-pwa/logging"
	"github.com/christianlemes/rotisserie-pwa/middleware"
	"github.com/christianlemes/rotisserie-pwa/models"
	"github.com/christianlemes/rotisserie-pwa/routes"
)

const (
	cartTTL         = 24 * time.Hour
	checkoutLockTTL = 30 * time.Second
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	log := logging.Init("rotisserie-api", "./logs/app.log")

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Product{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Error("automigrate failed", "err", err)
		os.Exit(1)
	}

	// Session cart store and checkout lock: Redis when configured,
	// in-process otherwise.
	var (
		carts  cart.Store
		locker checkout.Locker
	)
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		carts = cart.NewRedisStore(rdb, cartTTL)
		locker = checkout.NewRedisLocker(rdb, checkoutLockTTL)
		log.Info("using redis session store", "addr", addr)
	} else {
		carts = cart.NewMemoryStore()
		locker = checkout.NewMemoryLocker()
		log.Warn("REDIS_ADDR not set, using in-process session store")
	}

	catalogStore := catalog.NewGormStore(db)
	customers := auth.NewGormCustomerStore(db)
	checkoutSvc := checkout.NewService(
		carts,
		catalogStore,
		checkout.NewGormOrderStore(db),
		locker,
		logging.New("checkout"),
	)

	// Gin setup
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logging(logging.New("http")), middleware.Metrics())

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Prometheus endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		DB:        db,
		Carts:     carts,
		Catalog:   catalogStore,
		Checkout:  checkoutSvc,
		Customers: customers,
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Info("server starting", "port", port)
	if err := r.Run(":" + port); err != nil {
		log.Error("server exited", "err", err)
		os.Exit(1)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	log := logging.New("db")

	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Error("db connection failed", "err", err)
			os.Exit(1)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Error("db connection failed", "err", err)
		os.Exit(1)
	}
	return db
}
