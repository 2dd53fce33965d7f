package main

import (
	"log"
	"os"
	"strings"
	"time"

	httpapi "food-ordering/internal/controllers/http"
	mmysql "food-ordering/internal/infra/mysql"
	"food-ordering/internal/infra/rabbitmq"
	mysqlrepo "food-ordering/internal/repository/mysql"
	"food-ordering/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	db, err := mmysql.NewMySQLFromEnv()
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)
	defer sqlDB.Close()

	orderRepo := mysqlrepo.NewOrderRepository(db)
	menuRepo := mysqlrepo.NewMenuRepository(db)
	businessRepo := mysqlrepo.NewBusinessInfoRepository(db)

	publisher, err := rabbitmq.NewPublisher(os.Getenv("RABBITMQ_URL"), "order.exchange")
	if err != nil {
		log.Fatalf("failed to init publisher: %v", err)
	}
	defer publisher.Close()

	orderService := services.NewOrderService(orderRepo, menuRepo, publisher)
	menuService := services.NewMenuService(menuRepo)
	businessService := services.NewBusinessService(businessRepo)

	if redisHost := os.Getenv("REDIS_HOST"); redisHost != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:         redisHost + ":6379",
			DB:           0,
			PoolSize:     50,
			MinIdleConns: 5,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
		})
		menuService.SetRedisClient(redisClient)
	}

	handler := httpapi.NewHandler(orderService, menuService, businessService)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000", "http://localhost:3001"}
	}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	handler.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting food ordering service on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
