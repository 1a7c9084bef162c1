package main

import (
	"context"
	"log"

	"raffle-manager/config"
	"raffle-manager/internal/cache"
	"raffle-manager/internal/database"
	"raffle-manager/internal/handler"
	"raffle-manager/internal/middleware"
	"raffle-manager/internal/repository"
	"raffle-manager/internal/service"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cfg := config.LoadConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	if err := database.InitSchema(context.Background(), pool); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize redis: %v", err)
	}
	defer rdb.Close()

	userRepo := repository.NewUserRepository(pool)
	raffleRepo := repository.NewRaffleRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)

	initLock := cache.NewInventoryInitLock(rdb)

	authService := service.NewAuthService(userRepo, cfg.Auth)
	userService := service.NewUserService(userRepo)
	raffleService := service.NewRaffleService(raffleRepo)
	ticketService := service.NewTicketService(raffleRepo, ticketRepo, initLock)

	auth := middleware.Auth(authService)

	router := gin.Default()
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	handler.NewAuthHandler(authService).RegisterRoutes(router)
	handler.NewUserHandler(userService, authService).RegisterRoutes(router, auth)
	handler.NewRaffleHandler(raffleService).RegisterRoutes(router, auth)
	handler.NewTicketHandler(ticketService).RegisterRoutes(router, auth)

	router.Run(":" + cfg.Server.Port)
}
