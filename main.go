package main

import (
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"online-shop/config"
	"online-shop/database"
	_ "online-shop/docs"
	"online-shop/middleware"
	"online-shop/routes"
)

// @title Online Shop API
// @version 1.0
// @description Product catalog, cart, wishlist and contact backend.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.ConnectDB()
	defer config.CloseDB()

	config.InitRedis()
	defer config.CloseRedis()

	if config.AppConfig.SeedData {
		if err := database.Seed(); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	router := gin.Default()
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
