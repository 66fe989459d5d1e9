package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/rafaeldias/pos-backoffice/config"
	"github.com/rafaeldias/pos-backoffice/database"
	"github.com/rafaeldias/pos-backoffice/middlewares"
	"github.com/rafaeldias/pos-backoffice/models"
	"github.com/rafaeldias/pos-backoffice/router"
	"github.com/rafaeldias/pos-backoffice/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}
	utils.InitLogger()
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	if os.Getenv("SEED_PRODUCTS") == "true" {
		if err := database.SeedProducts(db); err != nil {
			utils.ErrorLogger.Printf("Error seeding products: %v", err)
		}
	}

	// 50 requests per second per IP
	rateLimiter := middlewares.NewRateLimiter(50, 1)

	r := router.SetupRouter(db)
	r.Use(rateLimiter.RateLimit())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Product{},
		&models.TableSession{},
		&models.Order{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")

	if err := database.EnsureSessionConstraints(db); err != nil {
		utils.ErrorLogger.Printf("Error ensuring session constraints: %v", err)
	}
}
