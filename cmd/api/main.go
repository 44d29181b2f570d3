// server/cmd/api/main.go
package main

import (
	"context"
	"log"

	"food-bridge-api-server/config"
	"food-bridge-api-server/internal/api/routes"
	"food-bridge-api-server/internal/auth"
	"food-bridge-api-server/internal/claim"
	"food-bridge-api-server/internal/database"
	"food-bridge-api-server/internal/geo"
	"food-bridge-api-server/internal/s3"
	"food-bridge-api-server/internal/socket"
	"food-bridge-api-server/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load configuration (.env first so viper's env binds see it)
	godotenv.Load()
	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}
	if cfg.JWT.Secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
	auth.JwtSecret = []byte(cfg.JWT.Secret)

	// 2. Connect to MongoDB and seed demo accounts
	db, err := database.Connect(context.Background(), cfg.Mongo.URI, cfg.Mongo.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	if err := database.SeedDemoAccounts(db); err != nil {
		log.Fatalf("Failed to seed demo accounts: %v", err)
	}

	// 3. Wire the application pieces
	listingStore := store.NewMongoListingStore(db)
	claimService := claim.NewService(listingStore)
	wsHub := socket.NewHub()
	locator := geo.NewLocator(cfg.Geo.LocateEndpoint)

	uploader, err := s3.NewUploader(cfg.S3)
	if err != nil {
		log.Fatalf("Failed to initialize S3 uploader: %v", err)
	}

	router := routes.SetupRouter(cfg, db, listingStore, claimService, uploader, wsHub, locator)

	// 4. Start server
	log.Printf("Starting API server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
