// server/internal/database/seeder.go
package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"food-bridge-api-server/internal/auth"
	"food-bridge-api-server/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SeedDemoAccounts creates one demo hotel and one demo NGO account so a
// fresh database is usable immediately. Skipped when either email exists.
func SeedDemoAccounts(db *mongo.Database) error {
	userCollection := db.Collection("users")

	demoUsers := []models.User{
		{
			Email:        "hotel@example.com",
			UserType:     models.UserTypeHotel,
			BusinessName: "Demo Grand Hotel",
			Phone:        "+91-9000000001",
			Address:      "12 MG Road, Bengaluru",
			Location:     &models.GeoPoint{Latitude: 12.97, Longitude: 77.59},
		},
		{
			Email:              "ngo@example.com",
			UserType:           models.UserTypeNGO,
			OrganizationName:   "Helping Hands",
			RegistrationNumber: "NGO-2020-000123",
			ContactPerson:      "A. Sharma",
			Address:            "4 Residency Road, Bengaluru",
			Location:           &models.GeoPoint{Latitude: 12.90, Longitude: 77.50},
		},
	}

	for _, user := range demoUsers {
		count, err := userCollection.CountDocuments(context.Background(), bson.M{"email": user.Email})
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		log.Printf("Seeding demo account %s...", user.Email)
		hashedPassword, err := auth.HashPassword("demopassword")
		if err != nil {
			return err
		}

		user.UserID = fmt.Sprintf("USR-%s", uuid.New().String()[:8])
		user.Password = hashedPassword
		user.CreatedAt = time.Now()
		user.LastLogin = time.Now()

		if _, err := userCollection.InsertOne(context.Background(), user); err != nil {
			return err
		}
	}

	return nil
}
