// server/internal/api/handlers/auth_handler.go
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"food-bridge-api-server/config"
	"food-bridge-api-server/internal/auth"
	"food-bridge-api-server/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AuthHandler struct {
	DB  *mongo.Database
	Cfg config.Config
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	UserType string `json:"userType" binding:"required,oneof=hotel ngo"`
	Address  string `json:"address" binding:"required"`

	// Hotel fields
	BusinessName string `json:"businessName"`
	Phone        string `json:"phone"`

	// NGO fields
	OrganizationName   string `json:"organizationName"`
	RegistrationNumber string `json:"registrationNumber"`
	ContactPerson      string `json:"contactPerson"`

	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a hotel or NGO account. The account type is fixed here
// and never changes afterwards.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Type-specific required fields
	if req.UserType == models.UserTypeHotel && (req.BusinessName == "" || req.Phone == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Hotel accounts require businessName and phone"})
		return
	}
	if req.UserType == models.UserTypeNGO && (req.OrganizationName == "" || req.RegistrationNumber == "" || req.ContactPerson == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "NGO accounts require organizationName, registrationNumber and contactPerson"})
		return
	}

	collection := h.DB.Collection("users")

	count, err := collection.CountDocuments(context.Background(), bson.M{"email": req.Email})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error checking for user"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	newUser := models.User{
		UserID:             fmt.Sprintf("USR-%s", uuid.New().String()[:8]),
		Email:              req.Email,
		Password:           hashedPassword,
		UserType:           req.UserType,
		BusinessName:       req.BusinessName,
		Phone:              req.Phone,
		OrganizationName:   req.OrganizationName,
		RegistrationNumber: req.RegistrationNumber,
		ContactPerson:      req.ContactPerson,
		Address:            req.Address,
		CreatedAt:          time.Now(),
		LastLogin:          time.Now(),
	}
	if req.Latitude != nil && req.Longitude != nil {
		newUser.Location = &models.GeoPoint{Latitude: *req.Latitude, Longitude: *req.Longitude}
	}

	if _, err := collection.InsertOne(context.Background(), newUser); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"id":     newUser.UserID,
		"email":  newUser.Email,
	})
}

// Login checks credentials and issues a JWT.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	collection := h.DB.Collection("users")

	var user models.User
	err := collection.FindOne(context.Background(), bson.M{"email": req.Email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		}
		return
	}

	if !auth.CheckPasswordHash(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	lifetime, err := time.ParseDuration(h.Cfg.JWT.Expiration)
	if err != nil {
		lifetime = 24 * time.Hour
	}

	token, err := auth.GenerateJWT(user.UserID, user.Email, user.UserType, user.OrgName(), lifetime)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	collection.UpdateOne(context.Background(), bson.M{"userID": user.UserID}, bson.M{"$set": bson.M{"lastLogin": time.Now()}})

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// GetMe returns the caller's profile.
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID := c.GetString("user_id")

	var user models.User
	err := h.DB.Collection("users").FindOne(context.Background(), bson.M{"userID": userID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		}
		return
	}

	c.JSON(http.StatusOK, user)
}
