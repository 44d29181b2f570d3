// server/internal/api/handlers/listing_handler.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"food-bridge-api-server/internal/geo"
	"food-bridge-api-server/internal/models"
	"food-bridge-api-server/internal/s3"
	"food-bridge-api-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ListingHandler struct {
	Store    store.ListingStore
	Uploader *s3.Uploader
}

type CreateListingRequest struct {
	FoodItem       string    `json:"foodItem" binding:"required"`
	Quantity       float64   `json:"quantity" binding:"required,gt=0"`
	Unit           string    `json:"unit" binding:"required"`
	ProductionTime time.Time `json:"productionTime" binding:"required"`
	ExpiryTime     time.Time `json:"expiryTime" binding:"required"`
	Notes          string    `json:"notes"`
	Address        string    `json:"address" binding:"required"`
	Latitude       *float64  `json:"latitude"`
	Longitude      *float64  `json:"longitude"`
}

// CreateListing posts a new surplus-food listing for the logged-in hotel.
func (h *ListingHandler) CreateListing(c *gin.Context) {
	donorID := c.GetString("user_id")
	donorName := c.GetString("user_org")

	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.IsValidUnit(req.Unit) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unit must be one of: %s", strings.Join(models.ValidUnits, ", "))})
		return
	}
	if !req.ExpiryTime.After(req.ProductionTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Expiry time must be after production time"})
		return
	}

	newListing := models.Listing{
		ListingID:      fmt.Sprintf("DON-%s", strings.ToUpper(uuid.New().String()[:8])),
		DonorID:        donorID,
		DonorName:      donorName,
		DonorAddress:   req.Address,
		FoodItem:       req.FoodItem,
		Quantity:       req.Quantity,
		Unit:           req.Unit,
		ProductionTime: req.ProductionTime,
		ExpiryTime:     req.ExpiryTime,
		Notes:          req.Notes,
		Status:         models.StatusAvailable,
		CreatedAt:      time.Now(),
		LastUpdated:    time.Now(),
	}
	if req.Latitude != nil && req.Longitude != nil {
		newListing.Location = &models.GeoPoint{Latitude: *req.Latitude, Longitude: *req.Longitude}
	}

	if err := h.Store.Insert(c.Request.Context(), &newListing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create listing"})
		return
	}

	c.JSON(http.StatusCreated, newListing)
}

// GetMyListings returns the hotel's own listings in any state.
func (h *ListingHandler) GetMyListings(c *gin.Context) {
	donorID := c.GetString("user_id")

	listings, err := h.Store.ListByDonor(c.Request.Context(), donorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query listings"})
		return
	}

	c.JSON(http.StatusOK, listings)
}

// GetAvailableListings returns claimable listings for recipients, optionally
// narrowed to a radius around the viewer and to one food type.
// Query params: lat, lon, radiusKm (default 10), foodType (default "all").
func (h *ListingHandler) GetAvailableListings(c *gin.Context) {
	listings, err := h.Store.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query listings"})
		return
	}

	var center *models.GeoPoint
	latStr, lonStr := c.Query("lat"), c.Query("lon")
	if latStr != "" && lonStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lon, lonErr := strconv.ParseFloat(lonStr, 64)
		if latErr != nil || lonErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon must be valid coordinates"})
			return
		}
		center = &models.GeoPoint{Latitude: lat, Longitude: lon}
	}

	radiusKm := 10.0
	if radiusStr := c.Query("radiusKm"); radiusStr != "" {
		radiusKm, err = strconv.ParseFloat(radiusStr, 64)
		if err != nil || radiusKm <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "radiusKm must be a positive number"})
			return
		}
	}

	foodType := c.DefaultQuery("foodType", geo.FoodTypeAll)

	filtered := []models.Listing{}
	for l := range geo.FilterByRadius(listings, center, radiusKm, foodType) {
		filtered = append(filtered, l)
	}

	c.JSON(http.StatusOK, filtered)
}

// GetListingByID returns one listing.
func (h *ListingHandler) GetListingByID(c *gin.Context) {
	listing, err := h.Store.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve listing"})
		}
		return
	}

	c.JSON(http.StatusOK, listing)
}

// CancelListing withdraws a claimable listing. Only the owning hotel may
// cancel, and only before the listing is fully requested.
func (h *ListingHandler) CancelListing(c *gin.Context) {
	h.transition(c, models.ClaimableStatuses, models.StatusCancelled,
		"Listing can no longer be cancelled", "Listing cancelled")
}

// CompleteListing marks a fully requested listing as picked up.
func (h *ListingHandler) CompleteListing(c *gin.Context) {
	h.transition(c, []string{models.StatusRequested}, models.StatusCompleted,
		"Only a requested listing can be completed", "Listing marked as completed")
}

func (h *ListingHandler) transition(c *gin.Context, from []string, to, conflictMsg, okMsg string) {
	listingID := c.Param("id")

	listing := h.ownListing(c, listingID)
	if listing == nil {
		return
	}

	ok, err := h.Store.UpdateStatus(c.Request.Context(), listingID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update listing"})
		return
	}
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": conflictMsg})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": okMsg})
}

// UploadListingPhoto stores a photo of the food in S3 and records its URL on
// the listing.
func (h *ListingHandler) UploadListingPhoto(c *gin.Context) {
	listingID := c.Param("id")

	listing := h.ownListing(c, listingID)
	if listing == nil {
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A photo file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	objectKey := fmt.Sprintf("listing-photos/%s%s", listingID, filepath.Ext(fileHeader.Filename))
	url, err := h.Uploader.UploadFile(c.Request.Context(), file, objectKey, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload photo", "details": err.Error()})
		return
	}

	if err := h.Store.SetPhotoURL(c.Request.Context(), listingID, url); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save photo URL"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "photoURL": url})
}

// ownListing fetches a listing and verifies the caller owns it, writing the
// error response itself when it returns nil.
func (h *ListingHandler) ownListing(c *gin.Context, listingID string) *models.Listing {
	listing, err := h.Store.GetByID(c.Request.Context(), listingID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve listing"})
		}
		return nil
	}

	if listing.DonorID != c.GetString("user_id") {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not the owner of this listing"})
		return nil
	}

	return listing
}
