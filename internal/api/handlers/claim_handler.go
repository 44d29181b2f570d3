// server/internal/api/handlers/claim_handler.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"food-bridge-api-server/internal/claim"
	"food-bridge-api-server/internal/models"
	"food-bridge-api-server/internal/socket"

	"github.com/gin-gonic/gin"
)

type ClaimHandler struct {
	Claims *claim.Service
	Hub    *socket.Hub
}

type SubmitClaimRequest struct {
	Quantity *float64 `json:"quantity" binding:"required"`
	Notes    string   `json:"notes"`
}

// SubmitClaim lets the logged-in NGO claim some or all of a listing's
// remaining quantity. The requester identity and organization name come from
// the token, never from the body.
func (h *ClaimHandler) SubmitClaim(c *gin.Context) {
	var req SubmitClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Claims.SubmitClaim(c.Request.Context(), claim.Request{
		ListingID:    c.Param("id"),
		RequesterID:  c.GetString("user_id"),
		RequesterOrg: c.GetString("user_org"),
		Quantity:     *req.Quantity,
		Notes:        req.Notes,
	})
	if err != nil {
		var validationErr *claim.ValidationError
		switch {
		case errors.Is(err, claim.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		case errors.Is(err, claim.ErrNotAvailable):
			c.JSON(http.StatusConflict, gin.H{"error": "This listing is no longer available"})
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Reason})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit claim", "details": err.Error()})
		}
		return
	}

	// Tell the donor, if they are connected. Best-effort only.
	h.Hub.Notify(result.DonorID, "listing_claimed", map[string]interface{}{
		"listingID":         result.ListingID,
		"foodItem":          result.FoodItem,
		"requestedBy":       c.GetString("user_org"),
		"requestedQuantity": result.RequestedQuantity,
		"remainingQuantity": result.RemainingQuantity,
		"unit":              result.Unit,
		"status":            result.Status,
	})

	message := "Donation requested successfully! The hotel will be notified of your request."
	if result.Status == models.StatusPartiallyRequested {
		message = fmt.Sprintf("Successfully requested %g %s. %g %s remain available.",
			result.RequestedQuantity, result.Unit, result.RemainingQuantity, result.Unit)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":            result.Status,
		"remainingQuantity": result.RemainingQuantity,
		"message":           message,
	})
}
