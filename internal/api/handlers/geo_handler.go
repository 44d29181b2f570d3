// server/internal/api/handlers/geo_handler.go
package handlers

import (
	"net/http"

	"food-bridge-api-server/internal/geo"

	"github.com/gin-gonic/gin"
)

type GeoHandler struct {
	Locator *geo.Locator
}

// Locate resolves the caller's approximate coordinates from their IP, for
// clients without a browser location fix. One shot: a coordinate or an error.
func (h *GeoHandler) Locate(c *gin.Context) {
	point, err := h.Locator.Locate(c.Request.Context(), c.ClientIP())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not resolve your location", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, point)
}
