// server/internal/api/routes/routes.go
package routes

import (
	"food-bridge-api-server/config"
	"food-bridge-api-server/internal/api/handlers"
	"food-bridge-api-server/internal/api/middleware"
	"food-bridge-api-server/internal/claim"
	"food-bridge-api-server/internal/geo"
	"food-bridge-api-server/internal/models"
	"food-bridge-api-server/internal/s3"
	"food-bridge-api-server/internal/socket"
	"food-bridge-api-server/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupRouter wires the handlers and their dependencies into the route tree.
func SetupRouter(
	cfg config.Config,
	db *mongo.Database,
	listingStore store.ListingStore,
	claims *claim.Service,
	uploader *s3.Uploader,
	wsHub *socket.Hub,
	locator *geo.Locator,
) *gin.Engine {
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.Default()) // the dashboards are a separate SPA origin

	authHandler := &handlers.AuthHandler{DB: db, Cfg: cfg}
	listingHandler := &handlers.ListingHandler{Store: listingStore, Uploader: uploader}
	claimHandler := &handlers.ClaimHandler{Claims: claims, Hub: wsHub}
	geoHandler := &handlers.GeoHandler{Locator: locator}
	webSocketHandler := &handlers.WebSocketHandler{Hub: wsHub}

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/ws", webSocketHandler.ServeWs)

		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Everything below requires a logged-in hotel or NGO.
		protected := apiV1.Group("/")
		protected.Use(middleware.Authenticate())
		protected.Use(middleware.Authorize(models.UserTypeHotel, models.UserTypeNGO))
		{
			protected.GET("/profile/me", authHandler.GetMe)
			protected.GET("/geo/locate", geoHandler.Locate)

			listings := protected.Group("/listings")
			{
				// Donor side
				hotelRoutes := listings.Group("/")
				hotelRoutes.Use(middleware.Authorize(models.UserTypeHotel))
				{
					hotelRoutes.POST("/", listingHandler.CreateListing)
					hotelRoutes.GET("/my", listingHandler.GetMyListings)
					hotelRoutes.POST("/:id/photo", listingHandler.UploadListingPhoto)
					hotelRoutes.POST("/:id/cancel", listingHandler.CancelListing)
					hotelRoutes.POST("/:id/complete", listingHandler.CompleteListing)
				}

				// Recipient side
				ngoRoutes := listings.Group("/")
				ngoRoutes.Use(middleware.Authorize(models.UserTypeNGO))
				{
					ngoRoutes.GET("/available", listingHandler.GetAvailableListings)
					ngoRoutes.POST("/:id/claim", claimHandler.SubmitClaim)
				}

				listings.GET("/:id", listingHandler.GetListingByID)
			}
		}
	}

	return router
}
