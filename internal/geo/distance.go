// server/internal/geo/distance.go
package geo

import (
	"iter"
	"math"

	"food-bridge-api-server/internal/models"
)

// Earth radius in km.
const earthRadiusKm = 6371

// FoodTypeAll matches every food item in FilterByRadius.
const FoodTypeAll = "all"

// DistanceKm computes the great-circle (haversine) distance between two
// coordinates, in kilometers.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := deg2rad(lat2 - lat1)
	dLon := deg2rad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// FilterByRadius yields the listings that match foodType and lie within
// radiusKm of center, preserving input order. A nil center disables the
// distance check, foodType "all" disables the food check, and a listing
// without a location always passes the distance check. The sequence is lazy
// and may be ranged over more than once.
func FilterByRadius(listings []models.Listing, center *models.GeoPoint, radiusKm float64, foodType string) iter.Seq[models.Listing] {
	return func(yield func(models.Listing) bool) {
		for _, l := range listings {
			if foodType != FoodTypeAll && l.FoodItem != foodType {
				continue
			}
			if center != nil && l.Location != nil {
				d := DistanceKm(center.Latitude, center.Longitude, l.Location.Latitude, l.Location.Longitude)
				if d > radiusKm {
					continue
				}
			}
			if !yield(l) {
				return
			}
		}
	}
}
