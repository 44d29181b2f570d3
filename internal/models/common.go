// server/internal/models/common.go
package models

// GeoPoint is a latitude/longitude pair in degrees. Listings and user
// profiles carry it as a pointer: absent means "no location recorded".
type GeoPoint struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// Units a listing quantity may be expressed in.
var ValidUnits = []string{"kg", "g", "pieces", "dozen", "portions"}

// IsValidUnit reports whether unit belongs to the fixed unit vocabulary.
func IsValidUnit(unit string) bool {
	for _, u := range ValidUnits {
		if u == unit {
			return true
		}
	}
	return false
}
