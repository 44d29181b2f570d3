// server/internal/models/listing.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Listing lifecycle statuses.
const (
	StatusAvailable          = "available"
	StatusPartiallyRequested = "partially_requested"
	StatusRequested          = "requested"
	StatusCompleted          = "completed"
	StatusCancelled          = "cancelled"
	StatusExpired            = "expired"
)

// ClaimableStatuses are the statuses a claim may be submitted against.
// A partially requested listing stays claimable for its remainder.
var ClaimableStatuses = []string{StatusAvailable, StatusPartiallyRequested}

// Listing is a surplus-food donation posted by a hotel. Quantity holds the
// remaining amount while the listing is claimable; after a full claim it
// keeps the original amount and RequestedQuantity records what was taken.
type Listing struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ListingID    string             `bson:"listingID" json:"id"` // e.g. "DON-9F3A21BC"
	DonorID      string             `bson:"donorID" json:"donorId"`
	DonorName    string             `bson:"donorName" json:"donorName"`
	DonorAddress string             `bson:"donorAddress" json:"donorAddress"`
	FoodItem     string             `bson:"foodItem" json:"foodItem"`
	Quantity     float64            `bson:"quantity" json:"quantity"`
	Unit         string             `bson:"unit" json:"unit"`
	Notes        string             `bson:"notes,omitempty" json:"notes,omitempty"`
	PhotoURL     string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`

	ProductionTime time.Time `bson:"productionTime" json:"productionTime"`
	ExpiryTime     time.Time `bson:"expiryTime" json:"expiryTime"`

	Location *GeoPoint `bson:"location,omitempty" json:"location,omitempty"`

	Status string `bson:"status" json:"status"`

	// Claim metadata, populated by the most recent accepted claim. A later
	// claim on a partially requested listing overwrites these fields.
	RequestedBy       string    `bson:"requestedBy,omitempty" json:"requestedBy,omitempty"`
	RequestedByOrg    string    `bson:"requestedByOrg,omitempty" json:"requestedByOrg,omitempty"`
	RequestedQuantity float64   `bson:"requestedQuantity,omitempty" json:"requestedQuantity,omitempty"`
	RequestNotes      string    `bson:"requestNotes,omitempty" json:"requestNotes,omitempty"`
	RequestedAt       time.Time `bson:"requestedAt,omitempty" json:"requestedAt,omitempty"`

	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	LastUpdated time.Time `bson:"lastUpdated" json:"lastUpdated"`
}

// Claimable reports whether a claim may still be submitted against the listing.
func (l *Listing) Claimable() bool {
	for _, s := range ClaimableStatuses {
		if l.Status == s {
			return true
		}
	}
	return false
}
