// server/internal/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User account types, fixed at registration.
const (
	UserTypeHotel = "hotel"
	UserTypeNGO   = "ngo"
)

// User matches the document in MongoDB. Hotel accounts fill the business
// fields, NGO accounts the organization fields.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID   string             `bson:"userID" json:"id"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
	UserType string             `bson:"userType" json:"userType"`

	// Hotel fields
	BusinessName string `bson:"businessName,omitempty" json:"businessName,omitempty"`
	Phone        string `bson:"phone,omitempty" json:"phone,omitempty"`

	// NGO fields
	OrganizationName   string `bson:"organizationName,omitempty" json:"organizationName,omitempty"`
	RegistrationNumber string `bson:"registrationNumber,omitempty" json:"registrationNumber,omitempty"`
	ContactPerson      string `bson:"contactPerson,omitempty" json:"contactPerson,omitempty"`

	Address  string    `bson:"address" json:"address"`
	Location *GeoPoint `bson:"location,omitempty" json:"location,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	LastLogin time.Time `bson:"lastLogin" json:"lastLogin"`
}

// OrgName returns the display name used for attribution: the business name
// for hotels, the organization name for NGOs.
func (u *User) OrgName() string {
	if u.UserType == UserTypeHotel {
		return u.BusinessName
	}
	return u.OrganizationName
}
