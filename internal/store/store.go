// server/internal/store/store.go
package store

import (
	"context"
	"errors"
	"time"

	"food-bridge-api-server/internal/models"
)

// ErrNotFound is returned by GetByID when no listing matches the id.
var ErrNotFound = errors.New("listing not found")

// ClaimUpdate is the single-document write a successful claim performs.
// Quantity is only rewritten on partial claims (SetQuantity); a full claim
// leaves the stored quantity as a record of the original amount.
type ClaimUpdate struct {
	Status            string
	SetQuantity       bool
	Quantity          float64
	RequestedBy       string
	RequestedByOrg    string
	RequestedQuantity float64
	RequestNotes      string
	RequestedAt       time.Time
}

// ListingStore is the document-store surface the application uses: insert,
// point-read, filtered query and partial update. The two conditional update
// methods only apply when the listing's current status is in the given set,
// which is what closes the double-claim race at the store level.
type ListingStore interface {
	Insert(ctx context.Context, listing *models.Listing) error
	GetByID(ctx context.Context, id string) (*models.Listing, error)

	// ListActive returns listings a recipient may still claim, any donor.
	ListActive(ctx context.Context) ([]models.Listing, error)
	// ListByDonor returns a donor's own listings in any state.
	ListByDonor(ctx context.Context, donorID string) ([]models.Listing, error)

	SetPhotoURL(ctx context.Context, id, url string) error

	// UpdateStatus moves the listing to status "to" iff its current status is
	// one of "from". Returns false when no document matched.
	UpdateStatus(ctx context.Context, id string, from []string, to string) (bool, error)
	// ApplyClaim writes the claim fields iff the current status is one of
	// "from". Returns false when no document matched.
	ApplyClaim(ctx context.Context, id string, from []string, upd ClaimUpdate) (bool, error)
}
