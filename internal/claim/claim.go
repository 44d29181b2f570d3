// server/internal/claim/claim.go
package claim

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"food-bridge-api-server/internal/models"
	"food-bridge-api-server/internal/store"
)

// Request is a recipient's claim against a listing's remaining quantity.
// RequesterID and RequesterOrg come from the caller's session and are
// trusted as-is.
type Request struct {
	ListingID    string
	RequesterID  string
	RequesterOrg string
	Quantity     float64
	Notes        string
}

// Result is what the caller needs to render a confirmation.
type Result struct {
	ListingID         string
	DonorID           string
	FoodItem          string
	Unit              string
	Status            string
	RequestedQuantity float64
	RemainingQuantity float64
}

// Service converts claim requests into listing state transitions. Claims for
// the same listing are serialized behind a per-listing lock; claims against
// different listings run in parallel. The store-level conditional update is
// the second line of defense against claimers on other processes.
type Service struct {
	store store.ListingStore

	mu    sync.Mutex
	locks map[string]*sync.Mutex

	now func() time.Time
}

func NewService(s store.ListingStore) *Service {
	return &Service{
		store: s,
		locks: make(map[string]*sync.Mutex),
		now:   time.Now,
	}
}

func (s *Service) lockFor(listingID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[listingID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[listingID] = l
	}
	return l
}

// SubmitClaim validates the request against the listing's current remaining
// quantity, computes the new status, and persists the update in a single
// write. A full claim moves the listing to "requested" and leaves the stored
// quantity as a record of the original amount; a partial claim decrements
// the quantity and moves the listing to "partially_requested", which stays
// claimable for the remainder.
func (s *Service) SubmitClaim(ctx context.Context, req Request) (*Result, error) {
	lock := s.lockFor(req.ListingID)
	lock.Lock()
	defer lock.Unlock()

	listing, err := s.store.GetByID(ctx, req.ListingID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, &StoreError{Op: "get", Err: err}
	}

	if !listing.Claimable() {
		return nil, ErrNotAvailable
	}

	if err := validateQuantity(req.Quantity, listing.Quantity); err != nil {
		return nil, err
	}

	isFull := req.Quantity == listing.Quantity
	upd := store.ClaimUpdate{
		RequestedBy:       req.RequesterID,
		RequestedByOrg:    req.RequesterOrg,
		RequestedQuantity: req.Quantity,
		RequestNotes:      req.Notes,
		RequestedAt:       s.now(),
	}

	var remaining float64
	if isFull {
		upd.Status = models.StatusRequested
		remaining = 0
	} else {
		upd.Status = models.StatusPartiallyRequested
		upd.SetQuantity = true
		upd.Quantity = listing.Quantity - req.Quantity
		remaining = upd.Quantity
	}

	// Guard on the exact status we read: if another claimer got in between
	// the read and this write the update matches nothing.
	ok, err := s.store.ApplyClaim(ctx, req.ListingID, []string{listing.Status}, upd)
	if err != nil {
		return nil, &StoreError{Op: "update", Err: err}
	}
	if !ok {
		return nil, ErrNotAvailable
	}

	return &Result{
		ListingID:         listing.ListingID,
		DonorID:           listing.DonorID,
		FoodItem:          listing.FoodItem,
		Unit:              listing.Unit,
		Status:            upd.Status,
		RequestedQuantity: req.Quantity,
		RemainingQuantity: remaining,
	}, nil
}

func validateQuantity(requested, remaining float64) error {
	if math.IsNaN(requested) || math.IsInf(requested, 0) {
		return &ValidationError{Reason: "requested quantity is not a valid number"}
	}
	if requested <= 0 {
		return &ValidationError{Reason: "requested quantity must be greater than zero"}
	}
	if requested > remaining {
		return &ValidationError{Reason: fmt.Sprintf("requested quantity %g exceeds available quantity %g", requested, remaining)}
	}
	return nil
}
