// server/internal/store/memory.go
package store

import (
	"context"
	"sync"
	"time"

	"food-bridge-api-server/internal/models"
)

// MemoryListingStore is an in-memory ListingStore used in tests and local
// runs without MongoDB. It honors the same conditional-update semantics.
type MemoryListingStore struct {
	mu       sync.RWMutex
	listings map[string]models.Listing
}

func NewMemoryListingStore() *MemoryListingStore {
	return &MemoryListingStore{listings: make(map[string]models.Listing)}
}

func (s *MemoryListingStore) Insert(ctx context.Context, listing *models.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listings[listing.ListingID] = *listing
	return nil
}

func (s *MemoryListingStore) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	listing, ok := s.listings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &listing, nil
}

func (s *MemoryListingStore) ListActive(ctx context.Context) ([]models.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	listings := []models.Listing{}
	for _, l := range s.listings {
		if l.Claimable() {
			listings = append(listings, l)
		}
	}
	return listings, nil
}

func (s *MemoryListingStore) ListByDonor(ctx context.Context, donorID string) ([]models.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	listings := []models.Listing{}
	for _, l := range s.listings {
		if l.DonorID == donorID {
			listings = append(listings, l)
		}
	}
	return listings, nil
}

func (s *MemoryListingStore) SetPhotoURL(ctx context.Context, id, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	listing, ok := s.listings[id]
	if !ok {
		return ErrNotFound
	}
	listing.PhotoURL = url
	listing.LastUpdated = time.Now()
	s.listings[id] = listing
	return nil
}

func (s *MemoryListingStore) UpdateStatus(ctx context.Context, id string, from []string, to string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	listing, ok := s.listings[id]
	if !ok || !statusIn(listing.Status, from) {
		return false, nil
	}
	listing.Status = to
	listing.LastUpdated = time.Now()
	s.listings[id] = listing
	return true, nil
}

func (s *MemoryListingStore) ApplyClaim(ctx context.Context, id string, from []string, upd ClaimUpdate) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	listing, ok := s.listings[id]
	if !ok || !statusIn(listing.Status, from) {
		return false, nil
	}
	listing.Status = upd.Status
	if upd.SetQuantity {
		listing.Quantity = upd.Quantity
	}
	listing.RequestedBy = upd.RequestedBy
	listing.RequestedByOrg = upd.RequestedByOrg
	listing.RequestedQuantity = upd.RequestedQuantity
	listing.RequestNotes = upd.RequestNotes
	listing.RequestedAt = upd.RequestedAt
	listing.LastUpdated = time.Now()
	s.listings[id] = listing
	return true, nil
}

func statusIn(status string, set []string) bool {
	for _, s := range set {
		if s == status {
			return true
		}
	}
	return false
}
