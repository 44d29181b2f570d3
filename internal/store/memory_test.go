package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"food-bridge-api-server/internal/models"
)

func TestMemoryListingStore_GetByID(t *testing.T) {
	s := NewMemoryListingStore()

	if _, err := s.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	listing := &models.Listing{ListingID: "d1", DonorID: "hotel1", Status: models.StatusAvailable, Quantity: 10}
	if err := s.Insert(context.Background(), listing); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := s.GetByID(context.Background(), "d1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.DonorID != "hotel1" || got.Quantity != 10 {
		t.Errorf("unexpected listing: %+v", got)
	}

	// The store hands out copies; mutating the result must not write back.
	got.Quantity = 1
	again, _ := s.GetByID(context.Background(), "d1")
	if again.Quantity != 10 {
		t.Errorf("stored listing mutated through returned pointer")
	}
}

func TestMemoryListingStore_Queries(t *testing.T) {
	s := NewMemoryListingStore()
	seed := []models.Listing{
		{ListingID: "d1", DonorID: "hotel1", Status: models.StatusAvailable},
		{ListingID: "d2", DonorID: "hotel1", Status: models.StatusRequested},
		{ListingID: "d3", DonorID: "hotel2", Status: models.StatusPartiallyRequested},
		{ListingID: "d4", DonorID: "hotel2", Status: models.StatusCancelled},
	}
	for i := range seed {
		s.Insert(context.Background(), &seed[i])
	}

	active, err := s.ListActive(context.Background())
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(active) != 2 {
		t.Errorf("expected 2 claimable listings, got %d", len(active))
	}
	for _, l := range active {
		if !l.Claimable() {
			t.Errorf("non-claimable listing in active set: %+v", l)
		}
	}

	// Donor dashboard sees every state.
	mine, err := s.ListByDonor(context.Background(), "hotel2")
	if err != nil {
		t.Fatalf("ListByDonor: %v", err)
	}
	if len(mine) != 2 {
		t.Errorf("expected 2 listings for hotel2, got %d", len(mine))
	}
}

func TestMemoryListingStore_UpdateStatusConditional(t *testing.T) {
	s := NewMemoryListingStore()
	s.Insert(context.Background(), &models.Listing{ListingID: "d1", Status: models.StatusRequested})

	ok, err := s.UpdateStatus(context.Background(), "d1", models.ClaimableStatuses, models.StatusCancelled)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if ok {
		t.Error("expected no match when current status is outside the from set")
	}

	ok, _ = s.UpdateStatus(context.Background(), "d1", []string{models.StatusRequested}, models.StatusCompleted)
	if !ok {
		t.Error("expected match for the listing's actual status")
	}

	listing, _ := s.GetByID(context.Background(), "d1")
	if listing.Status != models.StatusCompleted {
		t.Errorf("expected completed, got %q", listing.Status)
	}
}

func TestMemoryListingStore_ApplyClaimConditional(t *testing.T) {
	s := NewMemoryListingStore()
	s.Insert(context.Background(), &models.Listing{ListingID: "d1", Status: models.StatusAvailable, Quantity: 10})

	upd := ClaimUpdate{
		Status:            models.StatusPartiallyRequested,
		SetQuantity:       true,
		Quantity:          6,
		RequestedBy:       "ngo1",
		RequestedByOrg:    "Helping Hands",
		RequestedQuantity: 4,
		RequestedAt:       time.Now(),
	}

	ok, err := s.ApplyClaim(context.Background(), "d1", []string{models.StatusAvailable}, upd)
	if err != nil || !ok {
		t.Fatalf("ApplyClaim: ok=%v err=%v", ok, err)
	}

	listing, _ := s.GetByID(context.Background(), "d1")
	if listing.Quantity != 6 || listing.Status != models.StatusPartiallyRequested {
		t.Errorf("claim not applied: %+v", listing)
	}

	// Stale guard: a second claim conditioned on "available" matches nothing.
	ok, err = s.ApplyClaim(context.Background(), "d1", []string{models.StatusAvailable}, upd)
	if err != nil {
		t.Fatalf("ApplyClaim: %v", err)
	}
	if ok {
		t.Error("expected stale conditional claim to match nothing")
	}
}
