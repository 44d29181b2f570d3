package claim

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"food-bridge-api-server/internal/models"
	"food-bridge-api-server/internal/store"
)

func seedListing(t *testing.T, s *store.MemoryListingStore, id string, quantity float64, status string) {
	t.Helper()
	err := s.Insert(context.Background(), &models.Listing{
		ListingID:      id,
		DonorID:        "hotel1",
		DonorName:      "Demo Grand Hotel",
		FoodItem:       "Rice",
		Quantity:       quantity,
		Unit:           "kg",
		ProductionTime: time.Now().Add(-2 * time.Hour),
		ExpiryTime:     time.Now().Add(6 * time.Hour),
		Status:         status,
		CreatedAt:      time.Now(),
	})
	if err != nil {
		t.Fatalf("seed listing: %v", err)
	}
}

func TestSubmitClaim_FullClaim(t *testing.T) {
	mem := store.NewMemoryListingStore()
	seedListing(t, mem, "d1", 10, models.StatusAvailable)
	svc := NewService(mem)

	result, err := svc.SubmitClaim(context.Background(), Request{
		ListingID:    "d1",
		RequesterID:  "ngo1",
		RequesterOrg: "Helping Hands",
		Quantity:     10,
	})
	if err != nil {
		t.Fatalf("expected full claim to succeed: %v", err)
	}
	if result.Status != models.StatusRequested {
		t.Errorf("expected status %q, got %q", models.StatusRequested, result.Status)
	}
	if result.RemainingQuantity != 0 {
		t.Errorf("expected remaining 0, got %g", result.RemainingQuantity)
	}

	// The stored quantity documents the original amount on a full claim.
	listing, err := mem.GetByID(context.Background(), "d1")
	if err != nil {
		t.Fatalf("get listing: %v", err)
	}
	if listing.Quantity != 10 {
		t.Errorf("expected stored quantity to stay 10, got %g", listing.Quantity)
	}
	if listing.RequestedQuantity != 10 || listing.RequestedBy != "ngo1" || listing.RequestedByOrg != "Helping Hands" {
		t.Errorf("claim metadata not recorded: %+v", listing)
	}
}

func TestSubmitClaim_PartialClaim(t *testing.T) {
	mem := store.NewMemoryListingStore()
	seedListing(t, mem, "d1", 10, models.StatusAvailable)
	svc := NewService(mem)

	result, err := svc.SubmitClaim(context.Background(), Request{
		ListingID:    "d1",
		RequesterID:  "ngo1",
		RequesterOrg: "Helping Hands",
		Quantity:     4,
		Notes:        "urgent",
	})
	if err != nil {
		t.Fatalf("expected partial claim to succeed: %v", err)
	}
	if result.Status != models.StatusPartiallyRequested {
		t.Errorf("expected status %q, got %q", models.StatusPartiallyRequested, result.Status)
	}
	if result.RemainingQuantity != 6 {
		t.Errorf("expected remaining 6, got %g", result.RemainingQuantity)
	}

	listing, _ := mem.GetByID(context.Background(), "d1")
	if listing.Quantity != 6 {
		t.Errorf("expected stored quantity 6, got %g", listing.Quantity)
	}
	if listing.RequestNotes != "urgent" {
		t.Errorf("expected request notes to be recorded, got %q", listing.RequestNotes)
	}
}

func TestSubmitClaim_PartialThenRemainder(t *testing.T) {
	mem := store.NewMemoryListingStore()
	seedListing(t, mem, "d1", 10, models.StatusAvailable)
	svc := NewService(mem)

	if _, err := svc.SubmitClaim(context.Background(), Request{ListingID: "d1", RequesterID: "ngo1", RequesterOrg: "Helping Hands", Quantity: 4}); err != nil {
		t.Fatalf("first claim: %v", err)
	}

	// A partially requested listing stays claimable; taking the remainder
	// is a full claim of what is left.
	result, err := svc.SubmitClaim(context.Background(), Request{ListingID: "d1", RequesterID: "ngo2", RequesterOrg: "Food Rescue", Quantity: 6})
	if err != nil {
		t.Fatalf("second claim: %v", err)
	}
	if result.Status != models.StatusRequested {
		t.Errorf("expected status %q, got %q", models.StatusRequested, result.Status)
	}
	if result.RemainingQuantity != 0 {
		t.Errorf("expected remaining 0, got %g", result.RemainingQuantity)
	}

	// Second claim overwrites the claim metadata.
	listing, _ := mem.GetByID(context.Background(), "d1")
	if listing.RequestedBy != "ngo2" {
		t.Errorf("expected requestedBy ngo2, got %q", listing.RequestedBy)
	}
}

func TestSubmitClaim_ValidationErrors(t *testing.T) {
	testCases := []struct {
		name     string
		quantity float64
	}{
		{"zero quantity", 0},
		{"negative quantity", -3},
		{"exceeds remaining", 15},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mem := store.NewMemoryListingStore()
			seedListing(t, mem, "d1", 10, models.StatusAvailable)
			svc := NewService(mem)

			_, err := svc.SubmitClaim(context.Background(), Request{ListingID: "d1", RequesterID: "ngo1", RequesterOrg: "x", Quantity: tc.quantity})
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}

			// The listing must be untouched on a rejected claim.
			listing, _ := mem.GetByID(context.Background(), "d1")
			if listing.Quantity != 10 || listing.Status != models.StatusAvailable {
				t.Errorf("listing mutated by rejected claim: %+v", listing)
			}
		})
	}
}

func TestSubmitClaim_NotFound(t *testing.T) {
	svc := NewService(store.NewMemoryListingStore())

	_, err := svc.SubmitClaim(context.Background(), Request{ListingID: "missing", RequesterID: "ngo1", Quantity: 1})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSubmitClaim_NotClaimableStatuses(t *testing.T) {
	for _, status := range []string{
		models.StatusRequested,
		models.StatusCompleted,
		models.StatusCancelled,
		models.StatusExpired,
	} {
		t.Run(status, func(t *testing.T) {
			mem := store.NewMemoryListingStore()
			seedListing(t, mem, "d1", 10, status)
			svc := NewService(mem)

			_, err := svc.SubmitClaim(context.Background(), Request{ListingID: "d1", RequesterID: "ngo1", Quantity: 5})
			if !errors.Is(err, ErrNotAvailable) {
				t.Fatalf("expected ErrNotAvailable for status %q, got %v", status, err)
			}
		})
	}
}

func TestSubmitClaim_ConcurrentFullClaims(t *testing.T) {
	mem := store.NewMemoryListingStore()
	seedListing(t, mem, "d1", 10, models.StatusAvailable)
	svc := NewService(mem)

	const claimers = 16
	var wg sync.WaitGroup
	errs := make([]error, claimers)

	for i := 0; i < claimers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.SubmitClaim(context.Background(), Request{
				ListingID:    "d1",
				RequesterID:  "ngo1",
				RequesterOrg: "Helping Hands",
				Quantity:     10,
			})
		}(i)
	}
	wg.Wait()

	successes, conflicts := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrNotAvailable):
			conflicts++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if successes != 1 {
		t.Errorf("expected exactly one winning claim, got %d", successes)
	}
	if conflicts != claimers-1 {
		t.Errorf("expected %d conflicts, got %d", claimers-1, conflicts)
	}
}

func TestSubmitClaim_IndependentListingsInParallel(t *testing.T) {
	mem := store.NewMemoryListingStore()
	seedListing(t, mem, "d1", 10, models.StatusAvailable)
	seedListing(t, mem, "d2", 5, models.StatusAvailable)
	svc := NewService(mem)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, id := range []string{"d1", "d2"} {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			_, errs[i] = svc.SubmitClaim(context.Background(), Request{ListingID: id, RequesterID: "ngo1", RequesterOrg: "x", Quantity: 2})
		}(i, id)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("claim %d failed: %v", i, err)
		}
	}
}
