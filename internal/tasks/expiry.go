// server/internal/tasks/expiry.go
package tasks

import (
	"context"
	"log"
	"time"

	"food-bridge-api-server/internal/models"
	"food-bridge-api-server/internal/store"

	"github.com/hibiken/asynq"
)

const (
	// ExpireSweepTask runs on a schedule and retires listings past expiry.
	ExpireSweepTask = "listing:expire_sweep"
)

// NewExpireSweepTask builds the periodic sweep task. It carries no payload;
// the sweep always scans the full claimable set.
func NewExpireSweepTask() *asynq.Task {
	return asynq.NewTask(ExpireSweepTask, nil)
}

// Sweeper moves claimable listings whose expiry time has passed into the
// expired state.
type Sweeper struct {
	store store.ListingStore
	now   func() time.Time
}

func NewSweeper(s store.ListingStore) *Sweeper {
	return &Sweeper{store: s, now: time.Now}
}

// Handler registers the sweep job handler.
func (s *Sweeper) Handler() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(ExpireSweepTask, s.handleSweep)
	return mux
}

func (s *Sweeper) handleSweep(ctx context.Context, task *asynq.Task) error {
	expired, err := s.Sweep(ctx)
	if err != nil {
		return err
	}
	if expired > 0 {
		log.Printf("Expiry sweep retired %d listing(s)", expired)
	}
	return nil
}

// Sweep scans claimable listings and expires the stale ones. The status
// condition on the update keeps a sweep from clobbering a claim that lands
// mid-scan: a listing that just went to "requested" no longer matches.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	listings, err := s.store.ListActive(ctx)
	if err != nil {
		return 0, err
	}

	cutoff := s.now()
	expired := 0
	for _, l := range listings {
		if !l.ExpiryTime.Before(cutoff) {
			continue
		}
		ok, err := s.store.UpdateStatus(ctx, l.ListingID, models.ClaimableStatuses, models.StatusExpired)
		if err != nil {
			return expired, err
		}
		if ok {
			expired++
		}
	}
	return expired, nil
}
