package service

import (
	"context"
	"time"

	"github.com/quollsec/scanhub/internal/api/store"
	"github.com/quollsec/scanhub/pkg/slogx"
)

// HousekeepingService periodically purges expired and consumed activation
// codes so the otp table does not grow unbounded.
type HousekeepingService struct {
	Store    store.Store
	Interval time.Duration
}

// Run blocks, sweeping at the configured interval until ctx is cancelled.
func (s *HousekeepingService) Run(ctx context.Context) {
	interval := s.Interval
	if interval <= 0 {
		interval = time.Hour
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log := slogx.FromContext(ctx)
	log.Info("housekeeping started", "interval", interval)

	for {
		select {
		case <-ctx.Done():
			log.Info("housekeeping stopped")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs one purge pass.
func (s *HousekeepingService) Sweep(ctx context.Context) {
	if err := s.Store.OTPs().DeleteStaleOTPs(ctx); err != nil {
		slogx.FromContext(ctx).Error("stale otp purge failed", "err", err)
	}
}
