package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/gearbox/internal/account/store"
)

// HousekeepingService periodically deletes expired reset codes and dead
// refresh tokens so neither table grows without bound.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration
	Clock    Clock

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a new housekeeping service with the given interval.
// If interval is 0 or negative, defaults to 1 hour.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}

	return &HousekeepingService{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start runs the worker in the background. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop blocks until any in-progress cleanup has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run cleanup immediately on startup
	s.cleanup(context.Background())

	for {
		select {
		case <-ticker.C:
			s.cleanup(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// cleanup deletes expired rows. Each table is independent; a failure in one
// does not stop the other.
func (s *HousekeepingService) cleanup(ctx context.Context) (resetCodes, refreshTokens int64) {
	now := s.Clock.now()

	n, err := s.Store.ResetCodes().DeleteExpiredResetCodes(ctx, now)
	if err != nil {
		s.Logger.Error("failed to delete expired reset codes", "error", err)
	} else {
		resetCodes = n
	}

	n, err = s.Store.RefreshTokens().DeleteExpiredRefreshTokens(ctx, now)
	if err != nil {
		s.Logger.Error("failed to delete expired refresh tokens", "error", err)
	} else {
		refreshTokens = n
	}

	s.Logger.Info("housekeeping cleanup completed",
		"reset_codes", resetCodes,
		"refresh_tokens", refreshTokens,
	)
	return resetCodes, refreshTokens
}
