package gtfs

import (
	"log/slog"
	"time"

	"nextdeparture.onebusaway.org/internal/schedule"
)

// NewMockManager returns a Manager serving snap without loading any feed.
// A nil snap behaves like a manager whose first load has not completed.
func NewMockManager(snap *schedule.Snapshot, loc *time.Location) *Manager {
	manager := &Manager{
		logger:       slog.Default(),
		shutdownChan: make(chan struct{}),
	}
	if loc != nil {
		manager.location.Store(loc)
	}
	if snap != nil {
		manager.version.Store(snap.Version)
		manager.snapshot.Store(snap)
	}
	return manager
}

// MockSetSnapshot publishes snap as if a refresh had produced it.
func (manager *Manager) MockSetSnapshot(snap *schedule.Snapshot) {
	manager.snapshot.Store(snap)
}
