package gtfs

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jamespfennell/gtfs"
	"nextdeparture.onebusaway.org/internal/logging"
	"nextdeparture.onebusaway.org/internal/metrics"
	"nextdeparture.onebusaway.org/internal/schedule"
)

// Manager loads the GTFS feed and publishes it as an immutable
// schedule.Snapshot. Readers always see a complete snapshot; a refresh swaps
// the whole value.
type Manager struct {
	config   Config
	logger   *slog.Logger
	metrics  *metrics.Collector
	client   *http.Client

	snapshot atomic.Pointer[schedule.Snapshot]
	location atomic.Pointer[time.Location]
	version  atomic.Uint64

	// refreshMu serialises refreshes; readers never take it.
	refreshMu sync.Mutex

	shutdownChan chan struct{}
	wg           sync.WaitGroup
	shutdownOnce sync.Once
}

// InitGTFSManager loads the feed once and, for remote feeds, starts the
// periodic refresh.
func InitGTFSManager(ctx context.Context, config Config, logger *slog.Logger, collector *metrics.Collector) (*Manager, error) {
	if logger == nil {
		logger = slog.Default()
	}

	manager := &Manager{
		config:       config,
		logger:       logger,
		metrics:      collector,
		client:       &http.Client{Timeout: config.fetchTimeout()},
		shutdownChan: make(chan struct{}),
	}

	if err := manager.Refresh(ctx); err != nil {
		return nil, err
	}

	if !config.isLocalFile() {
		manager.wg.Add(1)
		go manager.updateStaticGTFS()
	}

	return manager, nil
}

// Snapshot returns the snapshot currently served. It is nil only before the
// first successful load.
func (manager *Manager) Snapshot() *schedule.Snapshot {
	return manager.snapshot.Load()
}

// Location returns the timezone schedule times are expressed in.
func (manager *Manager) Location() *time.Location {
	if loc := manager.location.Load(); loc != nil {
		return loc
	}
	return time.UTC
}

// LastUpdated returns when the served snapshot was loaded.
func (manager *Manager) LastUpdated() time.Time {
	if snap := manager.Snapshot(); snap != nil {
		return snap.LoadedAt
	}
	return time.Time{}
}

// Refresh loads the feed and publishes a new snapshot. On failure the
// previous snapshot stays in place.
func (manager *Manager) Refresh(ctx context.Context) error {
	manager.refreshMu.Lock()
	defer manager.refreshMu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, manager.config.fetchTimeout())
	defer cancel()

	start := time.Now()
	staticData, err := manager.loadGTFSData(ctx)
	if err != nil {
		manager.metrics.ObserveRefreshError()
		return err
	}

	if err := manager.setStaticGTFS(staticData, time.Since(start)); err != nil {
		manager.metrics.ObserveRefreshError()
		return err
	}
	return nil
}

// updateStaticGTFS refreshes a remote feed on a fixed interval until shutdown.
func (manager *Manager) updateStaticGTFS() {
	defer manager.wg.Done()

	ticker := time.NewTicker(manager.config.refreshInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithCancel(context.Background())
			go func() {
				select {
				case <-manager.shutdownChan:
					cancel()
				case <-ctx.Done():
				}
			}()

			if err := manager.Refresh(ctx); err != nil {
				// Keep serving the previous snapshot.
				logging.LogError(manager.logger, "error updating GTFS data", err,
					slog.String("component", "gtfs_manager"),
					slog.String("source", manager.config.GtfsURL))
			}
			cancel()
		case <-manager.shutdownChan:
			logging.LogOperation(manager.logger, "shutting down static GTFS updates",
				slog.String("component", "gtfs_manager"))
			return
		}
	}
}

func (manager *Manager) setStaticGTFS(staticData *gtfs.Static, took time.Duration) error {
	loc, err := manager.resolveLocation(staticData)
	if err != nil {
		return err
	}

	now := time.Now()
	version := manager.version.Add(1)
	snap := BuildSnapshot(staticData, version, now)
	if manager.config.Timezone != "" {
		snap.Timezone = manager.config.Timezone
	}

	manager.location.Store(loc)
	manager.snapshot.Store(snap)
	manager.metrics.ObserveRefresh(version, len(snap.Trips), took, now)

	if manager.config.Verbose {
		logging.LogOperation(manager.logger, "gtfs_snapshot_published",
			slog.String("source", manager.config.GtfsURL),
			slog.Uint64("version", version),
			slog.Int("trips", len(snap.Trips)),
			slog.Int("frequencies", len(snap.Frequencies)),
			slog.Int("stop_times", len(snap.StopTimes)),
			slog.Duration("duration", took))
	}
	return nil
}

func (manager *Manager) resolveLocation(staticData *gtfs.Static) (*time.Location, error) {
	name := manager.config.Timezone
	if name == "" && len(staticData.Agencies) > 0 {
		name = staticData.Agencies[0].Timezone
	}
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid feed timezone %q: %w", name, err)
	}
	return loc, nil
}

// Shutdown stops the background refresh and waits for it to exit.
func (manager *Manager) Shutdown() {
	manager.shutdownOnce.Do(func() {
		close(manager.shutdownChan)
		manager.wg.Wait()
	})
}

// LogStatistics logs a summary of the served snapshot.
func (manager *Manager) LogStatistics() {
	snap := manager.Snapshot()
	if snap == nil {
		manager.logger.Warn("no GTFS snapshot loaded", slog.String("source", manager.config.GtfsURL))
		return
	}
	manager.logger.Info("gtfs statistics",
		slog.String("source", manager.config.GtfsURL),
		slog.Bool("local_file", manager.config.isLocalFile()),
		slog.Time("last_updated", snap.LoadedAt),
		slog.String("timezone", manager.Location().String()),
		slog.Int("services", len(snap.Rules)),
		slog.Int("exceptions", len(snap.Exceptions)),
		slog.Int("trips", len(snap.Trips)),
		slog.Int("frequencies", len(snap.Frequencies)),
		slog.Int("stop_times", len(snap.StopTimes)))
}
