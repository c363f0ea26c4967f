package gtfs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/jamespfennell/gtfs"
	"nextdeparture.onebusaway.org/internal/logging"
)

const cacheFileName = "gtfs.zip"

// rawGtfsData reads the feed archive from disk or downloads it.
func (manager *Manager) rawGtfsData(ctx context.Context) ([]byte, error) {
	if manager.config.isLocalFile() {
		b, err := os.ReadFile(manager.config.GtfsURL)
		if err != nil {
			return nil, fmt.Errorf("error reading local GTFS file: %w", err)
		}
		return b, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, manager.config.GtfsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating GTFS request: %w", err)
	}
	resp, err := manager.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error downloading GTFS data: %w", err)
	}
	defer logging.SafeCloseWithLogging(resp.Body, manager.logger, "gtfs_download")

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error downloading GTFS data: unexpected status %d", resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading GTFS data: %w", err)
	}
	return b, nil
}

func (manager *Manager) cachePath() string {
	if manager.config.CacheDir == "" {
		return ""
	}
	return filepath.Join(manager.config.CacheDir, cacheFileName)
}

// writeCache stores b atomically: it is written to a temporary file first and
// renamed over the previous copy.
func (manager *Manager) writeCache(b []byte) error {
	path := manager.cachePath()
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(manager.config.CacheDir, 0o755); err != nil {
		return fmt.Errorf("error creating cache directory: %w", err)
	}

	tmp, err := os.CreateTemp(manager.config.CacheDir, "gtfs-*.zip.tmp")
	if err != nil {
		return fmt.Errorf("error creating cache file: %w", err)
	}
	tmpName := tmp.Name()

	err = func() (err error) {
		defer logging.HandleDeferredError(&err, tmp.Close, manager.logger, "gtfs_cache_close")
		if _, err := tmp.Write(b); err != nil {
			return fmt.Errorf("error writing cache file: %w", err)
		}
		return tmp.Sync()
	}()
	if err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, path)
}

func (manager *Manager) readCache() ([]byte, error) {
	path := manager.cachePath()
	if path == "" {
		return nil, os.ErrNotExist
	}
	return os.ReadFile(path)
}

// loadGTFSData fetches and parses the feed. A remote feed that cannot be
// downloaded is replaced by the cached copy when one exists.
func (manager *Manager) loadGTFSData(ctx context.Context) (*gtfs.Static, error) {
	b, err := manager.rawGtfsData(ctx)
	fromCache := false
	if err != nil {
		if manager.config.isLocalFile() {
			return nil, err
		}
		cached, cacheErr := manager.readCache()
		if cacheErr != nil {
			return nil, err
		}
		logging.LogError(manager.logger, "using cached GTFS feed", err,
			slog.String("component", "gtfs_manager"),
			slog.String("cache", manager.cachePath()))
		b, fromCache = cached, true
	}

	staticData, err := gtfs.ParseStatic(b, gtfs.ParseStaticOptions{})
	if err != nil {
		return nil, fmt.Errorf("error parsing GTFS data: %w", err)
	}

	if !fromCache && !manager.config.isLocalFile() {
		if err := manager.writeCache(b); err != nil {
			logging.LogError(manager.logger, "failed to cache GTFS feed", err,
				slog.String("component", "gtfs_manager"))
		}
	}

	return staticData, nil
}
