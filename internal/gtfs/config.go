package gtfs

import (
	"strings"
	"time"
)

// DefaultRefreshInterval is used when Config.RefreshInterval is zero.
const DefaultRefreshInterval = 24 * time.Hour

// Config holds the settings of the feed-loading Manager.
type Config struct {
	// GtfsURL is either an http(s) URL or a local path to a GTFS zip.
	GtfsURL string
	// CacheDir keeps the last successfully downloaded feed. Empty disables
	// the disk cache.
	CacheDir string
	// Timezone overrides the agency timezone of the feed.
	Timezone string
	// RefreshInterval is how often a remote feed is downloaded again.
	RefreshInterval time.Duration
	// FetchTimeout bounds a single download.
	FetchTimeout time.Duration
	Verbose      bool
}

func (config Config) isLocalFile() bool {
	return !strings.HasPrefix(config.GtfsURL, "http://") && !strings.HasPrefix(config.GtfsURL, "https://")
}

func (config Config) refreshInterval() time.Duration {
	if config.RefreshInterval > 0 {
		return config.RefreshInterval
	}
	return DefaultRefreshInterval
}

func (config Config) fetchTimeout() time.Duration {
	if config.FetchTimeout > 0 {
		return config.FetchTimeout
	}
	return 60 * time.Second
}
