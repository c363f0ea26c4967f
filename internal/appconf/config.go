// Package appconf loads the process configuration.
//
// Values are layered, later sources winning: built-in defaults, environment
// variables (a .env file in the working directory is loaded first), an
// optional YAML file given by -config or CONFIG_FILE, and finally any flag set
// explicitly on the command line. The result is validated with struct tags.
package appconf

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"nextdeparture.onebusaway.org/internal/utils"
)

// RouteConfig selects the trips whose departures are reported.
type RouteConfig struct {
	RouteID     string `yaml:"id" validate:"required,gtfsid"`
	StopID      string `yaml:"stop" validate:"omitempty,gtfsid"`
	DirectionID string `yaml:"direction" validate:"omitempty,oneof=0 1"`
	Headsign    string `yaml:"headsign" validate:"freetext"`
}

// Config holds all the configuration settings of the application.
type Config struct {
	Port    int         `yaml:"port" validate:"gt=0,lte=65535"`
	EnvName string      `yaml:"env" validate:"oneof=development test production"`
	Env     Environment `yaml:"-"`
	Verbose bool        `yaml:"verbose"`

	GtfsURL         string        `yaml:"gtfsURL" validate:"required"`
	CacheDir        string        `yaml:"cacheDir"`
	Timezone        string        `yaml:"timezone"`
	RefreshInterval time.Duration `yaml:"refreshInterval" validate:"gte=0"`

	Route           RouteConfig `yaml:"route"`
	DedupeTolerance int         `yaml:"dedupeToleranceSeconds" validate:"gte=0,lte=600"`
	RateLimit       int         `yaml:"rateLimit" validate:"gte=0"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Port:            4000,
		EnvName:         "development",
		GtfsURL:         "https://www.soundtransit.org/GTFS-rail/40_gtfs.zip",
		RefreshInterval: 24 * time.Hour,
		DedupeTolerance: 10,
		RateLimit:       100,
	}
}

// Load builds the configuration from the environment and command line
// arguments (without the program name).
func Load(args []string, stderr io.Writer) (Config, error) {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	cfg := Default()
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	configPath := os.Getenv("CONFIG_FILE")
	flagged := cfg

	fs := flag.NewFlagSet("nextdeparture", flag.ContinueOnError)
	if stderr != nil {
		fs.SetOutput(stderr)
	}
	fs.StringVar(&configPath, "config", configPath, "Path to a YAML configuration file")
	fs.IntVar(&flagged.Port, "port", cfg.Port, "API server port")
	fs.StringVar(&flagged.EnvName, "env", cfg.EnvName, "Environment (development|test|production)")
	fs.BoolVar(&flagged.Verbose, "verbose", cfg.Verbose, "Log every feed refresh")
	fs.StringVar(&flagged.GtfsURL, "gtfs-url", cfg.GtfsURL, "URL or local path of a static GTFS zip file")
	fs.StringVar(&flagged.CacheDir, "cache-dir", cfg.CacheDir, "Directory keeping the last downloaded feed")
	fs.StringVar(&flagged.Timezone, "timezone", cfg.Timezone, "Timezone overriding the feed's agency timezone")
	fs.DurationVar(&flagged.RefreshInterval, "refresh-interval", cfg.RefreshInterval, "How often a remote feed is downloaded")
	fs.StringVar(&flagged.Route.RouteID, "route", cfg.Route.RouteID, "Route id to report departures for")
	fs.StringVar(&flagged.Route.StopID, "stop", cfg.Route.StopID, "Stop id; empty uses frequency windows instead of stop times")
	fs.StringVar(&flagged.Route.DirectionID, "direction", cfg.Route.DirectionID, "Optional direction id (0|1)")
	fs.StringVar(&flagged.Route.Headsign, "headsign", cfg.Route.Headsign, "Optional headsign substring")
	fs.IntVar(&flagged.DedupeTolerance, "dedupe-tolerance", cfg.DedupeTolerance, "Seconds under which two departures are reported as one (0 disables)")
	fs.IntVar(&flagged.RateLimit, "rate-limit", cfg.RateLimit, "Requests per second allowed per client")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if configPath != "" {
		if err := applyFile(&cfg, configPath); err != nil {
			return Config{}, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		applyFlag(&cfg, &flagged, f.Name)
	})

	cfg.EnvName = strings.ToLower(strings.TrimSpace(cfg.EnvName))
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	cfg.Env = EnvFlagToEnvironment(cfg.EnvName)

	return cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg Config) error {
	v := validator.New()
	_ = v.RegisterValidation("gtfsid", func(fl validator.FieldLevel) bool {
		return utils.ValidateID(fl.Field().String()) == nil
	})
	_ = v.RegisterValidation("freetext", func(fl validator.FieldLevel) bool {
		return utils.ValidateQuery(fl.Field().String()) == nil
	})
	if err := v.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("error parsing config file %s: %w", path, err)
	}
	return nil
}

func applyFlag(cfg, flagged *Config, name string) {
	switch name {
	case "port":
		cfg.Port = flagged.Port
	case "env":
		cfg.EnvName = flagged.EnvName
	case "verbose":
		cfg.Verbose = flagged.Verbose
	case "gtfs-url":
		cfg.GtfsURL = flagged.GtfsURL
	case "cache-dir":
		cfg.CacheDir = flagged.CacheDir
	case "timezone":
		cfg.Timezone = flagged.Timezone
	case "refresh-interval":
		cfg.RefreshInterval = flagged.RefreshInterval
	case "route":
		cfg.Route.RouteID = flagged.Route.RouteID
	case "stop":
		cfg.Route.StopID = flagged.Route.StopID
	case "direction":
		cfg.Route.DirectionID = flagged.Route.DirectionID
	case "headsign":
		cfg.Route.Headsign = flagged.Route.Headsign
	case "dedupe-tolerance":
		cfg.DedupeTolerance = flagged.DedupeTolerance
	case "rate-limit":
		cfg.RateLimit = flagged.RateLimit
	}
}

func applyEnv(cfg *Config) error {
	cfg.EnvName = getenvDefault("ENV", cfg.EnvName)
	cfg.GtfsURL = getenvDefault("GTFS_URL", cfg.GtfsURL)
	cfg.CacheDir = getenvDefault("CACHE_DIR", cfg.CacheDir)
	cfg.Timezone = getenvDefault("FEED_TIMEZONE", cfg.Timezone)
	cfg.Route.RouteID = getenvDefault("ROUTE_ID", cfg.Route.RouteID)
	cfg.Route.StopID = getenvDefault("STOP_ID", cfg.Route.StopID)
	cfg.Route.DirectionID = getenvDefault("DIRECTION_ID", cfg.Route.DirectionID)
	cfg.Route.Headsign = getenvDefault("HEADSIGN", cfg.Route.Headsign)

	if v := os.Getenv("VERBOSE"); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			cfg.Verbose = true
		default:
			cfg.Verbose = false
		}
	}

	var err error
	if cfg.Port, err = getenvInt("PORT", cfg.Port); err != nil {
		return err
	}
	if cfg.RateLimit, err = getenvInt("RATE_LIMIT", cfg.RateLimit); err != nil {
		return err
	}
	if cfg.DedupeTolerance, err = getenvInt("DEDUPE_TOLERANCE_SECONDS", cfg.DedupeTolerance); err != nil {
		return err
	}
	if v := os.Getenv("REFRESH_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return fmt.Errorf("invalid REFRESH_INTERVAL: %q", v)
		}
		cfg.RefreshInterval = d
	}
	return nil
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", k, v)
	}
	return n, nil
}
