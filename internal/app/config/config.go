package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"wowcpe/internal/app/wcpe/classical"
	"wowcpe/internal/pkg/logging"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	defaultStationTimezone    = "America/New_York"
	defaultAvailabilityWindow = 7 * 24 * time.Hour
	defaultHTTPTimeout        = 10 * time.Second
	defaultCacheTTL           = 10 * time.Minute
	defaultLogLevel           = zapcore.InfoLevel
)

type OptionLog struct {
	Level      string `json:"level,omitempty" yaml:"level,omitempty"`           // minimum level that gets collected: debug, info, warn or error
	FileName   string `json:"fileName,omitempty" yaml:"fileName,omitempty"`     // log file location; empty keeps logs on stderr
	MaxSize    int    `json:"maxSize,omitempty" yaml:"maxSize,omitempty"`       // maximum size in MB of a log file before it gets rotated
	MaxAge     int    `json:"maxAge,omitempty" yaml:"maxAge,omitempty"`         // maximum number of days to retain old log files
	MaxBackups int    `json:"maxBackups,omitempty" yaml:"maxBackups,omitempty"` // maximum number of old log files to retain
	Console    bool   `json:"console,omitempty" yaml:"console,omitempty"`       // also copy file output to stderr
	StackTrace bool   `json:"stackTrace,omitempty" yaml:"stackTrace,omitempty"` // record a stack trace for error-level output
}

type Config struct {
	Station *classical.Config `json:"station,omitempty" yaml:"station,omitempty"` // station site settings
	Headers map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"` // custom HTTP request headers

	OptionStationTimezone string         `json:"stationTimezone,omitempty" yaml:"stationTimezone,omitempty"` // station broadcast timezone; empty selects US Eastern
	StationTimezone       *time.Location `json:"-" yaml:"-"`                                                 // filled by Validate()

	OptionAvailabilityWindow string        `json:"availabilityWindow,omitempty" yaml:"availabilityWindow,omitempty"` // trailing window the station publishes playlists for, e.g. 168h
	AvailabilityWindow       time.Duration `json:"-" yaml:"-"`                                                       // filled by Validate()

	OptionHTTPTimeout string        `json:"httpTimeout,omitempty" yaml:"httpTimeout,omitempty"` // timeout of a single page fetch, e.g. 10s
	HTTPTimeout       time.Duration `json:"-" yaml:"-"`                                         // filled by Validate()

	CacheDir       string        `json:"cacheDir,omitempty" yaml:"cacheDir,omitempty"` // page cache directory; empty selects "pages" next to the executable
	OptionCacheTTL string        `json:"cacheTTL,omitempty" yaml:"cacheTTL,omitempty"` // how long a cached page stays fresh, e.g. 10m; 0 never expires
	CacheTTL       time.Duration `json:"-" yaml:"-"`                                   // filled by Validate()

	Log *OptionLog `json:"log,omitempty" yaml:"log,omitempty"` // logging settings
}

func (c *Config) Validate() error {
	// The station settings must be sound.
	if c.Station == nil {
		c.Station = &classical.Config{}
	}
	if err := c.Station.Validate(); err != nil {
		return err
	}

	// Fill the station timezone.
	tzName := c.OptionStationTimezone
	if tzName == "" {
		tzName = defaultStationTimezone
	}
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return fmt.Errorf("unknown station timezone %q: %w", tzName, err)
	}
	c.StationTimezone = loc

	// Fill the availability window.
	c.AvailabilityWindow = defaultAvailabilityWindow
	if c.OptionAvailabilityWindow != "" {
		window, err := time.ParseDuration(c.OptionAvailabilityWindow)
		if err != nil {
			return fmt.Errorf("invalid availability window %q: %w", c.OptionAvailabilityWindow, err)
		} else if window <= 0 {
			return errors.New("the availability window must be positive")
		}
		c.AvailabilityWindow = window
	}

	// Fill the page fetch timeout.
	c.HTTPTimeout = defaultHTTPTimeout
	if c.OptionHTTPTimeout != "" {
		timeout, err := time.ParseDuration(c.OptionHTTPTimeout)
		if err != nil {
			return fmt.Errorf("invalid http timeout %q: %w", c.OptionHTTPTimeout, err)
		} else if timeout <= 0 {
			return errors.New("the http timeout must be positive")
		}
		c.HTTPTimeout = timeout
	}

	// Fill the page cache TTL.
	c.CacheTTL = defaultCacheTTL
	if c.OptionCacheTTL != "" {
		ttl, err := time.ParseDuration(c.OptionCacheTTL)
		if err != nil {
			return fmt.Errorf("invalid cache TTL %q: %w", c.OptionCacheTTL, err)
		} else if ttl < 0 {
			return errors.New("the cache TTL cannot be negative")
		}
		c.CacheTTL = ttl
	}

	return nil
}

// LogConfig translates the raw log settings into the logging package's
// configuration. It runs before the global logger exists, so bad values are
// errors rather than warnings.
func (c *Config) LogConfig() (*logging.LogConfig, error) {
	lCfg := logging.LogConfig{
		Level: defaultLogLevel,
	}
	if c.Log == nil {
		return &lCfg, nil
	}

	if c.Log.Level != "" {
		level, err := zapcore.ParseLevel(c.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
		}
		lCfg.Level = level
	}

	lCfg.FileName = c.Log.FileName
	lCfg.MaxSize = c.Log.MaxSize
	lCfg.MaxAge = c.Log.MaxAge
	lCfg.MaxBackups = c.Log.MaxBackups
	lCfg.IsConsole = c.Log.Console
	lCfg.IsStackTrace = c.Log.StackTrace

	return &lCfg, nil
}

func Load(fPath string) (*Config, error) {
	// Read the config file.
	data, err := os.ReadFile(fPath)
	if err != nil {
		return nil, err
	}
	var config Config
	if err = yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func CreateDefaultCfg(fPath string) error {
	// Write the default config.
	f, err := os.Create(fPath)
	if err != nil {
		return err
	}
	defer f.Close()

	// Create the encoder.
	encoder := yaml.NewEncoder(f)

	// Default config.
	defaultCfg := Config{
		Station: &classical.Config{},
		Headers: map[string]string{
			"Accept-Language": "en-US,en;q=0.8",
		},
		OptionStationTimezone:    defaultStationTimezone,
		OptionAvailabilityWindow: "168h",
		OptionHTTPTimeout:        "10s",
		OptionCacheTTL:           "10m",
		Log: &OptionLog{
			Level: "info",
		},
	}

	return encoder.Encode(&defaultCfg)
}
