package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the auction server
type Config struct {
	Port                string
	LogLevel            string
	SeedFile            string
	WatchInterval       time.Duration
	EndingSoonThreshold time.Duration
	NotificationTTL     time.Duration
	BidRatePerMinute    int
	BidRateBurst        int
	WSSendBuffer        int
	WSPingInterval      time.Duration
	BcryptCost          int
	ShutdownTimeout     time.Duration
}

// Default returns the settings used when no variable overrides them
func Default() Config {
	return Config{
		Port:                "8080",
		LogLevel:            "info",
		WatchInterval:       5 * time.Second,
		EndingSoonThreshold: time.Minute,
		NotificationTTL:     5 * time.Second,
		BidRatePerMinute:    60,
		BidRateBurst:        10,
		WSSendBuffer:        256,
		WSPingInterval:      54 * time.Second,
		BcryptCost:          10,
		ShutdownTimeout:     10 * time.Second,
	}
}

// LoadEnvConfig reads envFile into the process environment, then builds the
// config from it. A missing envFile is not an error.
func LoadEnvConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds the config from the variables lookup resolves
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	p := parser{lookup: lookup}

	p.str("PORT", &cfg.Port)
	p.str("LOG_LEVEL", &cfg.LogLevel)
	p.str("SEED_FILE", &cfg.SeedFile)
	p.duration("WATCH_INTERVAL", &cfg.WatchInterval)
	p.duration("ENDING_SOON_THRESHOLD", &cfg.EndingSoonThreshold)
	p.duration("NOTIFICATION_TTL", &cfg.NotificationTTL)
	p.positiveInt("BID_RATE_PER_MINUTE", &cfg.BidRatePerMinute)
	p.positiveInt("BID_RATE_BURST", &cfg.BidRateBurst)
	p.positiveInt("WS_SEND_BUFFER", &cfg.WSSendBuffer)
	p.duration("WS_PING_INTERVAL", &cfg.WSPingInterval)
	p.positiveInt("BCRYPT_COST", &cfg.BcryptCost)
	p.duration("SHUTDOWN_TIMEOUT", &cfg.ShutdownTimeout)

	if p.err != nil {
		return Config{}, p.err
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server
func (c Config) Addr() string {
	return ":" + c.Port
}

// parser keeps the first error so callers can read every variable in sequence
type parser struct {
	lookup func(string) (string, bool)
	err    error
}

func (p *parser) value(key string) (string, bool) {
	if p.err != nil {
		return "", false
	}
	v, ok := p.lookup(key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (p *parser) str(key string, dst *string) {
	if v, ok := p.value(key); ok {
		*dst = v
	}
}

func (p *parser) duration(key string, dst *time.Duration) {
	v, ok := p.value(key)
	if !ok {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		p.err = fmt.Errorf("config: %s: %w", key, err)
		return
	}
	if d <= 0 {
		p.err = fmt.Errorf("config: %s must be positive, got %s", key, v)
		return
	}
	*dst = d
}

func (p *parser) positiveInt(key string, dst *int) {
	v, ok := p.value(key)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.err = fmt.Errorf("config: failed to parse %s: %w", key, err)
		return
	}
	if n <= 0 {
		p.err = fmt.Errorf("config: %s must be positive, got %d", key, n)
		return
	}
	*dst = n
}
