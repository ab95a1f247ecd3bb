package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func mapLookup(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		env         map[string]string
		expectError bool
		check       func(t *testing.T, cfg Config)
	}{
		{
			name: "defaults",
			env:  map[string]string{},
			check: func(t *testing.T, cfg Config) {
				require.Equal(t, Default(), cfg)
				require.Equal(t, ":8080", cfg.Addr())
			},
		},
		{
			name: "overrides",
			env: map[string]string{
				"PORT":                  "9090",
				"LOG_LEVEL":             "debug",
				"SEED_FILE":             "fixtures/demo.yaml",
				"WATCH_INTERVAL":        "2s",
				"ENDING_SOON_THRESHOLD": "30s",
				"BID_RATE_PER_MINUTE":   "120",
				"BCRYPT_COST":           "12",
			},
			check: func(t *testing.T, cfg Config) {
				require.Equal(t, ":9090", cfg.Addr())
				require.Equal(t, "debug", cfg.LogLevel)
				require.Equal(t, "fixtures/demo.yaml", cfg.SeedFile)
				require.Equal(t, 2*time.Second, cfg.WatchInterval)
				require.Equal(t, 30*time.Second, cfg.EndingSoonThreshold)
				require.Equal(t, 120, cfg.BidRatePerMinute)
				require.Equal(t, 12, cfg.BcryptCost)
				require.Equal(t, 10, cfg.BidRateBurst)
			},
		},
		{
			name: "empty_value_keeps_default",
			env:  map[string]string{"PORT": ""},
			check: func(t *testing.T, cfg Config) {
				require.Equal(t, "8080", cfg.Port)
			},
		},
		{name: "malformed_duration", env: map[string]string{"WATCH_INTERVAL": "often"}, expectError: true},
		{name: "negative_duration", env: map[string]string{"NOTIFICATION_TTL": "-1s"}, expectError: true},
		{name: "malformed_int", env: map[string]string{"BID_RATE_BURST": "ten"}, expectError: true},
		{name: "zero_int", env: map[string]string{"WS_SEND_BUFFER": "0"}, expectError: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := FromLookup(mapLookup(tc.env))
			if tc.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tc.check(t, cfg)
		})
	}
}

func TestLoadEnvConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("AUCTION_CONFIG_TEST_MARKER=loaded\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("AUCTION_CONFIG_TEST_MARKER") })

	_, err := LoadEnvConfig(path)
	require.NoError(t, err)
	require.Equal(t, "loaded", os.Getenv("AUCTION_CONFIG_TEST_MARKER"))

	_, err = LoadEnvConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err, "a missing env file falls back to the environment")
}
