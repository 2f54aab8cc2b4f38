package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Session.PageSize)
	assert.Equal(t, 500*time.Millisecond, cfg.Session.DebounceDelay)
	assert.Equal(t, 10, cfg.Session.LowStockThreshold)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.True(t, cfg.Seed.Default)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, "catalog:notifications", cfg.Redis.Channel)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	yaml := `page_size: 12
debounce_delay: 250ms
http:
  addr: ":9090"
log:
  level: debug
seed:
  default: false
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	t.Setenv("CATALOG_LOW_STOCK_THRESHOLD", "5")
	t.Setenv("CATALOG_HTTP_ADDR", ":7070")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Session.PageSize)
	assert.Equal(t, 250*time.Millisecond, cfg.Session.DebounceDelay)
	assert.Equal(t, 5, cfg.Session.LowStockThreshold)
	assert.Equal(t, ":7070", cfg.HTTP.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Seed.Default)
}

func TestLoad_DebounceDelayUnits(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Duration
	}{
		{"bare number is milliseconds", "500", 500 * time.Millisecond},
		{"zero disables the wait", "0", 0},
		{"duration string", "1s", time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CATALOG_DEBOUNCE_DELAY", tt.raw)

			cfg, err := Load("")
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Session.DebounceDelay)
		})
	}
}

func TestLoad_DebounceDelayFromYAMLNumber(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("debounce_delay: 300\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 300*time.Millisecond, cfg.Session.DebounceDelay)
}

func TestLoad_InvalidDebounceDelay(t *testing.T) {
	t.Setenv("CATALOG_DEBOUNCE_DELAY", "soon")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), KeyDebounceDelay)
}

func TestLoad_InvalidPageSize(t *testing.T) {
	t.Setenv("CATALOG_PAGE_SIZE", "0")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page size")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
