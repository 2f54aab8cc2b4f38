// Package config loads the catalog service configuration from an optional
// YAML file and CATALOG_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/rogerio-castellano/catalog-manager/internal/session"
)

// Config keys.
const (
	KeyPageSize          = "page_size"
	KeyDebounceDelay     = "debounce_delay"
	KeyLowStockThreshold = "low_stock_threshold"
	KeyHTTPAddr          = "http.addr"
	KeyRateLimit         = "http.rate_limit"
	KeyRateBurst         = "http.rate_burst"
	KeyLogLevel          = "log.level"
	KeyLogFormat         = "log.format"
	KeySeedDefault       = "seed.default"
	KeySeedCSV           = "seed.csv"
	KeyRedisAddr         = "redis.addr"
	KeyRedisChannel      = "redis.channel"
)

const envPrefix = "CATALOG"

type HTTP struct {
	Addr      string
	RateLimit float64
	RateBurst int
}

type Log struct {
	Level  string
	Format string
}

type Seed struct {
	Default bool
	CSV     string
}

type Redis struct {
	Addr    string
	Channel string
}

// Config is the full service configuration.
type Config struct {
	Session session.Config
	HTTP    HTTP
	Log     Log
	Seed    Seed
	Redis   Redis
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyPageSize, session.DefaultPageSize)
	v.SetDefault(KeyDebounceDelay, session.DefaultDebounceDelay.String())
	v.SetDefault(KeyLowStockThreshold, session.DefaultLowStockThreshold)
	v.SetDefault(KeyHTTPAddr, ":8080")
	v.SetDefault(KeyRateLimit, 20.0)
	v.SetDefault(KeyRateBurst, 40)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeySeedDefault, true)
	v.SetDefault(KeySeedCSV, "")
	v.SetDefault(KeyRedisAddr, "")
	v.SetDefault(KeyRedisChannel, "catalog:notifications")
}

// Load reads configuration from path (optional) and the environment.
// CATALOG_PAGE_SIZE overrides page_size, CATALOG_HTTP_ADDR overrides
// http.addr, and so on.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	delay, err := millisOrDuration(v.GetString(KeyDebounceDelay))
	if err != nil {
		return Config{}, fmt.Errorf("invalid config: %s: %w", KeyDebounceDelay, err)
	}

	cfg := Config{
		Session: session.Config{
			PageSize:          v.GetInt(KeyPageSize),
			DebounceDelay:     delay,
			LowStockThreshold: v.GetInt(KeyLowStockThreshold),
		},
		HTTP: HTTP{
			Addr:      v.GetString(KeyHTTPAddr),
			RateLimit: v.GetFloat64(KeyRateLimit),
			RateBurst: v.GetInt(KeyRateBurst),
		},
		Log: Log{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
		},
		Seed: Seed{
			Default: v.GetBool(KeySeedDefault),
			CSV:     v.GetString(KeySeedCSV),
		},
		Redis: Redis{
			Addr:    v.GetString(KeyRedisAddr),
			Channel: v.GetString(KeyRedisChannel),
		},
	}

	if err := cfg.Session.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	if cfg.HTTP.RateLimit < 0 || cfg.HTTP.RateBurst < 0 {
		return Config{}, fmt.Errorf("invalid config: rate limit and burst cannot be negative")
	}
	return cfg, nil
}

// millisOrDuration reads a bare integer as milliseconds and anything else
// as a Go duration string ("250ms", "1s").
func millisOrDuration(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if ms, err := strconv.Atoi(raw); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("want milliseconds or a duration such as 500ms, got %q", raw)
	}
	return d, nil
}
