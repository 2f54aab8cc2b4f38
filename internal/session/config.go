package session

import (
	"fmt"
	"time"
)

// Defaults used when no configuration overrides them.
const (
	DefaultPageSize          = 8
	DefaultDebounceDelay     = 500 * time.Millisecond
	DefaultLowStockThreshold = 10
)

// Config holds the fixed parameters of a catalog session.
type Config struct {
	PageSize          int
	DebounceDelay     time.Duration
	LowStockThreshold int
}

// DefaultConfig returns the default session parameters.
func DefaultConfig() Config {
	return Config{
		PageSize:          DefaultPageSize,
		DebounceDelay:     DefaultDebounceDelay,
		LowStockThreshold: DefaultLowStockThreshold,
	}
}

// Validate rejects parameters a session cannot run with.
func (c Config) Validate() error {
	if c.PageSize <= 0 {
		return fmt.Errorf("page size must be greater than zero, got %d", c.PageSize)
	}
	if c.DebounceDelay < 0 {
		return fmt.Errorf("debounce delay cannot be negative, got %s", c.DebounceDelay)
	}
	if c.LowStockThreshold < 0 {
		return fmt.Errorf("low stock threshold cannot be negative, got %d", c.LowStockThreshold)
	}
	return nil
}
