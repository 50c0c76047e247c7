package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// nil retries every error; otherwise only errors it returns true for.
	ShouldRetry ShouldRetryFunc
}

// StartupConfig is used for dependency pings while the process boots.
func StartupConfig() Config {
	return Config{
		InitialInterval: 200 * time.Millisecond,
		MaxInterval:     2 * time.Second,
		MaxElapsedTime:  30 * time.Second,
		Randomization:   0.2,
		Multiplier:      2,
	}
}

// PublishConfig is short: the outbox relay retries leftovers on its next tick.
func PublishConfig() Config {
	return Config{
		InitialInterval: 50 * time.Millisecond,
		MaxInterval:     500 * time.Millisecond,
		MaxElapsedTime:  2 * time.Second,
		Randomization:   0.1,
		Multiplier:      2,
	}
}
