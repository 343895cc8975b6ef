package translation

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerProvider wraps a Provider in a circuit breaker so a flapping
// upstream API fails fast instead of burning requests.
type BreakerProvider struct {
	inner Provider
	cb    *gobreaker.CircuitBreaker
}

// NewBreakerProvider creates a circuit-breaking wrapper around a provider.
// The breaker opens after three consecutive failures and probes again after
// thirty seconds.
func NewBreakerProvider(inner Provider) *BreakerProvider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        inner.Name(),
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})

	return &BreakerProvider{
		inner: inner,
		cb:    cb,
	}
}

// Translate runs the wrapped provider through the circuit breaker
func (b *BreakerProvider) Translate(ctx context.Context, text string) (string, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.inner.Translate(ctx, text)
	})
	if err != nil {
		return "", fmt.Errorf("translation via %s failed: %w", b.inner.Name(), err)
	}

	return result.(string), nil
}

// Name returns the wrapped provider name
func (b *BreakerProvider) Name() string {
	return b.inner.Name()
}

// IsAvailable reports the wrapped provider state, including an open breaker
func (b *BreakerProvider) IsAvailable() error {
	if b.cb.State() == gobreaker.StateOpen {
		return fmt.Errorf("circuit breaker open for provider %s", b.inner.Name())
	}
	return b.inner.IsAvailable()
}
