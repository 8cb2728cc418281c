package backoff

import (
	"testing"
	"time"

	"github.com/architeacher/svc-ticket-aggregator/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestExponentialBackoff(t *testing.T) {
	t.Parallel()

	cfg := config.BackoffConfig{
		BaseDelay:  time.Second,
		Multiplier: 2,
		Jitter:     0,
		MaxDelay:   5 * time.Second,
	}

	strategy := NewExponentialStrategy(cfg)

	testCases := []struct {
		name     string
		retries  int
		expected time.Duration
	}{
		{
			name:     "first attempt uses base delay",
			retries:  0,
			expected: time.Second,
		},
		{
			name:     "second attempt doubles",
			retries:  1,
			expected: 2 * time.Second,
		},
		{
			name:     "third attempt doubles again",
			retries:  2,
			expected: 4 * time.Second,
		},
		{
			name:     "delay is capped at max delay",
			retries:  3,
			expected: 5 * time.Second,
		},
		{
			name:     "large retry counts stay capped",
			retries:  10,
			expected: 5 * time.Second,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, strategy.Backoff(tc.retries))
		})
	}
}

func TestExponentialBackoffJitterBounds(t *testing.T) {
	t.Parallel()

	cfg := config.BackoffConfig{
		BaseDelay:  time.Second,
		Multiplier: 2,
		Jitter:     0.2,
		MaxDelay:   5 * time.Second,
	}

	strategy := NewExponentialStrategy(cfg)

	for range 100 {
		delay := strategy.Backoff(1)
		assert.GreaterOrEqual(t, delay, time.Duration(float64(2*time.Second)*0.8))
		assert.LessOrEqual(t, delay, time.Duration(float64(2*time.Second)*1.2))
	}
}
