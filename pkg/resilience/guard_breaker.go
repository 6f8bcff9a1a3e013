// Package resilience provides fault tolerance helpers for external service calls.
package resilience

import (
	"time"

	"github.com/sony/gobreaker"

	"guard_server/pkg/logger"
)

// BreakerSettings returns the circuit breaker settings shared by all outbound
// adapters. Trips on 5 consecutive failures, or on a 60% failure ratio once
// at least 10 requests have been observed.
func BreakerSettings(name string) gobreaker.Settings {
	return gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.ConsecutiveFailures > 5 ||
				(counts.Requests >= 10 && failureRatio >= 0.6)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithField("breaker", name).
				Warn("circuit breaker state changed from %s to %s", from.String(), to.String())
		},
	}
}

// NewBreaker creates a circuit breaker with the shared settings.
func NewBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(BreakerSettings(name))
}
