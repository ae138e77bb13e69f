package geocoding

import (
	"context"

	"github.com/baeza-marine/booking-service/internal/circuitbreaker"
	"github.com/baeza-marine/booking-service/internal/domain/model"
	"github.com/baeza-marine/booking-service/internal/metrics"
)

// GeocoderWithCircuitBreaker wraps a Geocoder with circuit breaker
// protection. When the upstream flaps, the breaker fails lookups fast so
// the booking flow degrades to "fee confirmed manually" without waiting on
// timeouts.
type GeocoderWithCircuitBreaker struct {
	next    Geocoder
	breaker *circuitbreaker.CircuitBreaker
}

// NewGeocoderWithCircuitBreaker creates a circuit-breaking geocoder wrapper.
func NewGeocoderWithCircuitBreaker(next Geocoder, cb *circuitbreaker.CircuitBreaker) *GeocoderWithCircuitBreaker {
	return &GeocoderWithCircuitBreaker{next: next, breaker: cb}
}

// Geocode delegates to the wrapped geocoder under the circuit breaker.
// ErrNoResult counts as a success for breaker purposes: the upstream
// answered, it simply had no match.
func (g *GeocoderWithCircuitBreaker) Geocode(ctx context.Context, query string) (model.Coordinate, error) {
	var coord model.Coordinate
	var lookupErr error

	err := g.breaker.Execute(ctx, func() error {
		coord, lookupErr = g.next.Geocode(ctx, query)
		if lookupErr == ErrNoResult {
			return nil
		}
		return lookupErr
	})

	if err == circuitbreaker.ErrCircuitOpen {
		metrics.RecordGeocodingRequest("circuit_open", 0)
		return model.Coordinate{}, err
	}
	if lookupErr != nil {
		return model.Coordinate{}, lookupErr
	}
	return coord, err
}

// Breaker returns the underlying circuit breaker for health monitoring.
func (g *GeocoderWithCircuitBreaker) Breaker() *circuitbreaker.CircuitBreaker {
	return g.breaker
}
