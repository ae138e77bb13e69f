package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/baeza-marine/booking-service/internal/domain/model"
	"github.com/baeza-marine/booking-service/internal/geocoding"
	"github.com/baeza-marine/booking-service/internal/metrics"
)

// feeTier maps a maximum distance (km, inclusive) to a travel fee in EUR.
type feeTier struct {
	MaxKm float64
	Fee   int
}

// feeTiers is the travel fee schedule from the home base. Beyond the last
// tier the fee requires manual validation.
var feeTiers = []feeTier{
	{MaxKm: 10, Fee: 0},
	{MaxKm: 20, Fee: 15},
	{MaxKm: 30, Fee: 25},
	{MaxKm: 50, Fee: 45},
	{MaxKm: 75, Fee: 70},
	{MaxKm: 100, Fee: 95},
	{MaxKm: 125, Fee: 120},
	{MaxKm: 150, Fee: 145},
	{MaxKm: 175, Fee: 170},
	{MaxKm: 200, Fee: 195},
	{MaxKm: 225, Fee: 220},
	{MaxKm: 250, Fee: 245},
}

// HomeBase is the workshop location in Andernos-les-Bains, the origin of
// every travel fee estimate.
var HomeBase = model.Coordinate{Lat: 44.7422, Lon: -1.0983}

// defaultEstimateTimeout bounds a single estimate, geocoding included.
const defaultEstimateTimeout = 5 * time.Second

// TravelFeeService estimates the travel fee for a customer address.
type TravelFeeService interface {
	// Estimate resolves the address and returns the distance and fee from
	// the home base. Returns nil when the address is incomplete or the
	// lookup fails; an estimate is a courtesy, never an error.
	Estimate(ctx context.Context, address model.CartAddress) *model.TravelEstimate
}

// TravelFeeServiceImpl implements TravelFeeService over a Geocoder.
type TravelFeeServiceImpl struct {
	geocoder geocoding.Geocoder
	homeBase model.Coordinate
	timeout  time.Duration
}

// NewTravelFeeService creates a travel fee service estimating from the
// default home base.
func NewTravelFeeService(geocoder geocoding.Geocoder) TravelFeeService {
	return &TravelFeeServiceImpl{
		geocoder: geocoder,
		homeBase: HomeBase,
		timeout:  defaultEstimateTimeout,
	}
}

// Estimate resolves the address to a coordinate and maps the haversine
// distance onto the fee schedule.
func (s *TravelFeeServiceImpl) Estimate(ctx context.Context, address model.CartAddress) *model.TravelEstimate {
	if !address.Complete() {
		metrics.RecordTravelEstimate("incomplete_address")
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	query := fmt.Sprintf("%s, %s %s, France", address.Address, address.PostalCode, address.City)
	coord, err := s.geocoder.Geocode(ctx, query)
	if err != nil {
		// Any failure (no match, timeout, upstream error) collapses to
		// "no estimate"; the fee is confirmed manually instead.
		log.Debug().Err(err).Str("city", address.City).Msg("Travel fee lookup failed")
		metrics.RecordTravelEstimate("lookup_failed")
		return nil
	}

	distance := s.homeBase.DistanceKm(coord)
	metrics.RecordTravelEstimate("estimated")
	return &model.TravelEstimate{
		// Reported distance is rounded for display; the fee tier is chosen
		// on the exact distance.
		DistanceKm: int(math.Round(distance)),
		Fee:        feeForDistance(distance),
	}
}

// feeForDistance maps an exact distance in km onto the fee schedule.
func feeForDistance(distanceKm float64) model.TravelFee {
	for _, tier := range feeTiers {
		if distanceKm <= tier.MaxKm {
			return model.TravelFee{Amount: tier.Fee}
		}
	}
	return model.TravelFee{ManualValidation: true}
}
