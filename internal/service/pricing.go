// Package service contains the business logic for the booking service.
package service

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/baeza-marine/booking-service/internal/domain/model"
	"github.com/baeza-marine/booking-service/internal/metrics"
)

// enginePowers is the fixed set of outboard engine powers (HP) offered in the
// booking form. Pricing is only defined for these values.
var enginePowers = []float64{
	2.5, 4, 5, 6, 8, 9.9, 10, 15, 20, 25, 30,
	40, 50, 60,
	70, 75, 80, 90,
	100, 115, 130, 140, 150,
	175, 200, 225,
	250, 300,
}

// powerBucket is an inclusive engine power range mapped to one price column.
type powerBucket struct {
	Min float64
	Max float64
}

// Label returns the bucket label shown in the price grid, e.g. "40-60cv".
func (b powerBucket) Label() string {
	return fmt.Sprintf("%g-%gcv", b.Min, b.Max)
}

func (b powerBucket) contains(power float64) bool {
	return power >= b.Min && power <= b.Max
}

// powerBuckets are the six pricing columns. The gaps between buckets (e.g.
// 30 to 40) contain no valid engine power, so every enumerated power falls in
// exactly one bucket.
var powerBuckets = []powerBucket{
	{Min: 2, Max: 30},
	{Min: 40, Max: 60},
	{Min: 70, Max: 90},
	{Min: 100, Max: 150},
	{Min: 175, Max: 225},
	{Min: 250, Max: 300},
}

// priceTable maps a forfait name to its per-bucket prices in EUR, indexed in
// powerBuckets order. "Premium" is intentionally absent: it is quote-only and
// always resolves as unavailable.
var priceTable = map[string][]int{
	model.ForfaitPremiumPlus: {250, 290, 330, 390, 450, 520},
	model.ForfaitCooling:     {180, 210, 240, 280, 320, 360},
}

// quoteOnlyForfaits are catalog forfaits priced by manual quote, never by the
// resolver.
var quoteOnlyForfaits = map[string]bool{
	model.ForfaitPremium: true,
}

// PricingService resolves forfait prices for engine powers.
// Resolution is pure and deterministic; "no price" is a normal outcome,
// not an error.
type PricingService interface {
	// Powers returns the engine powers offered in the booking form.
	Powers() []float64
	// IsValidPower reports whether power is one of the offered engine powers.
	IsValidPower(power float64) bool
	// ResolvePrice returns the price in EUR for the forfait at the given
	// power. The bool result is false when the forfait is quote-only,
	// unknown, or the power is not a valid engine power.
	ResolvePrice(forfaitName string, power float64) (int, bool)
	// IsQuoteOnly reports whether the forfait is priced by manual quote.
	IsQuoteOnly(forfaitName string) bool
}

// PricingServiceImpl implements PricingService over the static price table.
type PricingServiceImpl struct{}

// NewPricingService creates a new pricing service.
func NewPricingService() PricingService {
	return &PricingServiceImpl{}
}

// Powers returns a copy of the engine power enumeration.
func (s *PricingServiceImpl) Powers() []float64 {
	powers := make([]float64, len(enginePowers))
	copy(powers, enginePowers)
	return powers
}

// IsValidPower reports whether power is one of the offered engine powers.
func (s *PricingServiceImpl) IsValidPower(power float64) bool {
	for _, p := range enginePowers {
		if p == power {
			return true
		}
	}
	return false
}

// IsQuoteOnly reports whether the forfait is priced by manual quote.
func (s *PricingServiceImpl) IsQuoteOnly(forfaitName string) bool {
	return quoteOnlyForfaits[forfaitName]
}

// ResolvePrice resolves the price for a forfait at the given engine power.
func (s *PricingServiceImpl) ResolvePrice(forfaitName string, power float64) (int, bool) {
	price, ok := s.resolve(forfaitName, power)
	if ok {
		metrics.RecordPriceResolution("resolved")
	} else {
		metrics.RecordPriceResolution("unavailable")
	}
	return price, ok
}

func (s *PricingServiceImpl) resolve(forfaitName string, power float64) (int, bool) {
	if !s.IsValidPower(power) {
		return 0, false
	}

	prices, ok := priceTable[forfaitName]
	if !ok {
		return 0, false
	}

	for i, bucket := range powerBuckets {
		if bucket.contains(power) {
			if i >= len(prices) {
				return 0, false
			}
			return prices[i], true
		}
	}
	return 0, false
}

// ValidateCatalogPricing checks at startup that every active catalog forfait
// is either quote-only or fully priced across all buckets, and that every
// enumerated power falls in exactly one bucket. Mismatches are logged as
// configuration errors; resolution degrades to "unavailable" rather than
// failing the boot.
func ValidateCatalogPricing(forfaits []model.Forfait) []error {
	var problems []error

	for _, power := range enginePowers {
		matches := 0
		for _, bucket := range powerBuckets {
			if bucket.contains(power) {
				matches++
			}
		}
		if matches != 1 {
			problems = append(problems, fmt.Errorf("engine power %g matches %d buckets, want 1", power, matches))
		}
	}

	for _, forfait := range forfaits {
		if !forfait.Active || quoteOnlyForfaits[forfait.Name] {
			continue
		}
		prices, ok := priceTable[forfait.Name]
		if !ok {
			problems = append(problems, fmt.Errorf("active forfait %q has no price table entry", forfait.Name))
			continue
		}
		if len(prices) != len(powerBuckets) {
			problems = append(problems, fmt.Errorf("forfait %q has %d prices for %d buckets", forfait.Name, len(prices), len(powerBuckets)))
		}
	}

	for _, err := range problems {
		log.Error().Err(err).Msg("Catalog pricing validation failed")
	}
	return problems
}
