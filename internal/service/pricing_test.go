package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baeza-marine/booking-service/internal/domain/model"
	"github.com/baeza-marine/booking-service/internal/service"
)

func TestPricingService_ResolvePrice(t *testing.T) {
	pricing := service.NewPricingService()

	tests := []struct {
		name          string
		forfait       string
		power         float64
		expectedPrice int
		available     bool
	}{
		{
			name:          "premium plus mid bucket",
			forfait:       model.ForfaitPremiumPlus,
			power:         50,
			expectedPrice: 290,
			available:     true,
		},
		{
			name:          "premium plus first bucket upper bound",
			forfait:       model.ForfaitPremiumPlus,
			power:         30,
			expectedPrice: 250,
			available:     true,
		},
		{
			name:          "premium plus second bucket lower bound",
			forfait:       model.ForfaitPremiumPlus,
			power:         40,
			expectedPrice: 290,
			available:     true,
		},
		{
			name:          "premium plus smallest power",
			forfait:       model.ForfaitPremiumPlus,
			power:         2.5,
			expectedPrice: 250,
			available:     true,
		},
		{
			name:          "premium plus fractional power",
			forfait:       model.ForfaitPremiumPlus,
			power:         9.9,
			expectedPrice: 250,
			available:     true,
		},
		{
			name:          "cooling top bucket",
			forfait:       model.ForfaitCooling,
			power:         300,
			expectedPrice: 360,
			available:     true,
		},
		{
			name:          "cooling fourth bucket",
			forfait:       model.ForfaitCooling,
			power:         115,
			expectedPrice: 280,
			available:     true,
		},
		{
			name:      "premium is quote-only",
			forfait:   model.ForfaitPremium,
			power:     50,
			available: false,
		},
		{
			name:      "unknown forfait",
			forfait:   "Forfait Hivernage",
			power:     50,
			available: false,
		},
		{
			name:      "power not in enumeration",
			forfait:   model.ForfaitPremiumPlus,
			power:     35,
			available: false,
		},
		{
			name:      "power in bucket gap",
			forfait:   model.ForfaitPremiumPlus,
			power:     65,
			available: false,
		},
		{
			name:      "zero power",
			forfait:   model.ForfaitPremiumPlus,
			power:     0,
			available: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, ok := pricing.ResolvePrice(tt.forfait, tt.power)
			assert.Equal(t, tt.available, ok)
			if tt.available {
				assert.Equal(t, tt.expectedPrice, price)
			} else {
				assert.Zero(t, price)
			}
		})
	}
}

func TestPricingService_Powers(t *testing.T) {
	pricing := service.NewPricingService()

	powers := pricing.Powers()
	require.Len(t, powers, 28)
	assert.Equal(t, 2.5, powers[0])
	assert.Equal(t, 300.0, powers[len(powers)-1])

	// The returned slice is a copy; mutating it must not affect the service.
	powers[0] = 999
	assert.Equal(t, 2.5, pricing.Powers()[0])
}

func TestPricingService_IsValidPower(t *testing.T) {
	pricing := service.NewPricingService()

	assert.True(t, pricing.IsValidPower(9.9))
	assert.True(t, pricing.IsValidPower(300))
	assert.False(t, pricing.IsValidPower(9.8))
	assert.False(t, pricing.IsValidPower(35))
	assert.False(t, pricing.IsValidPower(-50))
}

func TestPricingService_IsQuoteOnly(t *testing.T) {
	pricing := service.NewPricingService()

	assert.True(t, pricing.IsQuoteOnly(model.ForfaitPremium))
	assert.False(t, pricing.IsQuoteOnly(model.ForfaitPremiumPlus))
	assert.False(t, pricing.IsQuoteOnly(model.ForfaitCooling))
}

func TestValidateCatalogPricing(t *testing.T) {
	t.Run("standard catalog is valid", func(t *testing.T) {
		forfaits := []model.Forfait{
			{Name: model.ForfaitPremium, Active: true},
			{Name: model.ForfaitPremiumPlus, Active: true},
			{Name: model.ForfaitCooling, Active: true},
		}
		assert.Empty(t, service.ValidateCatalogPricing(forfaits))
	})

	t.Run("active forfait without prices is flagged", func(t *testing.T) {
		forfaits := []model.Forfait{
			{Name: "Forfait Hivernage", Active: true},
		}
		problems := service.ValidateCatalogPricing(forfaits)
		require.Len(t, problems, 1)
		assert.Contains(t, problems[0].Error(), "Forfait Hivernage")
	})

	t.Run("inactive forfait without prices is ignored", func(t *testing.T) {
		forfaits := []model.Forfait{
			{Name: "Forfait Hivernage", Active: false},
		}
		assert.Empty(t, service.ValidateCatalogPricing(forfaits))
	})
}
