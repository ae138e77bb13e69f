package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeeForDistance(t *testing.T) {
	tests := []struct {
		name             string
		distanceKm       float64
		expectedFee      int
		manualValidation bool
	}{
		{name: "at home base", distanceKm: 0, expectedFee: 0},
		{name: "free zone boundary", distanceKm: 10, expectedFee: 0},
		{name: "just past free zone", distanceKm: 10.01, expectedFee: 15},
		{name: "second tier boundary", distanceKm: 20, expectedFee: 15},
		{name: "third tier", distanceKm: 25, expectedFee: 25},
		{name: "mid schedule", distanceKm: 72.4, expectedFee: 70},
		{name: "last numeric tier boundary", distanceKm: 250, expectedFee: 245},
		{name: "just past last tier", distanceKm: 250.01, manualValidation: true},
		{name: "far away", distanceKm: 600, manualValidation: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee := feeForDistance(tt.distanceKm)
			assert.Equal(t, tt.manualValidation, fee.ManualValidation)
			if !tt.manualValidation {
				assert.Equal(t, tt.expectedFee, fee.Amount)
			}
		})
	}
}
