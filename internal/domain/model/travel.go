package model

import "strconv"

// TravelFee is a flat round-trip surcharge in euros, or the manual-validation
// sentinel for distances beyond the last tier.
//
// @Description Travel surcharge: a flat amount, free, or subject to manual validation
type TravelFee struct {
	// Amount is the fee in euros. Zero means free travel. Ignored when
	// ManualValidation is set.
	Amount int `json:"amount" example:"45"`
	// ManualValidation is set when the distance exceeds the automatic fee
	// schedule and the fee must be confirmed by staff.
	ManualValidation bool `json:"manual_validation" example:"false"`
}

// Label returns the customer-facing French label for the fee.
func (f TravelFee) Label() string {
	if f.ManualValidation {
		return "Déplacement sur validation"
	}
	if f.Amount == 0 {
		return "Gratuit"
	}
	return strconv.Itoa(f.Amount) + " €"
}

// TravelEstimate is the result of a successful travel fee estimation.
//
// @Description Estimated travel distance and surcharge for an address
type TravelEstimate struct {
	// DistanceKm is the one-way distance from the home base, rounded to the
	// nearest whole kilometer.
	DistanceKm int       `json:"distance_km" example:"23"`
	Fee        TravelFee `json:"fee"`
}
