package model

// CartItem is a forfait selected by the visitor, priced (when possible) for
// the engine power chosen at the time it was added.
//
// @Description A selected forfait in the visitor's cart
type CartItem struct {
	ForfaitName string  `json:"forfait_name" example:"Premium+"`
	Power       float64 `json:"power" example:"50"`
	// Price is nil when the forfait has no automatic price for the chosen
	// power ("sur devis").
	Price *int `json:"price,omitempty" example:"290"`
}

// CartAddress holds the three free-text address fields used for the travel
// fee estimate.
type CartAddress struct {
	Address    string `json:"address" example:"12 avenue du Port"`
	PostalCode string `json:"postal_code" example:"33510"`
	City       string `json:"city" example:"Andernos-les-Bains"`
}

// Complete reports whether all three address fields are filled in. An
// incomplete address is "not yet estimable", which is distinct from a failed
// lookup.
func (a CartAddress) Complete() bool {
	return a.Address != "" && a.PostalCode != "" && a.City != ""
}

// Cart is the per-session booking state: selected forfaits, the current
// engine power selection, and the address with its latest travel estimate.
//
// Carts are held in an explicit session store keyed by session ID; the
// computation services never read ambient state.
//
// @Description Per-session cart with selected forfaits and travel estimate
type Cart struct {
	SessionID string      `json:"session_id"`
	Items     []CartItem  `json:"items"`
	// Power is the currently selected engine power, 0 when none selected.
	Power    float64     `json:"power,omitempty" example:"50"`
	Address  CartAddress `json:"address"`
	// Estimate is the latest resolved travel estimate for Address, nil while
	// unresolved or when the address is incomplete.
	Estimate *TravelEstimate `json:"estimate,omitempty"`
}

// Total returns the sum of priced items plus the travel fee when one is
// known and numeric. The bool result is false when any item is unpriced or
// the fee requires manual validation, meaning the total itself is "sur
// devis".
func (c *Cart) Total() (int, bool) {
	total := 0
	exact := true
	for _, item := range c.Items {
		if item.Price == nil {
			exact = false
			continue
		}
		total += *item.Price
	}
	if c.Estimate != nil {
		if c.Estimate.Fee.ManualValidation {
			exact = false
		} else {
			total += c.Estimate.Fee.Amount
		}
	}
	return total, exact
}
