// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model, providing validation
// and serialization for API communication.
package dto

// QuoteRequest asks for the automatic price of a forfait at an engine power.
//
// @Description Request for an automatic forfait price
// @Example {"forfait": "Premium+", "power": 50}
type QuoteRequest struct {
	// Forfait is the package name, e.g. "Premium+".
	Forfait string `json:"forfait" binding:"required" example:"Premium+"`
	// Power is the engine power in CV; must be one of the permitted ratings.
	Power float64 `json:"power" binding:"required,gt=0" example:"50"`
} // @name QuoteRequest

// TravelFeeRequest asks for a travel fee estimate for a postal address.
//
// All three fields must be filled for an estimate to be attempted; a partial
// address yields the "to be confirmed" response without any geocoding call.
//
// @Description Request for a travel fee estimate
// @Example {"address": "12 avenue du Port", "postal_code": "33510", "city": "Andernos-les-Bains"}
type TravelFeeRequest struct {
	Address    string `json:"address" example:"12 avenue du Port"`
	PostalCode string `json:"postal_code" example:"33510"`
	City       string `json:"city" example:"Andernos-les-Bains"`
} // @name TravelFeeRequest

// ForfaitRequest creates or replaces a catalog forfait.
//
// @Description Forfait catalog entry payload
type ForfaitRequest struct {
	Name         string   `json:"name" binding:"required" example:"Premium+"`
	Brand        string   `json:"brand,omitempty" example:"Yamaha"`
	Description  string   `json:"description" binding:"required"`
	Items        []string `json:"items" binding:"required,min=1"`
	PriceLabel   string   `json:"price_label,omitempty" example:"à partir de 250 €"`
	Active       *bool    `json:"active,omitempty"`
	DisplayOrder int      `json:"display_order" example:"1"`
} // @name ForfaitRequest

// CartItemRequest adds a forfait to the session cart.
//
// @Description Add a forfait to the cart
type CartItemRequest struct {
	Forfait string  `json:"forfait" binding:"required" example:"Premium+"`
	Power   float64 `json:"power" binding:"required,gt=0" example:"50"`
} // @name CartItemRequest

// CartPowerRequest sets the current engine power selection for the session.
type CartPowerRequest struct {
	Power float64 `json:"power" binding:"required,gt=0" example:"50"`
} // @name CartPowerRequest

// CartAddressRequest updates the session address fields. Each update
// supersedes any in-flight travel fee estimate.
type CartAddressRequest struct {
	Address    string `json:"address"`
	PostalCode string `json:"postal_code"`
	City       string `json:"city"`
} // @name CartAddressRequest

// BookingRequest submits a maintenance booking.
//
// @Description Booking form submission
type BookingRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email" binding:"required,email"`

	BoatBrand  string `json:"boat_brand,omitempty"`
	BoatModel  string `json:"boat_model,omitempty"`
	BoatLength string `json:"boat_length,omitempty"`
	BoatWidth  string `json:"boat_width,omitempty"`

	MotorBrand  string  `json:"motor_brand" binding:"required"`
	MotorModel  string  `json:"motor_model,omitempty"`
	MotorPower  float64 `json:"motor_power" binding:"required,gt=0"`
	MotorSerial string  `json:"motor_serial,omitempty"`
	MotorYear   string  `json:"motor_year,omitempty"`
	MotorHours  string  `json:"motor_hours,omitempty"`

	Forfaits []string `json:"forfaits" binding:"required,min=1"`

	Address    string `json:"address,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	City       string `json:"city,omitempty"`

	Message      string `json:"message,omitempty"`
	RequestQuote bool   `json:"request_quote,omitempty"`
} // @name BookingRequest

// BookingStatusRequest transitions a booking to a new status.
type BookingStatusRequest struct {
	Status string `json:"status" binding:"required" example:"confirmed"`
} // @name BookingStatusRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate performs custom validation on the quote request.
func (r *QuoteRequest) Validate() error {
	if r.Forfait == "" {
		return &ValidationError{Field: "forfait", Message: "must not be empty"}
	}
	if r.Power <= 0 {
		return &ValidationError{Field: "power", Message: "must be a positive number"}
	}
	return nil
}

// Validate performs custom validation on the booking request.
func (r *BookingRequest) Validate() error {
	if len(r.Forfaits) == 0 {
		return &ValidationError{Field: "forfaits", Message: "at least one forfait is required"}
	}
	if r.MotorPower <= 0 {
		return &ValidationError{Field: "motor_power", Message: "must be a positive number"}
	}
	return nil
}
