package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// BookingContact holds the customer contact details from the booking form.
type BookingContact struct {
	FirstName string `bson:"first_name" json:"first_name"`
	LastName  string `bson:"last_name" json:"last_name"`
	Phone     string `bson:"phone" json:"phone"`
	Email     string `bson:"email" json:"email"`
}

// BookingBoat holds the boat details from the booking form.
type BookingBoat struct {
	Brand  string `bson:"brand,omitempty" json:"brand,omitempty"`
	Model  string `bson:"model,omitempty" json:"model,omitempty"`
	Length string `bson:"length,omitempty" json:"length,omitempty"`
	Width  string `bson:"width,omitempty" json:"width,omitempty"`
}

// BookingMotor holds the outboard motor details from the booking form.
type BookingMotor struct {
	Brand  string  `bson:"brand" json:"brand"`
	Model  string  `bson:"model,omitempty" json:"model,omitempty"`
	Power  float64 `bson:"power" json:"power"`
	Serial string  `bson:"serial,omitempty" json:"serial,omitempty"`
	Year   string  `bson:"year,omitempty" json:"year,omitempty"`
	Hours  string  `bson:"hours,omitempty" json:"hours,omitempty"`
}

// Booking is a submitted maintenance request. Prices and the travel estimate
// are resolved server-side at submission time and stored as a snapshot, so
// later price-table changes do not rewrite history.
type Booking struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Contact  BookingContact     `bson:"contact" json:"contact"`
	Boat     BookingBoat        `bson:"boat" json:"boat"`
	Motor    BookingMotor       `bson:"motor" json:"motor"`
	Items    []CartItem         `bson:"items" json:"items"`
	Address  CartAddress        `bson:"address" json:"address"`
	Estimate *TravelEstimate    `bson:"estimate,omitempty" json:"estimate,omitempty"`
	Message  string             `bson:"message,omitempty" json:"message,omitempty"`
	// RequestQuote marks bookings where the customer asked for a manual
	// quote instead of the automatic pricing.
	RequestQuote bool      `bson:"request_quote" json:"request_quote"`
	Status       string    `bson:"status" json:"status"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}
