// Package model defines the core domain entities for the booking service.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Forfait names used by the pricing table. The catalog store may carry
// additional forfaits; those simply have no automatic price.
const (
	ForfaitPremium     = "Premium"
	ForfaitPremiumPlus = "Premium+"
	ForfaitCooling     = "Système de Refroidissement"
)

// Forfait represents a maintenance package in the catalog.
//
// The catalog supplies descriptive metadata only. Authoritative pricing
// comes from the in-code price table, keyed by forfait name and engine
// power bucket.
//
// @Description Maintenance package with included line items
type Forfait struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name" example:"Premium+"`
	Brand        string             `bson:"brand,omitempty" json:"brand,omitempty" example:"Yamaha"`
	Description  string             `bson:"description" json:"description"`
	Items        []string           `bson:"items" json:"items"`
	PriceLabel   string             `bson:"price_label,omitempty" json:"price_label,omitempty" example:"à partir de 250 €"`
	Active       bool               `bson:"active" json:"active"`
	DisplayOrder int                `bson:"display_order" json:"display_order"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}
