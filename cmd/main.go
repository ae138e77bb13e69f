// Package main is the entry point for the booking-service application.
//
// @title           Baeza Marine Booking API
// @version         1.0.0
// @description     API for the mobile outboard-motor maintenance business.
//
//	Serves the public forfait catalog, price quotes, travel-fee estimates,
//	session carts and booking submission, plus a JWT-protected admin surface.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  contact@baeza-marine.fr
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Catalog
// @tag.description Forfait catalog and price quoting
//
// @tag.name        Cart
// @tag.description Session cart operations
//
// @tag.name        Bookings
// @tag.description Booking submission and staff management
//
// @tag.name        Auth
// @tag.description Authentication endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/baeza-marine/booking-service/docs" // swagger docs

	"github.com/rs/zerolog/log"

	"github.com/baeza-marine/booking-service/config"
	"github.com/baeza-marine/booking-service/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
