// Package app provides router configuration.
package app

import (
	"github.com/baeza-marine/booking-service/config"
	"github.com/baeza-marine/booking-service/internal/http"
	"github.com/baeza-marine/booking-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var loggingService service.LoggingService

	// Catalog and booking services require MongoDB
	var forfaitsService service.ForfaitsService
	var bookingService service.BookingService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
		forfaitsService = service.NewForfaitsService(dbComponents.ForfaitsRepo)
		bookingService = service.NewBookingService(dbComponents.BookingsRepo, services.Pricing, services.TravelFee)
	}

	handler := http.NewHandler(
		forfaitsService,
		services.Pricing,
		services.TravelFee,
		http.WithCatalogCacheTTL(cfg.Cache.CatalogTTL),
	)
	healthHandler := http.NewHealthHandler()

	// Register circuit breakers for health monitoring
	if services.GeocoderCircuitBreaker != nil {
		healthHandler.RegisterCircuitBreaker("geocoding", services.GeocoderCircuitBreaker)
	}
	if dbComponents != nil {
		if dbComponents.ForfaitsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_forfaits", dbComponents.ForfaitsCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	// Initialize authentication service
	var authService service.AuthService
	if dbComponents != nil && dbComponents.UserRepo != nil {
		authService = service.NewAuthService(
			dbComponents.UserRepo,
			dbComponents.TokenRepo,
			cfg.Auth,
		)
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    loggingService,
		ForfaitsService:   forfaitsService,
		PricingService:    services.Pricing,
		TravelFeeService:  services.TravelFee,
		CartService:       services.Cart,
		BookingService:    bookingService,
		AuthService:       authService,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
