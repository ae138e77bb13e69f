// Package app provides service initialization.
package app

import (
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/baeza-marine/booking-service/config"
	"github.com/baeza-marine/booking-service/internal/circuitbreaker"
	"github.com/baeza-marine/booking-service/internal/geocoding"
	"github.com/baeza-marine/booking-service/internal/repository"
	"github.com/baeza-marine/booking-service/internal/service"
)

// ServiceComponents holds the services that do not require MongoDB.
type ServiceComponents struct {
	Pricing                service.PricingService
	TravelFee              service.TravelFeeService
	Cart                   *service.CartServiceImpl
	GeocoderCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeServices initializes the pricing, travel fee and cart services.
//
// The geocoder is wrapped in a circuit breaker, and in a Redis result cache
// when Redis is enabled. The cart store is Redis-backed when Redis is
// enabled and in-memory otherwise.
func InitializeServices(cfg config.Config) *ServiceComponents {
	pricing := service.NewPricingService()

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		log.Info().Str("addr", cfg.Redis.Addr).Msg("Using Redis for session carts and geocoding cache")
	}

	var geocoder geocoding.Geocoder = geocoding.NewClient(geocoding.Config{
		BaseURL:   cfg.Geocoding.BaseURL,
		UserAgent: cfg.Geocoding.UserAgent,
		Timeout:   cfg.Geocoding.Timeout,
	}, nil)

	if redisClient != nil {
		geocoder = geocoding.NewCachedGeocoder(geocoder, redisClient, cfg.Geocoding.CacheTTL)
	}

	cbConfig := circuitbreaker.DefaultConfig()
	cbConfig.Name = "geocoding"
	geocoderCB := circuitbreaker.New(cbConfig)
	geocoder = geocoding.NewGeocoderWithCircuitBreaker(geocoder, geocoderCB)

	travelFee := service.NewTravelFeeService(geocoder)

	var cartRepo repository.CartRepositoryInterface
	if redisClient != nil {
		cartRepo = repository.NewCartRedisRepository(redisClient, cfg.Cart.TTL)
	} else {
		cartRepo = repository.NewCartMemoryRepository(cfg.Cart.TTL)
	}
	cart := service.NewCartService(cartRepo, pricing, travelFee, cfg.Cart.EstimateDebounce)

	return &ServiceComponents{
		Pricing:                pricing,
		TravelFee:              travelFee,
		Cart:                   cart,
		GeocoderCircuitBreaker: geocoderCB,
	}
}
