// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/baeza-marine/booking-service/config"
	"github.com/baeza-marine/booking-service/internal/circuitbreaker"
	"github.com/baeza-marine/booking-service/internal/domain/model"
	"github.com/baeza-marine/booking-service/internal/repository"
	"github.com/baeza-marine/booking-service/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	ForfaitsRepo           repository.ForfaitsRepositoryInterface
	BookingsRepo           repository.BookingsRepositoryInterface
	LoggingService         service.LoggingService
	ForfaitsCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker     *circuitbreaker.CircuitBreaker
	UserRepo               repository.UserRepositoryInterface
	TokenRepo              repository.TokenRepositoryInterface
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Initialize circuit breakers
	forfaitsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-forfaits",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	// Initialize repositories
	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	forfaitsRepo := repository.NewForfaitsRepository(db)
	forfaitsRepoWithCB := repository.NewForfaitsRepositoryWithCircuitBreaker(forfaitsRepo, forfaitsCB)

	bookingsRepo := repository.NewBookingsRepository(db)

	// Initialize auth repositories
	userRepo := repository.NewUserRepository(db.Database)
	tokenRepo := repository.NewTokenRepository(db.Database)

	// Seed the catalog when it is empty
	if err := initializeDefaultCatalog(forfaitsRepoWithCB); err != nil {
		log.Warn().Err(err).Msg("Failed to initialize default catalog")
	}

	// Flag catalog entries the price table cannot serve
	validateCatalogPricing(forfaitsRepoWithCB)

	return &DatabaseComponents{
		ForfaitsRepo:           forfaitsRepoWithCB,
		BookingsRepo:           bookingsRepo,
		LoggingService:         loggingService,
		ForfaitsCircuitBreaker: forfaitsCB,
		LogsCircuitBreaker:     logsCB,
		UserRepo:               userRepo,
		TokenRepo:              tokenRepo,
	}
}

// defaultCatalog is the catalog a fresh deployment starts with.
func defaultCatalog() []*model.Forfait {
	return []*model.Forfait{
		{
			Name:        model.ForfaitPremiumPlus,
			Description: "Entretien annuel complet de votre moteur hors-bord, pièces et main d'œuvre incluses.",
			Items: []string{
				"Vidange moteur et embase",
				"Remplacement des bougies",
				"Remplacement du filtre à essence",
				"Remplacement de la turbine",
				"Contrôle de l'anode",
				"Graissage complet",
			},
			PriceLabel:   "à partir de 250 €",
			Active:       true,
			DisplayOrder: 1,
		},
		{
			Name:        model.ForfaitPremium,
			Description: "Entretien courant de votre moteur hors-bord, adapté aux moteurs récents.",
			Items: []string{
				"Vidange moteur et embase",
				"Remplacement des bougies",
				"Contrôle de l'anode",
				"Graissage complet",
			},
			PriceLabel:   "sur devis",
			Active:       true,
			DisplayOrder: 2,
		},
		{
			Name:        model.ForfaitCooling,
			Description: "Contrôle et remise en état du circuit de refroidissement.",
			Items: []string{
				"Remplacement de la turbine",
				"Contrôle du thermostat",
				"Nettoyage du circuit d'eau",
			},
			PriceLabel:   "à partir de 180 €",
			Active:       true,
			DisplayOrder: 3,
		},
	}
}

// initializeDefaultCatalog seeds the forfait catalog if it is empty.
func initializeDefaultCatalog(repo repository.ForfaitsRepositoryInterface) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, forfait := range defaultCatalog() {
		if err := repo.Create(ctx, forfait); err != nil {
			return err
		}
		log.Info().Str("forfait", forfait.Name).Msg("Created default forfait")
	}
	return nil
}

// validateCatalogPricing logs any active forfait the price table cannot
// resolve, so a misnamed catalog entry is caught at startup instead of at
// quote time.
func validateCatalogPricing(repo repository.ForfaitsRepositoryInterface) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	forfaits, err := repo.ListActive(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Could not validate catalog pricing")
		return
	}
	for _, problem := range service.ValidateCatalogPricing(forfaits) {
		log.Warn().Err(problem).Msg("Catalog pricing gap")
	}
}
