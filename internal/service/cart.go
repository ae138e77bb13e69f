package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/baeza-marine/booking-service/internal/domain/model"
	"github.com/baeza-marine/booking-service/internal/repository"
)

var (
	// ErrCartItemNotFound is returned when removing a cart position that
	// does not exist.
	ErrCartItemNotFound = errors.New("cart item not found")
	// ErrInvalidPower is returned when the requested engine power is not in
	// the permitted enumeration.
	ErrInvalidPower = errors.New("invalid engine power")
)

// CartService manages per-session carts. Address updates trigger a debounced
// travel fee estimate that lands on the cart asynchronously.
type CartService interface {
	// Get returns the session's cart, creating an empty one if none exists.
	Get(ctx context.Context, sessionID string) (*model.Cart, error)
	// AddItem adds a forfait to the cart, priced for the given power.
	AddItem(ctx context.Context, sessionID, forfaitName string, power float64) (*model.Cart, error)
	// RemoveItem removes the item at the given position.
	RemoveItem(ctx context.Context, sessionID string, index int) (*model.Cart, error)
	// SetPower changes the engine power selection and reprices all items.
	SetPower(ctx context.Context, sessionID string, power float64) (*model.Cart, error)
	// SetAddress updates the address fields and schedules a debounced travel
	// fee estimate. The returned cart does not yet carry the new estimate.
	SetAddress(ctx context.Context, sessionID string, address model.CartAddress) (*model.Cart, error)
	// Clear empties the session's cart and cancels any pending estimate.
	Clear(ctx context.Context, sessionID string) error
}

// CartServiceImpl implements CartService over a cart repository.
type CartServiceImpl struct {
	repo      repository.CartRepositoryInterface
	pricing   PricingService
	scheduler *EstimateScheduler
}

// NewCartService creates a cart service. The debounced estimate scheduler is
// created here so estimate results are written back through the same
// repository the handlers read from.
func NewCartService(repo repository.CartRepositoryInterface, pricing PricingService, estimator TravelFeeService, estimateDelay time.Duration) *CartServiceImpl {
	s := &CartServiceImpl{
		repo:    repo,
		pricing: pricing,
	}
	s.scheduler = NewEstimateScheduler(estimator, s.applyEstimate, estimateDelay)
	return s
}

// Scheduler returns the estimate scheduler, for shutdown.
func (s *CartServiceImpl) Scheduler() *EstimateScheduler {
	return s.scheduler
}

// Get returns the session's cart, creating an empty one if none exists.
func (s *CartServiceImpl) Get(ctx context.Context, sessionID string) (*model.Cart, error) {
	cart, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if cart == nil {
		cart = &model.Cart{SessionID: sessionID, Items: []model.CartItem{}}
	}
	return cart, nil
}

// AddItem adds a forfait to the cart, priced for the given power. Forfaits
// without an automatic price at that power are added unpriced ("sur devis").
func (s *CartServiceImpl) AddItem(ctx context.Context, sessionID, forfaitName string, power float64) (*model.Cart, error) {
	if !s.pricing.IsValidPower(power) {
		return nil, ErrInvalidPower
	}

	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	item := model.CartItem{ForfaitName: forfaitName, Power: power}
	if price, ok := s.pricing.ResolvePrice(forfaitName, power); ok {
		item.Price = &price
	}
	cart.Items = append(cart.Items, item)
	cart.Power = power

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return cart, nil
}

// RemoveItem removes the item at the given position.
func (s *CartServiceImpl) RemoveItem(ctx context.Context, sessionID string, index int) (*model.Cart, error) {
	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(cart.Items) {
		return nil, ErrCartItemNotFound
	}

	cart.Items = append(cart.Items[:index], cart.Items[index+1:]...)
	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return cart, nil
}

// SetPower changes the engine power selection and reprices every item for
// the new power.
func (s *CartServiceImpl) SetPower(ctx context.Context, sessionID string, power float64) (*model.Cart, error) {
	if !s.pricing.IsValidPower(power) {
		return nil, ErrInvalidPower
	}

	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.Power = power
	for i := range cart.Items {
		cart.Items[i].Power = power
		cart.Items[i].Price = nil
		if price, ok := s.pricing.ResolvePrice(cart.Items[i].ForfaitName, power); ok {
			cart.Items[i].Price = &price
		}
	}

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return cart, nil
}

// SetAddress updates the address fields and schedules a debounced estimate.
// The previous estimate is cleared immediately so the client never shows a
// fee for an address it no longer matches.
func (s *CartServiceImpl) SetAddress(ctx context.Context, sessionID string, address model.CartAddress) (*model.Cart, error) {
	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.Address = address
	cart.Estimate = nil
	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	s.scheduler.Schedule(sessionID, address)
	return cart, nil
}

// Clear empties the session's cart and cancels any pending estimate.
func (s *CartServiceImpl) Clear(ctx context.Context, sessionID string) error {
	s.scheduler.Cancel(sessionID)
	if err := s.repo.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

// applyEstimate writes a resolved estimate onto the session's cart. Invoked
// by the scheduler after the debounce delay, only for un-superseded lookups.
func (s *CartServiceImpl) applyEstimate(sessionID string, estimate *model.TravelEstimate) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cart, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		log.Warn().Err(err).Str("session_id", sessionID).Msg("Failed to load cart for estimate")
		return
	}
	if cart == nil {
		// Cart cleared while the lookup was in flight.
		return
	}

	cart.Estimate = estimate
	if err := s.repo.Save(ctx, cart); err != nil {
		log.Warn().Err(err).Str("session_id", sessionID).Msg("Failed to save cart estimate")
	}
}
