// Package repository provides cart session data access layer.
package repository

import (
	"context"
	"sync"
	"time"

	"github.com/baeza-marine/booking-service/internal/domain/model"
)

// cartEntry is a stored cart with its expiry deadline.
type cartEntry struct {
	cart      model.Cart
	expiresAt time.Time
}

// CartMemoryRepository implements CartRepositoryInterface in process memory.
// Used when Redis is not configured (local development) and in tests. Expired
// entries are dropped lazily on access.
type CartMemoryRepository struct {
	mu      sync.RWMutex
	entries map[string]cartEntry
	ttl     time.Duration
}

// NewCartMemoryRepository creates an in-memory cart repository. TTL zero
// defaults to 24 hours, matching the Redis-backed repository.
func NewCartMemoryRepository(ttl time.Duration) *CartMemoryRepository {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &CartMemoryRepository{
		entries: make(map[string]cartEntry),
		ttl:     ttl,
	}
}

// Get returns the cart for sessionID, or nil if none exists or it expired.
func (r *CartMemoryRepository) Get(_ context.Context, sessionID string) (*model.Cart, error) {
	r.mu.RLock()
	entry, ok := r.entries[sessionID]
	r.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if time.Now().After(entry.expiresAt) {
		r.mu.Lock()
		delete(r.entries, sessionID)
		r.mu.Unlock()
		return nil, nil
	}

	cart := entry.cart
	return &cart, nil
}

// Save stores the cart and refreshes its TTL.
func (r *CartMemoryRepository) Save(_ context.Context, cart *model.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[cart.SessionID] = cartEntry{
		cart:      *cart,
		expiresAt: time.Now().Add(r.ttl),
	}
	return nil
}

// Delete removes the cart for sessionID.
func (r *CartMemoryRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, sessionID)
	return nil
}
