// Package repository provides cart session data access layer.
package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/baeza-marine/booking-service/internal/domain/model"
)

// CartRepositoryInterface defines the interface for cart session storage.
// Carts are anonymous, keyed by session ID, and expire on their own; a
// stale cart is never an error, Get just returns nil.
type CartRepositoryInterface interface {
	Get(ctx context.Context, sessionID string) (*model.Cart, error)
	Save(ctx context.Context, cart *model.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// CartRedisRepository implements CartRepositoryInterface using Redis.
type CartRedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartRedisRepository creates a Redis-backed cart repository. TTL zero
// defaults to 24 hours, long enough to survive a browsing session but short
// enough that abandoned carts clean themselves up.
func NewCartRedisRepository(client *redis.Client, ttl time.Duration) *CartRedisRepository {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &CartRedisRepository{client: client, ttl: ttl}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

// Get returns the cart for sessionID, or nil if none exists.
func (r *CartRedisRepository) Get(ctx context.Context, sessionID string) (*model.Cart, error) {
	data, err := r.client.Get(ctx, cartKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var cart model.Cart
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		return nil, err
	}
	cart.SessionID = sessionID
	return &cart, nil
}

// Save stores the cart and refreshes its TTL.
func (r *CartRedisRepository) Save(ctx context.Context, cart *model.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, cartKey(cart.SessionID), data, r.ttl).Err()
}

// Delete removes the cart for sessionID.
func (r *CartRedisRepository) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, cartKey(sessionID)).Err()
}
