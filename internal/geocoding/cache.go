package geocoding

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/baeza-marine/booking-service/internal/domain/model"
	"github.com/baeza-marine/booking-service/internal/metrics"
)

// CachedGeocoder decorates a Geocoder with a Redis result cache.
//
// Nominatim is rate limited and the same address is typically geocoded
// several times during one booking (debounced edits, then the final
// submission), so successful lookups are cached for a short TTL. Failures
// are never cached; the next user edit retries naturally.
type CachedGeocoder struct {
	next   Geocoder
	client *redis.Client
	ttl    time.Duration
}

// NewCachedGeocoder wraps next with a Redis cache. TTL zero defaults to
// 24 hours (street addresses do not move).
func NewCachedGeocoder(next Geocoder, client *redis.Client, ttl time.Duration) *CachedGeocoder {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &CachedGeocoder{next: next, client: client, ttl: ttl}
}

// Geocode returns the cached coordinate for query when present, otherwise
// delegates and caches a successful result. Cache errors degrade to a
// plain lookup.
func (g *CachedGeocoder) Geocode(ctx context.Context, query string) (model.Coordinate, error) {
	key := cacheKey(query)

	if data, err := g.client.Get(ctx, key).Result(); err == nil {
		var coord model.Coordinate
		if err := json.Unmarshal([]byte(data), &coord); err == nil {
			metrics.RecordGeocodingRequest("cache_hit", 0)
			return coord, nil
		}
	} else if err != redis.Nil {
		log.Warn().Err(err).Msg("Geocode cache read failed")
	}

	coord, err := g.next.Geocode(ctx, query)
	if err != nil {
		return model.Coordinate{}, err
	}

	if data, err := json.Marshal(coord); err == nil {
		if err := g.client.Set(ctx, key, data, g.ttl).Err(); err != nil {
			log.Warn().Err(err).Msg("Geocode cache write failed")
		}
	}

	return coord, nil
}

// cacheKey normalizes the query so trivially different spellings share an
// entry.
func cacheKey(query string) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(query), " "))
	sum := sha1.Sum([]byte(normalized))
	return "geocode:" + hex.EncodeToString(sum[:])
}
