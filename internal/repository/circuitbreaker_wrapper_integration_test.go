//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baeza-marine/booking-service/internal/circuitbreaker"
	"github.com/baeza-marine/booking-service/internal/domain/model"
)

func TestForfaitsRepositoryWithCircuitBreaker_Update(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewForfaitsRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewForfaitsRepositoryWithCircuitBreaker(repo, cb)

	forfait := &model.Forfait{
		Name:   "Essentiel",
		Brand:  "Yamaha",
		Items:  []string{"Vidange moteur", "Remplacement bougies"},
		Active: true,
	}
	err := wrappedRepo.Create(ctx, forfait)
	require.NoError(t, err)
	require.False(t, forfait.ID.IsZero())

	// Update via circuit breaker wrapper
	forfait.Description = "Entretien annuel de base"
	err = wrappedRepo.Update(ctx, forfait)
	require.NoError(t, err)

	found, err := wrappedRepo.FindByID(ctx, forfait.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Entretien annuel de base", found.Description)
}

func TestForfaitsRepositoryWithCircuitBreaker_ListActive(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewForfaitsRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewForfaitsRepositoryWithCircuitBreaker(repo, cb)

	_ = wrappedRepo.Create(ctx, &model.Forfait{Name: model.ForfaitPremium, Active: true, DisplayOrder: 1})
	_ = wrappedRepo.Create(ctx, &model.Forfait{Name: model.ForfaitPremiumPlus, Active: true, DisplayOrder: 2})
	_ = wrappedRepo.Create(ctx, &model.Forfait{Name: "Archived", Active: false, DisplayOrder: 3})

	// ListActive via circuit breaker wrapper
	forfaits, err := wrappedRepo.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, forfaits, 2)
}

func TestForfaitsRepositoryWithCircuitBreaker_GetCircuitBreaker(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewForfaitsRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewForfaitsRepositoryWithCircuitBreaker(repo, cb)

	// Get circuit breaker
	returnedCB := wrappedRepo.GetCircuitBreaker()
	assert.NotNil(t, returnedCB)
	assert.Equal(t, cb, returnedCB)

	// Verify stats
	stats := returnedCB.GetStats()
	assert.Equal(t, "closed", stats.State)
}

func TestLogsRepositoryWithCircuitBreaker_CreateMany(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewLogsRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewLogsRepositoryWithCircuitBreaker(repo, cb)

	entries := []*LogEntryDocument{
		{
			Level:     "info",
			Message:   "Entry 1",
			RequestID: "req-1",
			Timestamp: time.Now(),
		},
		{
			Level:     "error",
			Message:   "Entry 2",
			RequestID: "req-2",
			Timestamp: time.Now(),
		},
	}

	err := wrappedRepo.CreateMany(ctx, entries)
	assert.NoError(t, err)
}

func TestLogsRepositoryWithCircuitBreaker_Query(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewLogsRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewLogsRepositoryWithCircuitBreaker(repo, cb)

	// Create test entries
	entry := &LogEntryDocument{
		Level:     "info",
		Message:   "Test query",
		RequestID: "query-test-id",
		Timestamp: time.Now(),
	}
	_ = wrappedRepo.Create(ctx, entry)

	// Query via circuit breaker wrapper
	opts := LogQueryOptions{
		RequestID: "query-test-id",
	}
	entries, err := wrappedRepo.Query(ctx, opts)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(entries), 1)
}

func TestLogsRepositoryWithCircuitBreaker_Count(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewLogsRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewLogsRepositoryWithCircuitBreaker(repo, cb)

	// Create test entries
	_ = wrappedRepo.Create(ctx, &LogEntryDocument{
		Level:     "info",
		Message:   "Count test 1",
		Timestamp: time.Now(),
	})
	_ = wrappedRepo.Create(ctx, &LogEntryDocument{
		Level:     "error",
		Message:   "Count test 2",
		Timestamp: time.Now(),
	})

	// Count via circuit breaker wrapper
	count, err := wrappedRepo.Count(ctx, LogQueryOptions{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, count, int64(2))

	// Count with filter
	opts := LogQueryOptions{
		Level: "info",
	}
	countFiltered, err := wrappedRepo.Count(ctx, opts)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, countFiltered, int64(1))
}

func TestLogsRepositoryWithCircuitBreaker_GetCircuitBreaker(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewLogsRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewLogsRepositoryWithCircuitBreaker(repo, cb)

	// Get circuit breaker
	returnedCB := wrappedRepo.GetCircuitBreaker()
	assert.NotNil(t, returnedCB)
	assert.Equal(t, cb, returnedCB)

	// Verify stats
	stats := returnedCB.GetStats()
	assert.Equal(t, "closed", stats.State)
}
