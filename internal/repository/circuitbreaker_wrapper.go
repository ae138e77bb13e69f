// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/baeza-marine/booking-service/internal/circuitbreaker"
	"github.com/baeza-marine/booking-service/internal/domain/model"
)

// ForfaitsRepositoryWithCircuitBreaker wraps ForfaitsRepository with circuit breaker protection.
type ForfaitsRepositoryWithCircuitBreaker struct {
	repo           *ForfaitsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewForfaitsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewForfaitsRepositoryWithCircuitBreaker(repo *ForfaitsRepository, cb *circuitbreaker.CircuitBreaker) *ForfaitsRepositoryWithCircuitBreaker {
	return &ForfaitsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// ListActive returns the active forfaits with circuit breaker protection.
// If the circuit is open, returns nil so the caller can fall back to the
// built-in catalog.
func (r *ForfaitsRepositoryWithCircuitBreaker) ListActive(ctx context.Context) ([]model.Forfait, error) {
	var result []model.Forfait
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.ListActive(ctx)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil, nil
	}
	return result, err
}

// List returns all forfaits with circuit breaker protection.
func (r *ForfaitsRepositoryWithCircuitBreaker) List(ctx context.Context) ([]model.Forfait, error) {
	var result []model.Forfait
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx)
		return cbErr
	})
	return result, err
}

// FindByID finds a forfait by ID with circuit breaker protection.
func (r *ForfaitsRepositoryWithCircuitBreaker) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Forfait, error) {
	var result *model.Forfait
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByID(ctx, id)
		return cbErr
	})
	return result, err
}

// FindByName finds a forfait by name with circuit breaker protection.
func (r *ForfaitsRepositoryWithCircuitBreaker) FindByName(ctx context.Context, name string) (*model.Forfait, error) {
	var result *model.Forfait
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByName(ctx, name)
		return cbErr
	})
	return result, err
}

// Create inserts a new forfait with circuit breaker protection.
func (r *ForfaitsRepositoryWithCircuitBreaker) Create(ctx context.Context, forfait *model.Forfait) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, forfait)
	})
}

// Update updates an existing forfait with circuit breaker protection.
func (r *ForfaitsRepositoryWithCircuitBreaker) Update(ctx context.Context, forfait *model.Forfait) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Update(ctx, forfait)
	})
}

// Delete soft deletes a forfait with circuit breaker protection.
func (r *ForfaitsRepositoryWithCircuitBreaker) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Delete(ctx, id)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *ForfaitsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
