package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/baeza-marine/booking-service/internal/domain/dto"
	"github.com/baeza-marine/booking-service/internal/domain/model"
	"github.com/baeza-marine/booking-service/internal/repository"
)

var (
	// ErrForfaitNotFound is returned when a forfait does not exist.
	ErrForfaitNotFound = errors.New("forfait not found")
	// ErrForfaitExists is returned when creating a forfait whose name is taken.
	ErrForfaitExists = errors.New("forfait with this name already exists")
)

// ForfaitsService manages the maintenance forfait catalog.
type ForfaitsService interface {
	// ListActive returns the active forfaits in display order.
	ListActive(ctx context.Context) ([]model.Forfait, error)
	// List returns all forfaits, including inactive ones, for the admin panel.
	List(ctx context.Context) ([]model.Forfait, error)
	// Get returns a forfait by ID.
	Get(ctx context.Context, id primitive.ObjectID) (*model.Forfait, error)
	// Create adds a new forfait to the catalog.
	Create(ctx context.Context, req dto.ForfaitRequest) (*model.Forfait, error)
	// Update replaces the editable fields of a forfait.
	Update(ctx context.Context, id primitive.ObjectID, req dto.ForfaitRequest) (*model.Forfait, error)
	// Delete deactivates a forfait.
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ForfaitsServiceImpl implements ForfaitsService over the forfaits repository.
type ForfaitsServiceImpl struct {
	repo repository.ForfaitsRepositoryInterface
}

// NewForfaitsService creates a new forfaits service.
func NewForfaitsService(repo repository.ForfaitsRepositoryInterface) ForfaitsService {
	return &ForfaitsServiceImpl{repo: repo}
}

// ListActive returns the active forfaits in display order. A nil result from
// the repository (circuit open) degrades to an empty catalog.
func (s *ForfaitsServiceImpl) ListActive(ctx context.Context) ([]model.Forfait, error) {
	forfaits, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active forfaits: %w", err)
	}
	if forfaits == nil {
		forfaits = []model.Forfait{}
	}
	return forfaits, nil
}

// List returns all forfaits in display order.
func (s *ForfaitsServiceImpl) List(ctx context.Context) ([]model.Forfait, error) {
	forfaits, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list forfaits: %w", err)
	}
	if forfaits == nil {
		forfaits = []model.Forfait{}
	}
	return forfaits, nil
}

// Get returns a forfait by ID.
func (s *ForfaitsServiceImpl) Get(ctx context.Context, id primitive.ObjectID) (*model.Forfait, error) {
	forfait, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find forfait: %w", err)
	}
	if forfait == nil {
		return nil, ErrForfaitNotFound
	}
	return forfait, nil
}

// Create adds a new forfait to the catalog.
func (s *ForfaitsServiceImpl) Create(ctx context.Context, req dto.ForfaitRequest) (*model.Forfait, error) {
	existing, err := s.repo.FindByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("check forfait name: %w", err)
	}
	if existing != nil {
		return nil, ErrForfaitExists
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	forfait := &model.Forfait{
		Name:         req.Name,
		Brand:        req.Brand,
		Description:  req.Description,
		Items:        req.Items,
		PriceLabel:   req.PriceLabel,
		Active:       active,
		DisplayOrder: req.DisplayOrder,
	}
	if err := s.repo.Create(ctx, forfait); err != nil {
		return nil, fmt.Errorf("create forfait: %w", err)
	}
	return forfait, nil
}

// Update replaces the editable fields of a forfait.
func (s *ForfaitsServiceImpl) Update(ctx context.Context, id primitive.ObjectID, req dto.ForfaitRequest) (*model.Forfait, error) {
	forfait, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find forfait: %w", err)
	}
	if forfait == nil {
		return nil, ErrForfaitNotFound
	}

	if req.Name != forfait.Name {
		existing, err := s.repo.FindByName(ctx, req.Name)
		if err != nil {
			return nil, fmt.Errorf("check forfait name: %w", err)
		}
		if existing != nil {
			return nil, ErrForfaitExists
		}
	}

	forfait.Name = req.Name
	forfait.Brand = req.Brand
	forfait.Description = req.Description
	forfait.Items = req.Items
	forfait.PriceLabel = req.PriceLabel
	if req.Active != nil {
		forfait.Active = *req.Active
	}
	forfait.DisplayOrder = req.DisplayOrder

	if err := s.repo.Update(ctx, forfait); err != nil {
		return nil, fmt.Errorf("update forfait: %w", err)
	}
	return forfait, nil
}

// Delete deactivates a forfait. Existing bookings keep their snapshot.
func (s *ForfaitsServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	forfait, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find forfait: %w", err)
	}
	if forfait == nil {
		return ErrForfaitNotFound
	}
	return s.repo.Delete(ctx, id)
}
