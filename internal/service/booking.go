package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/baeza-marine/booking-service/internal/domain/dto"
	"github.com/baeza-marine/booking-service/internal/domain/model"
	"github.com/baeza-marine/booking-service/internal/metrics"
	"github.com/baeza-marine/booking-service/internal/repository"
)

// BookingService handles booking form submissions and the admin listing.
type BookingService interface {
	// Submit validates a booking request, resolves prices and the travel fee
	// server-side, and persists the booking as pending.
	Submit(ctx context.Context, req dto.BookingRequest) (*model.Booking, error)
	// Get returns a booking by ID.
	Get(ctx context.Context, id primitive.ObjectID) (*model.Booking, error)
	// List returns bookings matching the query, newest first.
	List(ctx context.Context, opts repository.BookingQueryOptions) ([]*model.Booking, int64, error)
	// UpdateStatus transitions a booking between pending, confirmed and
	// cancelled.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error
}

// ErrBookingNotFound is returned when a booking does not exist.
var ErrBookingNotFound = fmt.Errorf("booking not found")

// BookingServiceImpl implements BookingService.
type BookingServiceImpl struct {
	repo    repository.BookingsRepositoryInterface
	pricing PricingService
	travel  TravelFeeService
}

// NewBookingService creates a new booking service.
func NewBookingService(repo repository.BookingsRepositoryInterface, pricing PricingService, travel TravelFeeService) BookingService {
	return &BookingServiceImpl{
		repo:    repo,
		pricing: pricing,
		travel:  travel,
	}
}

// Submit validates the request and persists a booking snapshot. Prices and
// the travel estimate are resolved here, never taken from the client, so a
// stale or tampered cart cannot change what the workshop sees.
func (s *BookingServiceImpl) Submit(ctx context.Context, req dto.BookingRequest) (*model.Booking, error) {
	if err := req.Validate(); err != nil {
		metrics.RecordBookingSubmission("validation_error")
		return nil, err
	}
	if !s.pricing.IsValidPower(req.MotorPower) {
		metrics.RecordBookingSubmission("validation_error")
		return nil, &dto.ValidationError{Field: "motor_power", Message: "not a recognized engine power"}
	}

	items := make([]model.CartItem, 0, len(req.Forfaits))
	for _, name := range req.Forfaits {
		item := model.CartItem{ForfaitName: name, Power: req.MotorPower}
		if price, ok := s.pricing.ResolvePrice(name, req.MotorPower); ok {
			item.Price = &price
		}
		items = append(items, item)
	}

	address := model.CartAddress{
		Address:    req.Address,
		PostalCode: req.PostalCode,
		City:       req.City,
	}

	booking := &model.Booking{
		Contact: model.BookingContact{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Phone:     req.Phone,
			Email:     req.Email,
		},
		Boat: model.BookingBoat{
			Brand:  req.BoatBrand,
			Model:  req.BoatModel,
			Length: req.BoatLength,
			Width:  req.BoatWidth,
		},
		Motor: model.BookingMotor{
			Brand:  req.MotorBrand,
			Model:  req.MotorModel,
			Power:  req.MotorPower,
			Serial: req.MotorSerial,
			Year:   req.MotorYear,
			Hours:  req.MotorHours,
		},
		Items:        items,
		Address:      address,
		Estimate:     s.travel.Estimate(ctx, address),
		Message:      req.Message,
		RequestQuote: req.RequestQuote,
		Status:       model.BookingStatusPending,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		metrics.RecordBookingSubmission("error")
		return nil, fmt.Errorf("store booking: %w", err)
	}

	metrics.RecordBookingSubmission("accepted")
	return booking, nil
}

// Get returns a booking by ID.
func (s *BookingServiceImpl) Get(ctx context.Context, id primitive.ObjectID) (*model.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

// List returns bookings matching the query, newest first, with the total
// count for pagination.
func (s *BookingServiceImpl) List(ctx context.Context, opts repository.BookingQueryOptions) ([]*model.Booking, int64, error) {
	bookings, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings: %w", err)
	}
	count, err := s.repo.Count(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("count bookings: %w", err)
	}
	if bookings == nil {
		bookings = []*model.Booking{}
	}
	return bookings, count, nil
}

// UpdateStatus transitions a booking to the given status.
func (s *BookingServiceImpl) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	switch status {
	case model.BookingStatusPending, model.BookingStatusConfirmed, model.BookingStatusCancelled:
	default:
		return &dto.ValidationError{Field: "status", Message: "unknown booking status"}
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return ErrBookingNotFound
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
