package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/baeza-marine/booking-service/internal/domain/model"
	"github.com/baeza-marine/booking-service/internal/geocoding"
	"github.com/baeza-marine/booking-service/internal/mocks"
	"github.com/baeza-marine/booking-service/internal/service"
)

func completeAddress() model.CartAddress {
	return model.CartAddress{
		Address:    "12 avenue du Port",
		PostalCode: "33510",
		City:       "Andernos-les-Bains",
	}
}

func TestTravelFeeService_Estimate(t *testing.T) {
	t.Run("address at home base is in the free zone", func(t *testing.T) {
		geocoder := new(mocks.MockGeocoder)
		geocoder.On("Geocode", mock.Anything, "12 avenue du Port, 33510 Andernos-les-Bains, France").
			Return(service.HomeBase, nil)

		svc := service.NewTravelFeeService(geocoder)
		estimate := svc.Estimate(context.Background(), completeAddress())

		require.NotNil(t, estimate)
		assert.Equal(t, 0, estimate.DistanceKm)
		assert.Equal(t, 0, estimate.Fee.Amount)
		assert.False(t, estimate.Fee.ManualValidation)
		geocoder.AssertExpectations(t)
	})

	t.Run("distant address requires manual validation", func(t *testing.T) {
		geocoder := new(mocks.MockGeocoder)
		// Paris, roughly 500 km from the home base.
		geocoder.On("Geocode", mock.Anything, mock.AnythingOfType("string")).
			Return(model.Coordinate{Lat: 48.8566, Lon: 2.3522}, nil)

		svc := service.NewTravelFeeService(geocoder)
		estimate := svc.Estimate(context.Background(), model.CartAddress{
			Address: "1 rue de Rivoli", PostalCode: "75001", City: "Paris",
		})

		require.NotNil(t, estimate)
		assert.True(t, estimate.Fee.ManualValidation)
		assert.Greater(t, estimate.DistanceKm, 250)
	})

	t.Run("incomplete address makes no lookup", func(t *testing.T) {
		geocoder := new(mocks.MockGeocoder)

		svc := service.NewTravelFeeService(geocoder)

		for _, address := range []model.CartAddress{
			{},
			{Address: "12 avenue du Port"},
			{Address: "12 avenue du Port", PostalCode: "33510"},
			{PostalCode: "33510", City: "Andernos-les-Bains"},
		} {
			assert.Nil(t, svc.Estimate(context.Background(), address))
		}
		geocoder.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
	})

	t.Run("no geocoding result yields no estimate", func(t *testing.T) {
		geocoder := new(mocks.MockGeocoder)
		geocoder.On("Geocode", mock.Anything, mock.AnythingOfType("string")).
			Return(model.Coordinate{}, geocoding.ErrNoResult)

		svc := service.NewTravelFeeService(geocoder)
		assert.Nil(t, svc.Estimate(context.Background(), completeAddress()))
	})

	t.Run("lookup failure yields no estimate", func(t *testing.T) {
		geocoder := new(mocks.MockGeocoder)
		geocoder.On("Geocode", mock.Anything, mock.AnythingOfType("string")).
			Return(model.Coordinate{}, errors.New("upstream unavailable"))

		svc := service.NewTravelFeeService(geocoder)
		assert.Nil(t, svc.Estimate(context.Background(), completeAddress()))
	})
}
