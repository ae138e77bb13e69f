// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/baeza-marine/booking-service/internal/domain/model"
)

type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, query string) (model.Coordinate, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(model.Coordinate), args.Error(1)
}
