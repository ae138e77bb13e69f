// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/baeza-marine/booking-service/internal/domain/model"
)

type MockForfaitsRepositoryInterface struct {
	mock.Mock
}

func (m *MockForfaitsRepositoryInterface) ListActive(ctx context.Context) ([]model.Forfait, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Forfait), args.Error(1)
}

func (m *MockForfaitsRepositoryInterface) List(ctx context.Context) ([]model.Forfait, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Forfait), args.Error(1)
}

func (m *MockForfaitsRepositoryInterface) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Forfait, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Forfait), args.Error(1)
}

func (m *MockForfaitsRepositoryInterface) FindByName(ctx context.Context, name string) (*model.Forfait, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Forfait), args.Error(1)
}

func (m *MockForfaitsRepositoryInterface) Create(ctx context.Context, forfait *model.Forfait) error {
	args := m.Called(ctx, forfait)
	return args.Error(0)
}

func (m *MockForfaitsRepositoryInterface) Update(ctx context.Context, forfait *model.Forfait) error {
	args := m.Called(ctx, forfait)
	return args.Error(0)
}

func (m *MockForfaitsRepositoryInterface) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
