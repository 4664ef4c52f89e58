package service

import (
	"context"

	"carrental/pkg/models"
	"carrental/storage"

	"github.com/stretchr/testify/mock"
)

// MockStorage
type MockStorage struct {
	cars      *MockCarRepo
	customers *MockCustomerRepo
	rentals   *MockRentalRepo
}

func newMockStorage() *MockStorage {
	return &MockStorage{
		cars:      new(MockCarRepo),
		customers: new(MockCustomerRepo),
		rentals:   new(MockRentalRepo),
	}
}

func (m *MockStorage) Car() storage.ICarStorage           { return m.cars }
func (m *MockStorage) Customer() storage.ICustomerStorage { return m.customers }
func (m *MockStorage) Rental() storage.IRentalStorage     { return m.rentals }
func (m *MockStorage) Close()                             {}

// MockCarRepo
type MockCarRepo struct {
	mock.Mock
}

func (m *MockCarRepo) GetAll(ctx context.Context) ([]*models.Car, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Car), args.Error(1)
}
func (m *MockCarRepo) GetAvailable(ctx context.Context) ([]*models.Car, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Car), args.Error(1)
}
func (m *MockCarRepo) GetByID(ctx context.Context, id int64) (*models.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Car), args.Error(1)
}
func (m *MockCarRepo) MarkRented(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, name, contact string) (*models.Customer, error) {
	args := m.Called(ctx, name, contact)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}
func (m *MockCustomerRepo) GetAll(ctx context.Context) ([]*models.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Customer), args.Error(1)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rental *models.Rental) (*models.Rental, error) {
	args := m.Called(ctx, rental)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if fn, ok := args.Get(0).(func(context.Context, *models.Rental) *models.Rental); ok {
		return fn(ctx, rental), args.Error(1)
	}
	return args.Get(0).(*models.Rental), args.Error(1)
}
func (m *MockRentalRepo) GetAll(ctx context.Context) ([]*models.Rental, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Rental), args.Error(1)
}
