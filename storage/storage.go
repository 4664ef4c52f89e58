package storage

import (
	"context"
	"errors"

	"carrental/pkg/models"
)

var (
	ErrCarNotFound     = errors.New("car not found")
	ErrCarNotAvailable = errors.New("car is not available")
)

type IStorage interface {
	Car() ICarStorage
	Customer() ICustomerStorage
	Rental() IRentalStorage
	Close()
}

type ICarStorage interface {
	GetAll(ctx context.Context) ([]*models.Car, error)
	GetAvailable(ctx context.Context) ([]*models.Car, error)
	GetByID(ctx context.Context, id int64) (*models.Car, error)
	MarkRented(ctx context.Context, id int64) error
}

type ICustomerStorage interface {
	Create(ctx context.Context, name, contact string) (*models.Customer, error)
	GetAll(ctx context.Context) ([]*models.Customer, error)
}

type IRentalStorage interface {
	Create(ctx context.Context, rental *models.Rental) (*models.Rental, error)
	GetAll(ctx context.Context) ([]*models.Rental, error)
}
