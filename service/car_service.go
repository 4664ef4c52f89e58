package service

import (
	"context"
	"fmt"

	"carrental/pkg/logger"
	"carrental/pkg/models"
	"carrental/storage"
)

// CarService is the car registry: the fixed catalog and its availability flags.
type CarService interface {
	ListAvailable(ctx context.Context) ([]*models.Car, error)
	GetByID(ctx context.Context, id int64) (*models.Car, error)
	MarkRented(ctx context.Context, id int64) error
	Price(car *models.Car, days int) (float64, error)
}

type carService struct {
	stg storage.ICarStorage
	log logger.ILogger
}

func NewCarService(stg storage.IStorage, log logger.ILogger) CarService {
	return &carService{
		stg: stg.Car(),
		log: log,
	}
}

func (s *carService) ListAvailable(ctx context.Context) ([]*models.Car, error) {
	return s.stg.GetAvailable(ctx)
}

func (s *carService) GetByID(ctx context.Context, id int64) (*models.Car, error) {
	return s.stg.GetByID(ctx, id)
}

func (s *carService) MarkRented(ctx context.Context, id int64) error {
	return s.stg.MarkRented(ctx, id)
}

func (s *carService) Price(car *models.Car, days int) (float64, error) {
	if days <= 0 {
		return 0, fmt.Errorf("%d days: %w", days, ErrInvalidRentalPeriod)
	}
	return car.Price(days), nil
}
