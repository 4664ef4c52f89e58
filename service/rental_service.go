package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"carrental/pkg/logger"
	"carrental/pkg/models"
	"carrental/storage"
)

var ErrInvalidRentalPeriod = errors.New("end date must be after start date")

// RentalService is the rental ledger.
type RentalService interface {
	CreateRental(ctx context.Context, carID int64, name, contact string, start, end time.Time) (*models.Rental, error)
	ListAll(ctx context.Context) ([]*models.Rental, error)
}

type rentalService struct {
	cars      storage.ICarStorage
	customers storage.ICustomerStorage
	rentals   storage.IRentalStorage
	log       logger.ILogger
}

func NewRentalService(stg storage.IStorage, log logger.ILogger) RentalService {
	return &rentalService{
		cars:      stg.Car(),
		customers: stg.Customer(),
		rentals:   stg.Rental(),
		log:       log,
	}
}

// CreateRental runs every check before touching state, so a rejected
// transaction consumes no customer id and leaves the car available.
func (s *rentalService) CreateRental(ctx context.Context, carID int64, name, contact string, start, end time.Time) (*models.Rental, error) {
	car, err := s.cars.GetByID(ctx, carID)
	if err != nil {
		s.log.Warning("rental rejected", logger.Int64("car_id", carID), logger.Error(err))
		return nil, err
	}
	if !car.Available {
		err = fmt.Errorf("car %d: %w", carID, storage.ErrCarNotAvailable)
		s.log.Warning("rental rejected", logger.Int64("car_id", carID), logger.Error(err))
		return nil, err
	}

	days := models.RentalDays(start, end)
	if days <= 0 {
		err = fmt.Errorf("%s to %s: %w", models.FormatDate(start), models.FormatDate(end), ErrInvalidRentalPeriod)
		s.log.Warning("rental rejected", logger.Int64("car_id", carID), logger.Error(err))
		return nil, err
	}

	customer, err := s.customers.Create(ctx, name, contact)
	if err != nil {
		return nil, err
	}

	if err := s.cars.MarkRented(ctx, car.ID); err != nil {
		return nil, err
	}

	rental, err := s.rentals.Create(ctx, &models.Rental{
		Car:       car,
		Customer:  customer,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("car rented",
		logger.Int64("customer_id", customer.ID),
		logger.Int64("car_id", car.ID),
		logger.Int("days", days),
		logger.Float64("total", rental.TotalPrice()),
	)

	return rental, nil
}

func (s *rentalService) ListAll(ctx context.Context) ([]*models.Rental, error) {
	return s.rentals.GetAll(ctx)
}
