package service

import (
	"carrental/pkg/logger"
	"carrental/storage"
)

type IServiceManager interface {
	Car() CarService
	Rental() RentalService
}

type service struct {
	carService    CarService
	rentalService RentalService
}

func New(stg storage.IStorage, log logger.ILogger) IServiceManager {
	return &service{
		carService:    NewCarService(stg, log),
		rentalService: NewRentalService(stg, log),
	}
}

func (s *service) Car() CarService {
	return s.carService
}

func (s *service) Rental() RentalService {
	return s.rentalService
}
