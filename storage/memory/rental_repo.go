package memory

import (
	"context"
	"errors"

	"carrental/pkg/logger"
	"carrental/pkg/models"
	"carrental/storage"
)

type rentalRepo struct {
	db  *Store
	log logger.ILogger
}

func NewRentalRepo(db *Store, log logger.ILogger) storage.IRentalStorage {
	return &rentalRepo{db: db, log: log}
}

func (r *rentalRepo) Create(ctx context.Context, rental *models.Rental) (*models.Rental, error) {
	if rental == nil || rental.Car == nil || rental.Customer == nil {
		err := errors.New("rental must reference a car and a customer")
		r.log.Error("failed to create rental", logger.Error(err))
		return nil, err
	}
	r.db.rentals = append(r.db.rentals, rental)
	return rental, nil
}

func (r *rentalRepo) GetAll(ctx context.Context) ([]*models.Rental, error) {
	rentals := make([]*models.Rental, len(r.db.rentals))
	copy(rentals, r.db.rentals)
	return rentals, nil
}
