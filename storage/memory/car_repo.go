package memory

import (
	"context"
	"fmt"

	"carrental/pkg/logger"
	"carrental/pkg/models"
	"carrental/storage"
)

type carRepo struct {
	db  *Store
	log logger.ILogger
}

func NewCarRepo(db *Store, log logger.ILogger) storage.ICarStorage {
	return &carRepo{db: db, log: log}
}

func (r *carRepo) GetAll(ctx context.Context) ([]*models.Car, error) {
	cars := make([]*models.Car, len(r.db.cars))
	copy(cars, r.db.cars)
	return cars, nil
}

func (r *carRepo) GetAvailable(ctx context.Context) ([]*models.Car, error) {
	var cars []*models.Car
	for _, c := range r.db.cars {
		if c.Available {
			cars = append(cars, c)
		}
	}
	return cars, nil
}

func (r *carRepo) GetByID(ctx context.Context, id int64) (*models.Car, error) {
	for _, c := range r.db.cars {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, fmt.Errorf("car %d: %w", id, storage.ErrCarNotFound)
}

func (r *carRepo) MarkRented(ctx context.Context, id int64) error {
	car, err := r.GetByID(ctx, id)
	if err != nil {
		r.log.Error("failed to mark car rented", logger.Int64("car_id", id), logger.Error(err))
		return err
	}
	if !car.Available {
		err = fmt.Errorf("car %d: %w", id, storage.ErrCarNotAvailable)
		r.log.Error("failed to mark car rented", logger.Int64("car_id", id), logger.Error(err))
		return err
	}
	car.Rent()
	return nil
}
