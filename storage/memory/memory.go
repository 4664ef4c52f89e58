package memory

import (
	"context"

	"carrental/config"
	"carrental/pkg/logger"
	"carrental/pkg/models"
	"carrental/storage"
)

// Store keeps the whole fleet and ledger in process memory.
// It is owned by a single goroutine and does no locking.
type Store struct {
	cars      []*models.Car
	customers []*models.Customer
	rentals   []*models.Rental
	nextID    int64
	log       logger.ILogger
}

func New(ctx context.Context, cfg config.Config, log logger.ILogger) (*Store, error) {
	return NewWithCars(ctx, cfg, log, models.SeedCars())
}

func NewWithCars(_ context.Context, cfg config.Config, log logger.ILogger, cars []*models.Car) (*Store, error) {
	s := &Store{
		cars:   cars,
		nextID: cfg.FirstCustomerID,
		log:    log,
	}

	log.Info("in-memory store ready", logger.Int("cars", len(cars)), logger.Int64("first_customer_id", cfg.FirstCustomerID))

	return s, nil
}

func (s *Store) Close() {
	s.log.Info("in-memory store closed", logger.Int("rentals", len(s.rentals)))
}

func (s *Store) Car() storage.ICarStorage           { return NewCarRepo(s, s.log) }
func (s *Store) Customer() storage.ICustomerStorage { return NewCustomerRepo(s, s.log) }
func (s *Store) Rental() storage.IRentalStorage     { return NewRentalRepo(s, s.log) }
