package memory

import (
	"context"

	"carrental/pkg/logger"
	"carrental/pkg/models"
	"carrental/storage"
)

type customerRepo struct {
	db  *Store
	log logger.ILogger
}

func NewCustomerRepo(db *Store, log logger.ILogger) storage.ICustomerStorage {
	return &customerRepo{db: db, log: log}
}

// Create always allocates a fresh id; customers are never deduplicated.
func (r *customerRepo) Create(ctx context.Context, name, contact string) (*models.Customer, error) {
	c := &models.Customer{
		ID:      r.db.nextID,
		Name:    name,
		Contact: contact,
	}
	r.db.nextID++
	r.db.customers = append(r.db.customers, c)
	return c, nil
}

func (r *customerRepo) GetAll(ctx context.Context) ([]*models.Customer, error) {
	customers := make([]*models.Customer, len(r.db.customers))
	copy(customers, r.db.customers)
	return customers, nil
}
