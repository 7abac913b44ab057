package checkout

import (
	"context"

	"gorm.io/gorm"

	"github.com/christianlemes/rotisserie-pwa/models"
)

// GormOrderStore writes orders to Postgres. The order row and every line
// go through one transaction so a partial order is never observable.
type GormOrderStore struct {
	db *gorm.DB
}

func NewGormOrderStore(db *gorm.DB) *GormOrderStore {
	return &GormOrderStore{db: db}
}

func (s *GormOrderStore) CreateOrder(ctx context.Context, order *models.Order) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

var _ OrderStore = (*GormOrderStore)(nil)
