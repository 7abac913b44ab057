package auth

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/christianlemes/rotisserie-pwa/models"
)

var ErrCustomerNotFound = errors.New("customer not found")

// CustomerStore is the identity lookup surface behind login.
type CustomerStore interface {
	FindByEmail(ctx context.Context, email string) (*models.Customer, error)
	Create(ctx context.Context, customer *models.Customer) error
}

type GormCustomerStore struct {
	db *gorm.DB
}

func NewGormCustomerStore(db *gorm.DB) *GormCustomerStore {
	return &GormCustomerStore{db: db}
}

func (s *GormCustomerStore) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	var cust models.Customer
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&cust).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cust, nil
}

func (s *GormCustomerStore) Create(ctx context.Context, customer *models.Customer) error {
	return s.db.WithContext(ctx).Create(customer).Error
}

var _ CustomerStore = (*GormCustomerStore)(nil)

// ResolveOrCreateCustomer returns the customer registered under email,
// creating one when absent. An existing record wins: its stored name is
// kept, never overwritten by the name sent at login.
func ResolveOrCreateCustomer(ctx context.Context, store CustomerStore, email, name string) (*models.Customer, error) {
	cust, err := store.FindByEmail(ctx, email)
	if err == nil {
		return cust, nil
	}
	if !errors.Is(err, ErrCustomerNotFound) {
		return nil, err
	}
	cust = &models.Customer{Name: name, Email: email}
	if err := store.Create(ctx, cust); err != nil {
		return nil, err
	}
	return cust, nil
}
