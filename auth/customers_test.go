package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/christianlemes/rotisserie-pwa/models"
)

type fakeCustomerStore struct {
	byEmail map[string]*models.Customer
	nextID  uint
	err     error
}

func newFakeCustomerStore() *fakeCustomerStore {
	return &fakeCustomerStore{byEmail: make(map[string]*models.Customer)}
}

func (f *fakeCustomerStore) FindByEmail(_ context.Context, email string) (*models.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	if c, ok := f.byEmail[email]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, ErrCustomerNotFound
}

func (f *fakeCustomerStore) Create(_ context.Context, customer *models.Customer) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	customer.ID = f.nextID
	cp := *customer
	f.byEmail[customer.Email] = &cp
	return nil
}

func TestResolveOrCreateCreatesWhenAbsent(t *testing.T) {
	store := newFakeCustomerStore()

	cust, err := ResolveOrCreateCustomer(context.Background(), store, "ana@example.com", "Ana")
	require.NoError(t, err)
	assert.Equal(t, uint(1), cust.ID)
	assert.Equal(t, "Ana", cust.Name)
	assert.Equal(t, "ana@example.com", cust.Email)
}

func TestResolveOrCreateExistingRecordWins(t *testing.T) {
	store := newFakeCustomerStore()

	first, err := ResolveOrCreateCustomer(context.Background(), store, "ana@example.com", "Ana")
	require.NoError(t, err)

	// Same email, different name: the stored record wins.
	second, err := ResolveOrCreateCustomer(context.Background(), store, "ana@example.com", "Ana Maria")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "same email must resolve to the same customer")
	assert.Equal(t, "Ana", second.Name, "name must not be overwritten on match")
}

func TestResolveOrCreatePropagatesStoreErrors(t *testing.T) {
	store := newFakeCustomerStore()
	store.err = errors.New("db down")

	_, err := ResolveOrCreateCustomer(context.Background(), store, "ana@example.com", "Ana")
	assert.Error(t, err)
}
