package cart

import (
	"context"
	"errors"
)

// Cart maps a menu item id to the quantity the customer wants. It lives
// only in session storage and never reaches the order tables until
// checkout commits.
type Cart map[uint]int

// ErrInvalidInput is returned for a non-positive item id or quantity.
var ErrInvalidInput = errors.New("invalid item id or quantity")

// Store keeps one cart per session. Sessions are keyed by the customer id
// of the authenticated actor; no cart is ever shared across sessions.
type Store interface {
	// Get returns the cart for the session, empty (never nil) when the
	// session has no cart yet.
	Get(ctx context.Context, sessionID string) (Cart, error)

	// Add increments the stored quantity for itemID, creating the entry
	// when absent, and returns the full resulting cart.
	Add(ctx context.Context, sessionID string, itemID uint, quantity int) (Cart, error)

	// Remove deletes the whole entry for itemID. Removing an absent item
	// is a no-op, not an error.
	Remove(ctx context.Context, sessionID string, itemID uint) (Cart, error)

	// Clear empties the session's cart.
	Clear(ctx context.Context, sessionID string) error
}

func validate(itemID uint, quantity int) error {
	if itemID == 0 || quantity <= 0 {
		return ErrInvalidInput
	}
	return nil
}
