package checkout

import "errors"

var (
	// ErrEmptyCart rejects a checkout before any write happens.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrCheckoutInFlight means another checkout for the same session
	// holds the lock. The caller should retry after it finishes.
	ErrCheckoutInFlight = errors.New("checkout already in progress")

	// ErrCheckoutFailed wraps a persistence failure. The transaction was
	// rolled back and the cart is intact, so resubmitting is safe.
	ErrCheckoutFailed = errors.New("failed to finalize order")
)
