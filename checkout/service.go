package checkout

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/christianlemes/rotisserie-pwa/cart"
	"github.com/christianlemes/rotisserie-pwa/models"
)

// Pricer returns current unit prices for a set of menu item ids. Ids not
// on the menu are omitted from the result.
type Pricer interface {
	PriceOf(ctx context.Context, itemIDs []uint) (map[uint]decimal.Decimal, error)
}

// OrderStore persists a completed order with all its lines atomically.
// Either the whole order exists afterwards or none of it does.
type OrderStore interface {
	CreateOrder(ctx context.Context, order *models.Order) error
}

// CartStore is the slice of the session cart API checkout needs.
type CartStore interface {
	Get(ctx context.Context, sessionID string) (cart.Cart, error)
	Clear(ctx context.Context, sessionID string) error
}

type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
}

type Result struct {
	OrderID  uint            `json:"order_id"`
	OrderRef string          `json:"order_ref"`
	Total    decimal.Decimal `json:"total"`
}

// Service turns a session's cart into a durable, price-frozen order.
type Service struct {
	carts  CartStore
	pricer Pricer
	orders OrderStore
	locks  Locker
	log    *slog.Logger
}

func NewService(carts CartStore, pricer Pricer, orders OrderStore, locks Locker, log *slog.Logger) *Service {
	return &Service{carts: carts, pricer: pricer, orders: orders, locks: locks, log: log}
}

// Checkout validates the cart, freezes current prices, persists the order
// and its lines in one transaction, then clears the cart. The commit is
// the point of no return: a failed clear is logged and the order stands.
// On any failure before the commit the cart is left untouched, so the
// client can simply resubmit.
func (s *Service) Checkout(ctx context.Context, customerID uint, addr Address) (Result, error) {
	sessionID := strconv.FormatUint(uint64(customerID), 10)

	ok, err := s.locks.TryLock(ctx, sessionID)
	if err != nil {
		return Result{}, fmt.Errorf("%w: acquiring session lock: %v", ErrCheckoutFailed, err)
	}
	if !ok {
		return Result{}, ErrCheckoutInFlight
	}
	defer func() {
		if err := s.locks.Unlock(ctx, sessionID); err != nil {
			s.log.Error("failed to release checkout lock", "session", sessionID, "err", err)
		}
	}()

	c, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return Result{}, fmt.Errorf("%w: reading cart: %v", ErrCheckoutFailed, err)
	}
	if len(c) == 0 {
		return Result{}, ErrEmptyCart
	}

	ids := make([]uint, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	// Frozen price map for this attempt only. An id missing from the
	// menu prices its line at zero; the line is still recorded.
	prices, err := s.pricer.PriceOf(ctx, ids)
	if err != nil {
		return Result{}, fmt.Errorf("%w: fetching prices: %v", ErrCheckoutFailed, err)
	}

	total := decimal.Zero
	items := make([]models.OrderItem, 0, len(ids))
	for _, id := range ids {
		price := prices[id]
		qty := c[id]
		total = total.Add(price.Mul(decimal.NewFromInt(int64(qty))))
		items = append(items, models.OrderItem{
			MenuItemID: id,
			Quantity:   qty,
			UnitPrice:  price,
		})
	}
	total = total.Round(2)

	order := &models.Order{
		CustomerID:   customerID,
		OrderRef:     newOrderRef(),
		Street:       addr.Street,
		Number:       addr.Number,
		Neighborhood: addr.Neighborhood,
		TotalAmount:  total,
		Items:        items,
	}
	if err := s.orders.CreateOrder(ctx, order); err != nil {
		s.log.Error("order persistence failed, cart left intact",
			"session", sessionID, "err", err)
		return Result{}, fmt.Errorf("%w: %v", ErrCheckoutFailed, err)
	}

	if err := s.carts.Clear(ctx, sessionID); err != nil {
		// Best-effort cleanup. The order committed; a stale cart view is
		// acceptable, a lost order is not.
		s.log.Error("failed to clear cart after commit",
			"session", sessionID, "order_ref", order.OrderRef, "err", err)
	}

	s.log.Info("order placed",
		"order_id", order.ID, "order_ref", order.OrderRef,
		"customer_id", customerID, "total", total.String(), "lines", len(items))

	return Result{OrderID: order.ID, OrderRef: order.OrderRef, Total: total}, nil
}

func newOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}
