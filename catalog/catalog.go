package catalog

import (
	"context"

	"github.com/shopspring/decimal"
)

// MenuEntry is one line of the public menu: a menu item joined with its
// product's name and description.
type MenuEntry struct {
	ItemID      uint            `json:"item_id"`
	ProductName string          `json:"product_name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Available   bool            `json:"available"`
}

// Store is the read-only catalog surface the ordering flow consumes.
type Store interface {
	// ListAvailable returns the menu entries currently offered, ordered
	// by category then product name.
	ListAvailable(ctx context.Context) ([]MenuEntry, error)

	// Lookup returns the entries for the given item ids, available or
	// not. Unknown ids are omitted.
	Lookup(ctx context.Context, itemIDs []uint) (map[uint]MenuEntry, error)

	// PriceOf returns the current unit price for every given id found in
	// the catalog. Ids absent from the catalog are omitted from the
	// result, never an error. Each call reads the catalog as of now; the
	// result must not be cached across checkout attempts.
	PriceOf(ctx context.Context, itemIDs []uint) (map[uint]decimal.Decimal, error)
}
