package catalog

import (
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	"github.com/christianlemes/rotisserie-pwa/models"
)

// GormStore reads the menu tables. Menu listings are coalesced with
// singleflight so a burst of identical reads issues one query; price
// lookups are never coalesced or cached, checkout needs them fresh.
type GormStore struct {
	db  *gorm.DB
	sfg singleflight.Group
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) ListAvailable(ctx context.Context) ([]MenuEntry, error) {
	v, err, _ := s.sfg.Do("menu", func() (interface{}, error) {
		var items []models.MenuItem
		err := s.db.WithContext(ctx).
			Preload("Product").
			Select("menu_items.*").
			Joins("JOIN products ON products.id = menu_items.product_id").
			Where("menu_items.available = ?", true).
			Order("menu_items.category, products.name").
			Find(&items).Error
		if err != nil {
			return nil, err
		}
		entries := make([]MenuEntry, 0, len(items))
		for _, it := range items {
			entries = append(entries, toEntry(it))
		}
		return entries, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]MenuEntry), nil
}

func (s *GormStore) Lookup(ctx context.Context, itemIDs []uint) (map[uint]MenuEntry, error) {
	out := make(map[uint]MenuEntry, len(itemIDs))
	if len(itemIDs) == 0 {
		return out, nil
	}
	var items []models.MenuItem
	err := s.db.WithContext(ctx).
		Preload("Product").
		Where("id IN ?", itemIDs).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		out[it.ID] = toEntry(it)
	}
	return out, nil
}

func (s *GormStore) PriceOf(ctx context.Context, itemIDs []uint) (map[uint]decimal.Decimal, error) {
	out := make(map[uint]decimal.Decimal, len(itemIDs))
	if len(itemIDs) == 0 {
		return out, nil
	}
	var rows []models.MenuItem
	err := s.db.WithContext(ctx).
		Select("id", "price").
		Where("id IN ?", itemIDs).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.ID] = r.Price
	}
	return out, nil
}

func toEntry(it models.MenuItem) MenuEntry {
	return MenuEntry{
		ItemID:      it.ID,
		ProductName: it.Product.Name,
		Description: it.Product.Description,
		Category:    it.Category,
		Price:       it.Price,
		Available:   it.Available,
	}
}

var _ Store = (*GormStore)(nil)
