package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"vitrina/internal/catalog"
	"vitrina/internal/kv"
)

// recentKey is fixed on purpose: recently-viewed products are device history,
// not account state, so the list survives login and logout.
const recentKey = "recently_viewed"

const defaultRecentLimit = 5

// RecentlyViewed keeps the last few products the customer looked at, newest
// first, deduped by product id.
type RecentlyViewed struct {
	kv    kv.Store
	limit int
}

func NewRecentlyViewed(store kv.Store) *RecentlyViewed {
	return &RecentlyViewed{kv: store, limit: defaultRecentLimit}
}

func (r *RecentlyViewed) List(ctx context.Context) ([]catalog.Product, error) {
	data, err := r.kv.Get(ctx, recentKey)
	if errors.Is(err, kv.ErrNotFound) {
		return []catalog.Product{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list recently viewed: %w", err)
	}

	var products []catalog.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return []catalog.Product{}, nil
	}
	return products, nil
}

// Record moves the product to the front, dropping any earlier occurrence and
// trimming the list to the limit.
func (r *RecentlyViewed) Record(ctx context.Context, p catalog.Product) error {
	products, err := r.List(ctx)
	if err != nil {
		return err
	}

	next := make([]catalog.Product, 0, r.limit)
	next = append(next, p)
	for _, existing := range products {
		if existing.ID == p.ID {
			continue
		}
		next = append(next, existing)
		if len(next) == r.limit {
			break
		}
	}

	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode recently viewed: %w", err)
	}
	if err := r.kv.Set(ctx, recentKey, data); err != nil {
		return fmt.Errorf("save recently viewed: %w", err)
	}
	return nil
}
