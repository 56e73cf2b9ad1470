package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"vitrina/internal/kv"
)

const favoritesPrefix = "favorites"

// Favorites is the per-scope set of favorite product ids. Stored order is
// insertion order, which is how the listing renders them.
type Favorites struct {
	kv kv.Store
}

func NewFavorites(store kv.Store) *Favorites {
	return &Favorites{kv: store}
}

// FavoritesScope derives the scope for a user and location pair.
func FavoritesScope(userID, locationID string) Scope {
	return ForUser(favoritesPrefix, userID, locationID)
}

// List returns the favorite product ids for the scope. A missing or corrupt
// record reads as empty.
func (f *Favorites) List(ctx context.Context, scope Scope) ([]string, error) {
	data, err := f.kv.Get(ctx, scope.Key())
	if errors.Is(err, kv.ErrNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return []string{}, nil
	}
	return ids, nil
}

func (f *Favorites) Has(ctx context.Context, scope Scope, productID string) (bool, error) {
	ids, err := f.List(ctx, scope)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == productID {
			return true, nil
		}
	}
	return false, nil
}

func (f *Favorites) Add(ctx context.Context, scope Scope, productID string) error {
	ids, err := f.List(ctx, scope)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == productID {
			return nil
		}
	}
	return f.save(ctx, scope, append(ids, productID))
}

func (f *Favorites) Remove(ctx context.Context, scope Scope, productID string) error {
	ids, err := f.List(ctx, scope)
	if err != nil {
		return err
	}
	kept := ids[:0]
	for _, id := range ids {
		if id != productID {
			kept = append(kept, id)
		}
	}
	return f.save(ctx, scope, kept)
}

// Toggle flips membership and reports whether the product is a favorite
// afterwards.
func (f *Favorites) Toggle(ctx context.Context, scope Scope, productID string) (bool, error) {
	has, err := f.Has(ctx, scope, productID)
	if err != nil {
		return false, err
	}
	if has {
		return false, f.Remove(ctx, scope, productID)
	}
	return true, f.Add(ctx, scope, productID)
}

func (f *Favorites) save(ctx context.Context, scope Scope, ids []string) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encode favorites: %w", err)
	}
	if err := f.kv.Set(ctx, scope.Key(), data); err != nil {
		return fmt.Errorf("save favorites: %w", err)
	}
	return nil
}
