package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"vitrina/internal/kv"
)

const categoryOrderPrefix = "category_order"

// CategoryOrder persists the per-scope display order of catalog categories.
type CategoryOrder struct {
	kv kv.Store
}

func NewCategoryOrder(store kv.Store) *CategoryOrder {
	return &CategoryOrder{kv: store}
}

func CategoryOrderScope(userID, locationID string) Scope {
	return ForUser(categoryOrderPrefix, userID, locationID)
}

func (c *CategoryOrder) Get(ctx context.Context, scope Scope) ([]string, error) {
	data, err := c.kv.Get(ctx, scope.Key())
	if errors.Is(err, kv.ErrNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get category order: %w", err)
	}

	var order []string
	if err := json.Unmarshal(data, &order); err != nil {
		return []string{}, nil
	}
	return order, nil
}

func (c *CategoryOrder) Set(ctx context.Context, scope Scope, order []string) error {
	data, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("encode category order: %w", err)
	}
	if err := c.kv.Set(ctx, scope.Key(), data); err != nil {
		return fmt.Errorf("save category order: %w", err)
	}
	return nil
}
