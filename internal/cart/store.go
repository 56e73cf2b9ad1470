package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"vitrina/internal/kv"
)

// StorageKey is the single fixed key the cart lives under. The cart is one
// device-scoped collection on purpose: unlike preferences it is NOT keyed by
// user identity or store location, so it survives login, logout and location
// switches unchanged.
const StorageKey = "cart"

// Store owns the authoritative cart state. All transitions go through
// Dispatch, which serializes them: each dispatch sees the result of the
// previous one, and the new state is persisted before Dispatch returns.
// Nothing outside this package mutates the state directly.
type Store struct {
	mu    sync.Mutex
	state State
	kv    kv.Store
}

func NewStore(store kv.Store) *Store {
	return &Store{
		state: State{Items: []LineItem{}},
		kv:    store,
	}
}

// Load restores the persisted cart. Missing or malformed records (corrupt
// JSON, items not an array, total not a number) fall back to an empty cart;
// the returned error reports storage trouble for logging but the store is
// always left usable.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = State{Items: []LineItem{}}

	data, err := s.kv.Get(ctx, StorageKey)
	if errors.Is(err, kv.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load cart: %w", err)
	}

	var restored State
	if err := json.Unmarshal(data, &restored); err != nil {
		// Corrupt record: discard and start empty rather than fail checkout
		// over stale bytes.
		return nil
	}
	if restored.Items == nil {
		restored.Items = []LineItem{}
	}

	// Recompute rather than trust the stored total, so the total invariant
	// holds from the first read onward.
	s.state = finalize(restored.Items)
	return nil
}

// Dispatch applies one action and persists the result. The in-memory state
// is updated even when persistence fails; the error is for the caller to log.
func (s *Store) Dispatch(ctx context.Context, action Action) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = reduce(s.state, action)
	snapshot := copyState(s.state)

	data, err := json.Marshal(s.state)
	if err != nil {
		return snapshot, fmt.Errorf("encode cart: %w", err)
	}
	if err := s.kv.Set(ctx, StorageKey, data); err != nil {
		return snapshot, fmt.Errorf("persist cart: %w", err)
	}
	return snapshot, nil
}

// Snapshot returns a copy of the current state for readers. The presentation
// layer only ever sees copies.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyState(s.state)
}

func (s *Store) Add(ctx context.Context, p AddPayload) (State, error) {
	return s.Dispatch(ctx, Action{Kind: AddItem, Add: &p})
}

func (s *Store) Remove(ctx context.Context, identityKey string) (State, error) {
	return s.Dispatch(ctx, Action{Kind: RemoveItem, IdentityKey: identityKey})
}

func (s *Store) Increment(ctx context.Context, identityKey string) (State, error) {
	return s.Dispatch(ctx, Action{Kind: IncrementItem, IdentityKey: identityKey})
}

func (s *Store) Decrement(ctx context.Context, identityKey string) (State, error) {
	return s.Dispatch(ctx, Action{Kind: DecrementItem, IdentityKey: identityKey})
}

func (s *Store) Clear(ctx context.Context) (State, error) {
	return s.Dispatch(ctx, Action{Kind: ClearCart})
}

func copyState(s State) State {
	items := make([]LineItem, len(s.Items))
	copy(items, s.Items)
	for i := range items {
		if len(items[i].AddOns) > 0 {
			addOns := make([]AddOn, len(items[i].AddOns))
			copy(addOns, items[i].AddOns)
			items[i].AddOns = addOns
		}
	}
	return State{Items: items, Total: s.Total}
}
