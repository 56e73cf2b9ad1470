package cart

import "math"

// reduce applies one action and returns the next state. It is pure: the input
// state is never mutated, and the returned total is always recomputed from
// the returned items. Unknown identity keys and unknown kinds are no-ops.
func reduce(state State, action Action) State {
	switch action.Kind {
	case AddItem:
		if action.Add == nil {
			return state
		}
		return addLine(state, *action.Add)

	case RemoveItem:
		items := make([]LineItem, 0, len(state.Items))
		for _, it := range state.Items {
			if it.IdentityKey == action.IdentityKey {
				continue
			}
			items = append(items, it)
		}
		return finalize(items)

	case IncrementItem:
		items := cloneItems(state.Items)
		for i := range items {
			if items[i].IdentityKey == action.IdentityKey {
				items[i].Quantity++
			}
		}
		return finalize(items)

	case DecrementItem:
		updated := cloneItems(state.Items)
		items := updated[:0]
		for _, it := range updated {
			if it.IdentityKey == action.IdentityKey {
				it.Quantity--
			}
			if it.Quantity > 0 {
				items = append(items, it)
			}
		}
		return finalize(items)

	case ClearCart:
		return State{Items: []LineItem{}, Total: 0}

	default:
		return state
	}
}

// addLine merges the payload into an existing line when the identity key
// matches, otherwise appends a new line. On a merge the stored price fields
// win: re-adding never silently changes the price fixed at first insertion.
func addLine(state State, p AddPayload) State {
	qty := p.Quantity
	if qty < 1 {
		qty = 1
	}

	unitBase := coercePrice(p.UnitBasePrice)
	if p.VariantID != nil && *p.VariantID != "" && p.VariantUnitPrice != nil {
		unitBase = coercePrice(*p.VariantUnitPrice)
	}

	addOns := make([]AddOn, 0, len(p.AddOns))
	for _, a := range p.AddOns {
		a.UnitPrice = coercePrice(a.UnitPrice)
		addOns = append(addOns, a)
	}

	key := identityKey(p.ProductID, p.VariantID, addOns)

	items := cloneItems(state.Items)
	for i := range items {
		if items[i].IdentityKey == key {
			items[i].Quantity += qty
			return finalize(items)
		}
	}

	items = append(items, LineItem{
		ProductID:     p.ProductID,
		VariantID:     p.VariantID,
		VariantName:   p.VariantName,
		AddOns:        addOns,
		IdentityKey:   key,
		UnitBasePrice: unitBase,
		Quantity:      qty,
		Name:          p.Name,
		ImageURL:      p.ImageURL,
		Description:   p.Description,
	})
	return finalize(items)
}

// finalize recomputes the total from scratch. Incremental updates would be
// cheaper but can drift; a full pass keeps total == recompute(items) after
// every single transition.
func finalize(items []LineItem) State {
	total := 0.0
	for _, it := range items {
		total += it.UnitPrice() * float64(it.Quantity)
	}
	return State{Items: items, Total: total}
}

// coercePrice maps non-finite inputs to zero. A cart must always produce a
// well-defined total, so bad numeric data is repaired rather than rejected.
func coercePrice(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func cloneItems(items []LineItem) []LineItem {
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}
