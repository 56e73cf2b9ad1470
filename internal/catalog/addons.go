package catalog

import (
	"math"

	"vitrina/internal/cart"
)

// CollectAddOns flattens everything a product offers as extras: the direct
// add-on list plus every option inside the option groups. Inactive entries
// are skipped, non-finite prices are repaired to zero, and duplicates are
// dropped by id (name fallback when no id exists), keeping the first
// occurrence.
func CollectAddOns(p Product) []AddOnOption {
	bucket := make([]AddOnOption, 0, len(p.AddOns))

	for _, opt := range p.AddOns {
		bucket = appendOption(bucket, opt)
	}
	for _, group := range p.AddOnGroups {
		for _, opt := range group.Options {
			bucket = appendOption(bucket, opt)
		}
	}

	seen := make(map[string]bool, len(bucket))
	out := bucket[:0]
	for _, opt := range bucket {
		key := opt.Name
		if opt.ID != nil && *opt.ID != "" {
			key = *opt.ID
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, opt)
	}
	return out
}

func appendOption(bucket []AddOnOption, opt AddOnOption) []AddOnOption {
	if opt.Name == "" || !opt.Active {
		return bucket
	}
	if math.IsNaN(opt.Price) || math.IsInf(opt.Price, 0) {
		opt.Price = 0
	}
	return append(bucket, opt)
}

// ToCartAddOn converts a selected option into the shape the cart keys on.
func ToCartAddOn(opt AddOnOption) cart.AddOn {
	return cart.AddOn{
		AddOnID:   opt.ID,
		Name:      opt.Name,
		UnitPrice: opt.Price,
	}
}
