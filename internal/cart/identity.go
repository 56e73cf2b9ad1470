package cart

import (
	"sort"
	"strings"
)

const (
	keySeparator = "::"

	// baseVariant marks a line with no variant selected.
	baseVariant = "base"

	// noAddOns is the canonical signature of an empty add-on selection.
	noAddOns = "none"
)

// identityKey derives the deterministic key that decides whether two cart
// lines merge. Selection order of add-ons never affects the key: the add-on
// signature is sorted before joining.
func identityKey(productID string, variantID *string, addOns []AddOn) string {
	variant := baseVariant
	if variantID != nil && *variantID != "" {
		variant = *variantID
	}
	return productID + keySeparator + variant + keySeparator + addOnSignature(addOns)
}

// addOnSignature canonicalizes an add-on selection: each entry contributes its
// id, or its name when no id exists, and the parts are sorted ascending.
func addOnSignature(addOns []AddOn) string {
	if len(addOns) == 0 {
		return noAddOns
	}
	parts := make([]string, 0, len(addOns))
	for _, a := range addOns {
		if a.AddOnID != nil && *a.AddOnID != "" {
			parts = append(parts, *a.AddOnID)
			continue
		}
		parts = append(parts, a.Name)
	}
	sort.Strings(parts)
	return strings.Join(parts, "+")
}
