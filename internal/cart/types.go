package cart

// AddOn is one selected priced extra on a cart line. AddOnID may be nil for
// catalog entries that only carry a display name; Name is then the fallback
// identity of the selection.
type AddOn struct {
	AddOnID   *string `json:"addOnId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
}

// LineItem is one distinct purchasable entry in the cart. Two line items are
// the same entry if and only if their IdentityKey is equal; product identity
// alone is not enough once variants and add-ons exist.
type LineItem struct {
	ProductID   string  `json:"productId"`
	VariantID   *string `json:"variantId"`
	VariantName *string `json:"variantName"`
	AddOns      []AddOn `json:"addOns"`
	IdentityKey string  `json:"identityKey"`

	// UnitBasePrice is the product price or, when a variant is selected,
	// the variant override. Fixed at first insertion for a given key.
	UnitBasePrice float64 `json:"unitBasePrice"`
	Quantity      int     `json:"quantity"`

	// Display fields passed through unchanged.
	Name        string `json:"name"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Description string `json:"description,omitempty"`
}

// UnitPrice is the effective per-unit price: base price plus add-on surcharges.
func (li LineItem) UnitPrice() float64 {
	p := li.UnitBasePrice
	for _, a := range li.AddOns {
		p += a.UnitPrice
	}
	return p
}

// State is the whole cart: line items in insertion order plus the derived
// total. Total is never set directly; every transition recomputes it from the
// items so the two can not drift apart.
type State struct {
	Items []LineItem `json:"items"`
	Total float64    `json:"total"`
}

// ItemCount is the number of units across all lines, for badge display.
func (s State) ItemCount() int {
	n := 0
	for _, it := range s.Items {
		n += it.Quantity
	}
	return n
}

// Kind discriminates dispatch payloads.
type Kind string

const (
	AddItem       Kind = "ADD_ITEM"
	RemoveItem    Kind = "REMOVE_ITEM"
	IncrementItem Kind = "INCREMENT_ITEM"
	DecrementItem Kind = "DECREMENT_ITEM"
	ClearCart     Kind = "CLEAR_CART"
)

// AddPayload is the product payload handed over when an item is added. The
// caller resolves variant choice upstream; the reducer only keys on what it
// is given and never rejects a payload over data quality.
type AddPayload struct {
	ProductID        string   `json:"productId"`
	Name             string   `json:"name"`
	ImageURL         string   `json:"imageUrl,omitempty"`
	Description      string   `json:"description,omitempty"`
	UnitBasePrice    float64  `json:"unitBasePrice"`
	VariantID        *string  `json:"variantId,omitempty"`
	VariantName      *string  `json:"variantName,omitempty"`
	VariantUnitPrice *float64 `json:"variantUnitPrice,omitempty"`
	AddOns           []AddOn  `json:"addOns,omitempty"`
	Quantity         int      `json:"quantity,omitempty"`
}

// Action is a single reducer dispatch. Add is set for AddItem; IdentityKey
// addresses the line for RemoveItem, IncrementItem and DecrementItem.
type Action struct {
	Kind        Kind
	Add         *AddPayload
	IdentityKey string
}
