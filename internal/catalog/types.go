package catalog

import "vitrina/internal/schedule"

// AddOnOption is one selectable priced extra as the catalog describes it.
// Price zero means the extra is included at no charge.
type AddOnOption struct {
	ID     *string `json:"id"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Active bool    `json:"active"`
}

// AddOnGroup constrains a set of options: single-choice groups let the
// customer pick one, multi-choice groups any number. The constraint is
// enforced by the presentation layer, not by the cart.
type AddOnGroup struct {
	Name        string        `json:"name"`
	MultiChoice bool          `json:"multiChoice"`
	Options     []AddOnOption `json:"options"`
}

// Variant is a purchasable configuration of a product. A non-nil Price
// overrides the product's base price.
type Variant struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Price *float64 `json:"price"`
}

type Product struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Category    string        `json:"category,omitempty"`
	Price       float64       `json:"price"`
	ImageURL    string        `json:"imageUrl,omitempty"`
	Active      bool          `json:"active"`
	Variants    []Variant     `json:"variants,omitempty"`
	AddOns      []AddOnOption `json:"addOns,omitempty"`
	AddOnGroups []AddOnGroup  `json:"addOnGroups,omitempty"`
}

// HasVariants reports whether the presentation layer must resolve a variant
// before the product can go into the cart.
func (p Product) HasVariants() bool {
	return len(p.Variants) > 0
}

// Location is one store the customer can order from.
type Location struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Address  string        `json:"address,omitempty"`
	Phone    string        `json:"phone,omitempty"`
	Schedule schedule.Week `json:"webSchedule,omitempty"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
