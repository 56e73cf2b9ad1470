package catalog

import "vitrina/internal/cart"

// Selection is a resolved purchase choice: a product, optionally one of its
// variants and any picked add-ons. The presentation layer builds it after
// enforcing group constraints; the cart receives only the resulting payload.
type Selection struct {
	Product  Product
	Variant  *Variant
	AddOns   []AddOnOption
	Quantity int
}

// CartPayload assembles the ADD_ITEM payload. The variant price overrides
// the base price only when the catalog actually set one; a variant without a
// price keeps the product price.
func (s Selection) CartPayload() cart.AddPayload {
	p := cart.AddPayload{
		ProductID:     s.Product.ID,
		Name:          s.Product.Name,
		ImageURL:      s.Product.ImageURL,
		Description:   s.Product.Description,
		UnitBasePrice: s.Product.Price,
		Quantity:      s.Quantity,
	}

	if s.Variant != nil {
		p.VariantID = &s.Variant.ID
		p.VariantName = &s.Variant.Name
		p.VariantUnitPrice = s.Variant.Price
	}

	for _, opt := range s.AddOns {
		p.AddOns = append(p.AddOns, ToCartAddOn(opt))
	}
	return p
}
