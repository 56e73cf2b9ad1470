package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestCartPayloadBaseProduct(t *testing.T) {
	s := Selection{
		Product:  Product{ID: "p1", Name: "Empanada", Price: 1200, ImageURL: "img.png"},
		Quantity: 2,
	}

	got := s.CartPayload()
	assert.Equal(t, "p1", got.ProductID)
	assert.Equal(t, 1200.0, got.UnitBasePrice)
	assert.Equal(t, 2, got.Quantity)
	assert.Nil(t, got.VariantID)
	assert.Nil(t, got.VariantUnitPrice)
	assert.Empty(t, got.AddOns)
}

func TestCartPayloadVariantWithPrice(t *testing.T) {
	s := Selection{
		Product: Product{ID: "p1", Name: "Empanada", Price: 1200},
		Variant: &Variant{ID: "v1", Name: "Large", Price: floatPtr(1500)},
	}

	got := s.CartPayload()
	require.NotNil(t, got.VariantID)
	assert.Equal(t, "v1", *got.VariantID)
	require.NotNil(t, got.VariantUnitPrice)
	assert.Equal(t, 1500.0, *got.VariantUnitPrice)
}

func TestCartPayloadVariantWithoutPrice(t *testing.T) {
	s := Selection{
		Product: Product{ID: "p1", Name: "Empanada", Price: 1200},
		Variant: &Variant{ID: "v1", Name: "Regular"},
	}

	got := s.CartPayload()
	require.NotNil(t, got.VariantID)
	assert.Nil(t, got.VariantUnitPrice, "an unpriced variant keeps the base price")
}

func TestCartPayloadCarriesAddOns(t *testing.T) {
	s := Selection{
		Product: Product{ID: "p1", Name: "Empanada", Price: 1200},
		AddOns: []AddOnOption{
			{ID: idPtr("a1"), Name: "Extra cheese", Price: 300, Active: true},
			{Name: "Bacon", Price: 400, Active: true},
		},
	}

	got := s.CartPayload()
	require.Len(t, got.AddOns, 2)
	assert.Equal(t, "Extra cheese", got.AddOns[0].Name)
	assert.Nil(t, got.AddOns[1].AddOnID)
}
