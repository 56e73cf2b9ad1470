package orders

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawList(entries ...string) []json.RawMessage {
	out := make([]json.RawMessage, len(entries))
	for i, e := range entries {
		out[i] = json.RawMessage(e)
	}
	return out
}

func TestNormalizeAddOnsBareStrings(t *testing.T) {
	got := NormalizeAddOns(rawList(`"Extra cheese"`, `"  Bacon  "`, `""`, `"   "`))

	require.Len(t, got, 2)
	assert.Equal(t, AddOn{Name: "Extra cheese"}, got[0])
	assert.Equal(t, AddOn{Name: "Bacon"}, got[1])
}

func TestNormalizeAddOnsObjectShapes(t *testing.T) {
	got := NormalizeAddOns(rawList(
		`{"_id":"a1","nombre":"Extra cheese","precio":300}`,
		`{"agregadoId":"a2","titulo":"Bacon","valor":"400"}`,
		`{"label":"Hot sauce","monto":150}`,
	))

	require.Len(t, got, 3)

	require.NotNil(t, got[0].AddOnID)
	assert.Equal(t, "a1", *got[0].AddOnID)
	assert.Equal(t, "Extra cheese", got[0].Name)
	assert.Equal(t, 300.0, got[0].UnitPrice)

	require.NotNil(t, got[1].AddOnID)
	assert.Equal(t, "a2", *got[1].AddOnID, "agregadoId wins over _id")
	assert.Equal(t, 400.0, got[1].UnitPrice, "numeric strings are read as prices")

	assert.Nil(t, got[2].AddOnID)
	assert.Equal(t, "Hot sauce", got[2].Name)
	assert.Equal(t, 150.0, got[2].UnitPrice)
}

func TestNormalizeAddOnsDropsUnusableEntries(t *testing.T) {
	got := NormalizeAddOns(rawList(
		`{"precio":300}`,
		`{"nombre":"   "}`,
		`42`,
		`null`,
		`not even json`,
	))
	assert.Empty(t, got)
}

func TestNormalizeAddOnsBadPricesReadZero(t *testing.T) {
	got := NormalizeAddOns(rawList(
		`{"nombre":"Free extra"}`,
		`{"nombre":"Weird price","precio":"lots"}`,
		`{"nombre":"Object price","precio":{"amount":300}}`,
		`{"nombre":"Stringy NaN","precio":"NaN"}`,
		`{"nombre":"Stringy infinity","precio":"Inf"}`,
	))

	require.Len(t, got, 5)
	for _, a := range got {
		assert.Zero(t, a.UnitPrice, a.Name)
	}

	_, err := json.Marshal(got)
	require.NoError(t, err, "normalized add-ons must always re-encode")
}

func TestNormalizeAddOnsNestedShapes(t *testing.T) {
	got := NormalizeAddOns(rawList(
		`{"agregado":{"nombre":"Queso","precio":300}}`,
		`{"opcion":{"nombre":"Salsa","precio":"200"}}`,
		`{"agregadoNombre":"Tocino","monto":100}`,
	))

	require.Len(t, got, 3)
	assert.Equal(t, "Queso", got[0].Name)
	assert.Equal(t, 300.0, got[0].UnitPrice)
	assert.Equal(t, "Salsa", got[1].Name)
	assert.Equal(t, 200.0, got[1].UnitPrice)
	assert.Equal(t, "Tocino", got[2].Name)
	assert.Equal(t, 100.0, got[2].UnitPrice)
}

func TestNormalizeAddOnsExplicitZeroPriceWins(t *testing.T) {
	got := NormalizeAddOns(rawList(
		`{"nombre":"Promo","precio":0,"valor":500}`,
		`{"nombre":"Null precio","precio":null,"valor":500}`,
		`{"nombre":"Outer zero","precio":0,"agregado":{"nombre":"ignored","precio":900}}`,
	))

	require.Len(t, got, 3)
	assert.Zero(t, got[0].UnitPrice, "an explicit zero is a real price, not a gap")
	assert.Equal(t, 500.0, got[1].UnitPrice, "null falls through to the next field")
	assert.Zero(t, got[2].UnitPrice)
}

func TestFormatAddOn(t *testing.T) {
	assert.Equal(t, "Extra cheese (+$300)", FormatAddOn(AddOn{Name: "Extra cheese", UnitPrice: 300}))
	assert.Equal(t, "Hot sauce", FormatAddOn(AddOn{Name: "Hot sauce"}))
}

func TestLineUnmarshalNormalizesAddOns(t *testing.T) {
	raw := `{
		"nombre": "Empanada",
		"cantidad": 2,
		"precio_unitario": 1500,
		"subtotal": 3000,
		"agregados": ["Extra cheese", {"nombre":"Bacon","precio":400}]
	}`

	var line Line
	require.NoError(t, json.Unmarshal([]byte(raw), &line))

	assert.Equal(t, "Empanada", line.Name)
	assert.Equal(t, 2, line.Quantity)
	require.Len(t, line.AddOns, 2)
	assert.Equal(t, "Extra cheese", line.AddOns[0].Name)
	assert.Equal(t, 400.0, line.AddOns[1].UnitPrice)
}
