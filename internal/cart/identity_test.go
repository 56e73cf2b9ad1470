package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityKeyBareProduct(t *testing.T) {
	assert.Equal(t, "p1::base::none", identityKey("p1", nil, nil))
}

func TestIdentityKeyEmptyVariantIsBase(t *testing.T) {
	empty := ""
	assert.Equal(t, identityKey("p1", nil, nil), identityKey("p1", &empty, nil))
}

func TestIdentityKeyVariant(t *testing.T) {
	v := "v1"
	assert.Equal(t, "p1::v1::none", identityKey("p1", &v, nil))
}

func TestIdentityKeySortsAddOns(t *testing.T) {
	a1 := "a1"
	a2 := "a2"
	forward := identityKey("p1", nil, []AddOn{{AddOnID: &a1, Name: "Cheese"}, {AddOnID: &a2, Name: "Bacon"}})
	reversed := identityKey("p1", nil, []AddOn{{AddOnID: &a2, Name: "Bacon"}, {AddOnID: &a1, Name: "Cheese"}})

	assert.Equal(t, forward, reversed)
	assert.Equal(t, "p1::base::a1+a2", forward)
}

func TestIdentityKeyNameFallbackWhenNoID(t *testing.T) {
	key := identityKey("p1", nil, []AddOn{{Name: "Extra cheese"}})
	assert.Equal(t, "p1::base::Extra cheese", key)
}

func TestIdentityKeyDiffersByAddOnSelection(t *testing.T) {
	with := identityKey("p1", nil, []AddOn{{Name: "Extra cheese"}})
	without := identityKey("p1", nil, nil)

	assert.NotEqual(t, with, without)
}
