package orders

import (
	"fmt"
	"strings"

	"github.com/speps/go-hashids/v2"
)

// ReferenceGenerator produces the short codes customers quote at the counter
// instead of raw order ids.
type ReferenceGenerator struct {
	hd *hashids.HashID
}

func NewReferenceGenerator(salt string) (*ReferenceGenerator, error) {
	data := hashids.NewData()
	data.Salt = salt
	data.MinLength = 6
	data.Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	hd, err := hashids.NewWithData(data)
	if err != nil {
		return nil, fmt.Errorf("init reference generator: %w", err)
	}
	return &ReferenceGenerator{hd: hd}, nil
}

// Generate encodes a sequence number into a display reference like
// "VIT-M2K9XP".
func (g *ReferenceGenerator) Generate(seq int64) (string, error) {
	code, err := g.hd.EncodeInt64([]int64{seq})
	if err != nil {
		return "", fmt.Errorf("encode order reference: %w", err)
	}
	return "VIT-" + strings.ToUpper(code), nil
}
