package orders

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NormalizeAddOns distills the loose add-on shapes found on historical order
// lines into AddOn records. Entries arrive as bare name strings or as objects
// whose fields have drifted over backend versions, sometimes nesting the real
// add-on under "agregado" or "opcion"; anything without a usable name is
// dropped, and prices that are missing or non-numeric read as zero.
func NormalizeAddOns(raw []json.RawMessage) []AddOn {
	out := make([]AddOn, 0, len(raw))

	for _, entry := range raw {
		var name string
		if err := json.Unmarshal(entry, &name); err == nil {
			name = strings.TrimSpace(name)
			if name != "" {
				out = append(out, AddOn{Name: name})
			}
			continue
		}

		// Field names track what the backend has emitted across versions.
		var obj struct {
			ID      *string         `json:"_id"`
			AddOnID *string         `json:"agregadoId"`
			Name    string          `json:"nombre"`
			Title   string          `json:"titulo"`
			Label   string          `json:"label"`
			AltName string          `json:"agregadoNombre"`
			Price   json.RawMessage `json:"precio"`
			Value   json.RawMessage `json:"valor"`
			Amount  json.RawMessage `json:"monto"`
			Nested  *nestedAddOn    `json:"agregado"`
			Option  *nestedAddOn    `json:"opcion"`
		}
		if err := json.Unmarshal(entry, &obj); err != nil {
			continue
		}

		name = strings.TrimSpace(firstNonEmpty(
			obj.Name, obj.Title, obj.Label, obj.AltName,
			obj.Nested.name(), obj.Option.name(),
		))
		if name == "" {
			continue
		}

		id := obj.AddOnID
		if id == nil {
			id = obj.ID
		}

		price := coerceNumber(firstPresent(
			obj.Price, obj.Value, obj.Amount,
			obj.Nested.price(), obj.Option.price(),
		))

		out = append(out, AddOn{
			AddOnID:   id,
			Name:      name,
			UnitPrice: price,
		})
	}
	return out
}

// nestedAddOn is the wrapped shape some backend versions emit, with the real
// add-on one level down.
type nestedAddOn struct {
	Name  string          `json:"nombre"`
	Price json.RawMessage `json:"precio"`
}

func (n *nestedAddOn) name() string {
	if n == nil {
		return ""
	}
	return n.Name
}

func (n *nestedAddOn) price() json.RawMessage {
	if n == nil {
		return nil
	}
	return n.Price
}

// FormatAddOn renders a normalized add-on for display: priced extras carry
// their surcharge, included ones just their name.
func FormatAddOn(a AddOn) string {
	if a.UnitPrice > 0 {
		return fmt.Sprintf("%s (+$%.0f)", a.Name, a.UnitPrice)
	}
	return a.Name
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// firstPresent returns the first field that is actually on the wire. An
// explicit zero still wins over later fields; only absent or null falls
// through.
func firstPresent(raws ...json.RawMessage) json.RawMessage {
	for _, r := range raws {
		if len(r) > 0 && string(r) != "null" {
			return r
		}
	}
	return nil
}

// coerceNumber reads a JSON number or numeric string, mapping everything else
// (including non-finite values) to zero.
func coerceNumber(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return n
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		parsed, perr := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if perr == nil && !math.IsNaN(parsed) && !math.IsInf(parsed, 0) {
			return parsed
		}
	}
	return 0
}
