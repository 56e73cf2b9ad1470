package orders

import (
	"encoding/json"
	"time"
)

// Wire tags in this package follow the POS backend's API field names
// (productos, tipo_pago, ...); the backend owns that contract.

// AddOn is a normalized order-line extra. See NormalizeAddOns for the loose
// shapes it is distilled from.
type AddOn struct {
	AddOnID   *string `json:"addOnId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
}

// Line is one product row inside a placed order.
type Line struct {
	Name        string  `json:"nombre"`
	VariantName string  `json:"variante_nombre,omitempty"`
	Quantity    int     `json:"cantidad"`
	UnitPrice   float64 `json:"precio_unitario"`
	Subtotal    float64 `json:"subtotal"`
	AddOns      []AddOn `json:"agregados,omitempty"`
}

// UnmarshalJSON tolerates the drifted add-on shapes on historical lines by
// routing them through NormalizeAddOns.
func (l *Line) UnmarshalJSON(b []byte) error {
	type alias Line
	aux := struct {
		*alias
		AddOns []json.RawMessage `json:"agregados"`
	}{alias: (*alias)(l)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	l.AddOns = NormalizeAddOns(aux.AddOns)
	return nil
}

// Order is a sale as the backend reports it back.
type Order struct {
	ID            string    `json:"_id"`
	Lines         []Line    `json:"productos"`
	Total         float64   `json:"total"`
	PaymentType   string    `json:"tipo_pago"`
	CustomerEmail string    `json:"cliente_email"`
	Status        string    `json:"estado,omitempty"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
}

// CreateRequest is the payload for placing a sale. IdempotencyKey lets the
// backend drop a duplicate submission when the client retries after a timeout.
type CreateRequest struct {
	IdempotencyKey string  `json:"idempotency_key,omitempty"`
	Lines          []Line  `json:"productos"`
	Total          float64 `json:"total"`
	PaymentType    string  `json:"tipo_pago"`
	CustomerEmail  string  `json:"cliente_email"`
	OrderType      string  `json:"tipo_pedido,omitempty"`
	CustomerName   string  `json:"cliente_nombre,omitempty"`
	CustomerPhone  string  `json:"cliente_telefono,omitempty"`
	Address        string  `json:"direccion,omitempty"`
	PostalCode     string  `json:"codigo_postal,omitempty"`
	LocationID     string  `json:"local_id,omitempty"`
}
