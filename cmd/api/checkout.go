package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"vitrina/internal/cart"
	"vitrina/internal/orders"
)

// CheckoutRequest is the form the customer fills in. The order lines and the
// total always come from the cart, never from the client.
type CheckoutRequest struct {
	Name       string `json:"name" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Email      string `json:"email" validate:"omitempty,email"`
	Address    string `json:"address" validate:"required_if=OrderType delivery"`
	PostalCode string `json:"postalCode"`

	// store: eat in, pickup: take away, delivery: to the door.
	OrderType     string `json:"orderType" validate:"required,oneof=store pickup delivery"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=online cash"`

	// Where the cash changes hands; only meaningful for cash payments.
	CashPoint string `json:"cashPoint" validate:"required_if=PaymentMethod cash,omitempty,oneof=store courier"`
}

type checkoutResponse struct {
	Order     orders.Order `json:"order"`
	Reference string       `json:"reference"`
}

func (app *application) checkoutHandler(w http.ResponseWriter, r *http.Request) {
	var form CheckoutRequest
	if err := readJSON(w, r, &form); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(form); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	snapshot := app.cart.Snapshot()
	if len(snapshot.Items) == 0 {
		app.badRequestResponse(w, r, fmt.Errorf("cart is empty"))
		return
	}

	scope := getScopeFromContext(r)

	paymentType := form.PaymentMethod
	if form.PaymentMethod == "cash" {
		paymentType = "cash_" + form.CashPoint
	}

	email := form.Email
	if email == "" {
		email = "sincorreo"
	}

	req := orders.CreateRequest{
		IdempotencyKey: uuid.NewString(),
		Lines:          buildOrderLines(snapshot),
		Total:          snapshot.Total,
		PaymentType:    paymentType,
		CustomerEmail:  email,
		OrderType:      form.OrderType,
		CustomerName:   form.Name,
		CustomerPhone:  form.Phone,
		Address:        form.Address,
		PostalCode:     form.PostalCode,
		LocationID:     scope.LocationID,
	}

	order, err := app.orders.Create(r.Context(), req)
	if err != nil {
		app.badGatewayResponse(w, r, err)
		return
	}

	// The cart is cleared only after the backend accepted the order. A failed
	// clear must not fail the checkout: the order exists, so log and move on.
	if _, err := app.cart.Clear(r.Context()); err != nil {
		app.logger.Errorw("cart clear after checkout failed", "order_id", order.ID, "error", err)
	}

	reference, err := app.refs.Generate(time.Now().UnixMilli())
	if err != nil {
		app.logger.Errorw("order reference generation failed", "order_id", order.ID, "error", err)
	}

	app.jsonResponse(w, http.StatusCreated, checkoutResponse{Order: order, Reference: reference})
}

// buildOrderLines converts cart lines to the backend's sale rows. Unit price
// includes add-on surcharges so row subtotals sum to the cart total.
func buildOrderLines(state cart.State) []orders.Line {
	lines := make([]orders.Line, 0, len(state.Items))
	for _, item := range state.Items {
		unit := item.UnitPrice()

		line := orders.Line{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: unit,
			Subtotal:  unit * float64(item.Quantity),
		}
		if item.VariantName != nil {
			line.VariantName = *item.VariantName
		}
		for _, a := range item.AddOns {
			line.AddOns = append(line.AddOns, orders.AddOn{
				AddOnID:   a.AddOnID,
				Name:      a.Name,
				UnitPrice: a.UnitPrice,
			})
		}
		lines = append(lines, line)
	}
	return lines
}
