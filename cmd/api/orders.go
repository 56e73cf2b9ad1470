package main

import (
	"errors"
	"fmt"
	"net/http"

	"vitrina/internal/orders"

	"github.com/go-chi/chi/v5"
)

// orderLineView decorates a line with the display labels the order history
// renders for add-ons.
type orderLineView struct {
	orders.Line
	AddOnLabels []string `json:"addOnLabels,omitempty"`
}

type orderView struct {
	orders.Order
	Lines []orderLineView `json:"productos"`
}

func toOrderView(order orders.Order) orderView {
	view := orderView{Order: order}
	for _, line := range order.Lines {
		lv := orderLineView{Line: line}
		for _, a := range line.AddOns {
			lv.AddOnLabels = append(lv.AddOnLabels, orders.FormatAddOn(a))
		}
		view.Lines = append(view.Lines, lv)
	}
	return view
}

func (app *application) listOrdersHandler(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		app.badRequestResponse(w, r, fmt.Errorf("email query parameter is required"))
		return
	}

	history, err := app.orders.History(r.Context(), email)
	if err != nil {
		app.badGatewayResponse(w, r, err)
		return
	}

	out := make([]orderView, 0, len(history))
	for _, order := range history {
		out = append(out, toOrderView(order))
	}

	app.jsonResponse(w, http.StatusOK, out)
}

func (app *application) getOrderHandler(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")
	if orderID == "" {
		app.badRequestResponse(w, r, fmt.Errorf("orderID is required"))
		return
	}

	order, err := app.orders.Detail(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, orders.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.badGatewayResponse(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, toOrderView(order))
}
