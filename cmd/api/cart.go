package main

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"vitrina/internal/cart"

	"github.com/go-chi/chi/v5"
)

// cartResponse is what the presentation layer reads: items in insertion
// order, the derived total and the unit count for the badge.
type cartResponse struct {
	Items     []cart.LineItem `json:"items"`
	Total     float64         `json:"total"`
	ItemCount int             `json:"itemCount"`
}

func toCartResponse(state cart.State) cartResponse {
	return cartResponse{
		Items:     state.Items,
		Total:     state.Total,
		ItemCount: state.ItemCount(),
	}
}

func (app *application) getCartHandler(w http.ResponseWriter, r *http.Request) {
	app.jsonResponse(w, http.StatusOK, toCartResponse(app.cart.Snapshot()))
}

// dispatchCartHandler is the single transition entry point: it takes the
// discriminated {kind, data} payload and applies it.
func (app *application) dispatchCartHandler(w http.ResponseWriter, r *http.Request) {
	var action cart.Action
	if err := readJSON(w, r, &action); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	state, err := app.cart.Dispatch(r.Context(), action)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, toCartResponse(state))
}

func (app *application) addCartItemHandler(w http.ResponseWriter, r *http.Request) {
	var payload cart.AddPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if payload.ProductID == "" {
		app.badRequestResponse(w, r, fmt.Errorf("productId is required"))
		return
	}

	state, err := app.cart.Add(r.Context(), payload)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusCreated, toCartResponse(state))
}

func (app *application) incrementCartItemHandler(w http.ResponseWriter, r *http.Request) {
	app.mutateByKey(w, r, app.cart.Increment)
}

func (app *application) decrementCartItemHandler(w http.ResponseWriter, r *http.Request) {
	app.mutateByKey(w, r, app.cart.Decrement)
}

func (app *application) removeCartItemHandler(w http.ResponseWriter, r *http.Request) {
	app.mutateByKey(w, r, app.cart.Remove)
}

func (app *application) clearCartHandler(w http.ResponseWriter, r *http.Request) {
	state, err := app.cart.Clear(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	app.jsonResponse(w, http.StatusOK, toCartResponse(state))
}

// mutateByKey runs an identity-keyed transition. An unknown key is a no-op
// inside the store, so these always answer with the resulting state.
func (app *application) mutateByKey(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, identityKey string) (cart.State, error),
) {
	// chi matches on RawPath when the request carries percent-encodings, so
	// the captured segment needs exactly one decode in that case; with no
	// encodings in the URL it is already the literal key.
	identityKey := chi.URLParam(r, "identityKey")
	if r.URL.RawPath != "" {
		if decoded, err := url.PathUnescape(identityKey); err == nil {
			identityKey = decoded
		}
	}

	state, err := op(r.Context(), identityKey)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, toCartResponse(state))
}
