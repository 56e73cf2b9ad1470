package main

import (
	"net/http"
	"sort"

	"vitrina/internal/catalog"
)

func (app *application) getProductsHandler(w http.ResponseWriter, r *http.Request) {
	scope := getScopeFromContext(r)

	products, err := app.catalog.Products(r.Context(), scope.LocationID)
	if err != nil {
		app.badGatewayResponse(w, r, err)
		return
	}

	// Apply the saved per-scope category ordering; categories the customer
	// never ordered sort after the ordered ones, keeping catalog order.
	order, err := app.categoryOrder.Get(r.Context(), categoryOrderScope(r))
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if len(order) > 0 {
		rank := make(map[string]int, len(order))
		for i, name := range order {
			rank[name] = i
		}
		sort.SliceStable(products, func(i, j int) bool {
			ri, iok := rank[products[i].Category]
			rj, jok := rank[products[j].Category]
			if iok && jok {
				return ri < rj
			}
			return iok && !jok
		})
	}

	app.jsonResponse(w, http.StatusOK, products)
}

func (app *application) getCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	scope := getScopeFromContext(r)

	categories, err := app.catalog.Categories(r.Context(), scope.LocationID)
	if err != nil {
		app.badGatewayResponse(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, categories)
}

func (app *application) putCategoryOrderHandler(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Order []string `json:"order" validate:"required"`
	}
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.categoryOrder.Set(r.Context(), categoryOrderScope(r), payload.Order); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, map[string]string{"message": "category order saved"})
}

func (app *application) getRecentHandler(w http.ResponseWriter, r *http.Request) {
	products, err := app.recent.List(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, products)
}

func (app *application) recordRecentHandler(w http.ResponseWriter, r *http.Request) {
	var product catalog.Product
	if err := readJSON(w, r, &product); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if product.ID == "" {
		app.badRequestResponse(w, r, errMissingProductID)
		return
	}

	if err := app.recent.Record(r.Context(), product); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusCreated, map[string]string{"message": "product recorded"})
}
