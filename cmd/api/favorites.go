package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

var errMissingProductID = errors.New("productID is required")

func (app *application) listFavoritesHandler(w http.ResponseWriter, r *http.Request) {
	ids, err := app.favorites.List(r.Context(), favoritesScope(r))
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, ids)
}

func (app *application) addFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")
	if productID == "" {
		app.badRequestResponse(w, r, errMissingProductID)
		return
	}

	if err := app.favorites.Add(r.Context(), favoritesScope(r), productID); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusCreated, map[string]string{"message": "product added to favorites"})
}

func (app *application) removeFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")
	if productID == "" {
		app.badRequestResponse(w, r, errMissingProductID)
		return
	}

	if err := app.favorites.Remove(r.Context(), favoritesScope(r), productID); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, map[string]string{"message": "product removed from favorites"})
}

func (app *application) toggleFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")
	if productID == "" {
		app.badRequestResponse(w, r, errMissingProductID)
		return
	}

	favorite, err := app.favorites.Toggle(r.Context(), favoritesScope(r), productID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, map[string]bool{"favorite": favorite})
}
