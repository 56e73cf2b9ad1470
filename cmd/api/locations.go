package main

import (
	"net/http"
	"time"

	"vitrina/internal/catalog"
)

type locationResponse struct {
	catalog.Location
	OpenNow bool `json:"openNow"`
}

func (app *application) getLocationsHandler(w http.ResponseWriter, r *http.Request) {
	locations, err := app.catalog.Locations(r.Context())
	if err != nil {
		app.badGatewayResponse(w, r, err)
		return
	}

	now := time.Now()
	out := make([]locationResponse, 0, len(locations))
	for _, loc := range locations {
		out = append(out, locationResponse{
			Location: loc,
			OpenNow:  loc.Schedule.OpenAt(now),
		})
	}

	app.jsonResponse(w, http.StatusOK, out)
}

func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	data := map[string]string{
		"status":  "ok",
		"env":     app.config.env,
		"version": version,
	}
	if err := app.jsonResponse(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}
