package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// for swagger only
type errorResponse struct {
	Error string `json:"error"`
}

// readIDParam returns the {id} route parameter in canonical UUID form.
func readIDParam(r *http.Request) (string, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
