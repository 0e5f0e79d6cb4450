package main

import (
	"errors"
	"net/http"

	"folio/internal/auth"
)

// RequireWriteAccess guards content-changing routes with the configured authorizer.
func (app *application) RequireWriteAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.authorizer == nil {
			next.ServeHTTP(w, r)
			return
		}

		if err := app.authorizer.Authorize(r); err != nil {
			if errors.Is(err, auth.ErrInsufficientRole) {
				app.forbiddenResponse(w, r, err)
				return
			}
			app.unauthorizedErrorResponse(w, r, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}
