package main

import (
	"net/http"

	"folio/internal/feed"
)

// listMediumPostsHandler godoc
//
//	@Summary		Blog posts
//	@Description	Fetches the external blog feed on every call and reshapes its entries.
//	@Tags			Blog
//	@Produce		json
//	@Success		200	{array}		feed.Post
//	@Failure		500	{object}	errorResponse
//	@Router			/api/medium [get]
func (app *application) listMediumPostsHandler(w http.ResponseWriter, r *http.Request) {
	posts, err := app.feed.Fetch(r.Context())
	if err != nil {
		app.logger.Errorw("feed fetch failed", "method", r.Method, "path", r.URL.Path, "error", err.Error())
		writeJSONError(w, http.StatusInternalServerError, "Failed to fetch Medium posts")
		return
	}
	if posts == nil {
		posts = []feed.Post{}
	}

	writeJSON(w, http.StatusOK, posts)
}
