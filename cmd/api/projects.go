package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"folio/internal/domain/projects"
	"folio/internal/media"
	"folio/internal/params"
)

const maxSnapshotBytes = 8 * 1024 * 1024 // 8MB

var allowedSnapshotTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// projectPayload is the JSON form of a project write. Technologies may be an
// array or a comma separated string.
type projectPayload struct {
	Title        *string         `json:"title"`
	Description  *string         `json:"description"`
	Technologies json.RawMessage `json:"technologies" swaggertype:"array,string"`
	LiveURL      *string         `json:"liveUrl"`
	GithubURL    *string         `json:"githubUrl"`
	Featured     *bool           `json:"featured"`
	ImageURL     *string         `json:"imageUrl"`
	Order        *int            `json:"order"`
}

func (p projectPayload) patch() (projects.Patch, error) {
	patch := projects.Patch{
		Title:       trimmed(p.Title),
		Description: trimmed(p.Description),
		LiveURL:     trimmed(p.LiveURL),
		GithubURL:   trimmed(p.GithubURL),
		Featured:    p.Featured,
		ImageURL:    trimmed(p.ImageURL),
		Order:       p.Order,
	}
	if p.Technologies != nil {
		techs, err := params.DecodeList(p.Technologies)
		if err != nil {
			return patch, fmt.Errorf("technologies: %w", err)
		}
		patch.Technologies = &techs
	}
	return patch, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

// readProjectPatch accepts multipart/form-data (with an optional snapshot
// file) or JSON. Only fields present in the request end up in the patch.
func (app *application) readProjectPatch(w http.ResponseWriter, r *http.Request) (projects.Patch, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		var payload projectPayload
		if err := readJSON(w, r, &payload); err != nil {
			return projects.Patch{}, err
		}
		return payload.patch()
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxSnapshotBytes+1<<20)
	if err := r.ParseMultipartForm(maxSnapshotBytes); err != nil {
		return projects.Patch{}, fmt.Errorf("failed to parse form: %w", err)
	}

	form := r.MultipartForm.Value
	field := func(name string) *string {
		vals, ok := form[name]
		if !ok || len(vals) == 0 {
			return nil
		}
		v := strings.TrimSpace(vals[0])
		return &v
	}

	patch := projects.Patch{
		Title:       field("title"),
		Description: field("description"),
		LiveURL:     field("liveUrl"),
		GithubURL:   field("githubUrl"),
		ImageURL:    field("imageUrl"),
	}
	if v := field("technologies"); v != nil {
		techs := params.SplitList(*v, params.ListSeparator)
		patch.Technologies = &techs
	}
	if v := field("featured"); v != nil {
		featured := params.FormBool(*v)
		patch.Featured = &featured
	}
	if v := field("order"); v != nil && *v != "" {
		order, err := strconv.Atoi(*v)
		if err != nil {
			return patch, errors.New("order must be an integer")
		}
		patch.Order = &order
	}
	return patch, nil
}

func validateProjectPatch(p projects.Patch) error {
	if p.Title != nil && *p.Title == "" {
		return errors.New("title is required")
	}
	if p.Description != nil && *p.Description == "" {
		return errors.New("description is required")
	}
	urls := map[string]*string{"liveUrl": p.LiveURL, "githubUrl": p.GithubURL, "imageUrl": p.ImageURL}
	for name, u := range urls {
		if u == nil {
			continue
		}
		if err := Validate.Var(*u, "omitempty,url"); err != nil {
			return fmt.Errorf("%s must be a valid URL", name)
		}
	}
	return nil
}

// uploadSnapshot pushes the optional "snapshot" file to the media host.
// It returns "" when the request carries no file.
func (app *application) uploadSnapshot(ctx context.Context, r *http.Request) (string, error) {
	if r.MultipartForm == nil {
		return "", nil
	}
	file, header, err := r.FormFile("snapshot")
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}
	defer file.Close()

	if header.Size > maxSnapshotBytes {
		return "", errors.New("snapshot must be 8MB or smaller")
	}

	if app.media == nil {
		return "", errors.New("snapshot uploads are not configured")
	}

	mimeType, err := media.SniffMIME(file)
	if err != nil {
		return "", fmt.Errorf("sniff mime: %w", err)
	}
	if !allowedSnapshotTypes[mimeType] {
		return "", fmt.Errorf("invalid image type: %s", mimeType)
	}

	return app.media.Upload(ctx, file, app.config.media.projectsFolder)
}

func (app *application) destroySnapshot(url string) {
	if url == "" || app.media == nil {
		return
	}
	app.background(func() {
		if err := app.media.Destroy(context.Background(), url); err != nil {
			app.logger.Warnw("failed to delete snapshot", "url", url, "error", err)
		}
	})
}

// storeErrorResponse keeps the list resources' historical 400 for store failures.
func (app *application) storeErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("store error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusBadRequest, "the request could not be completed")
}

// listProjectsHandler godoc
//
//	@Summary		List projects
//	@Description	Returns every project ordered by display order.
//	@Tags			Projects
//	@Produce		json
//	@Success		200	{array}		projects.Project
//	@Failure		400	{object}	errorResponse
//	@Router			/api/projects [get]
func (app *application) listProjectsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := app.store.Projects.List(r.Context())
	if err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}
	if list == nil {
		list = []projects.Project{}
	}

	writeJSON(w, http.StatusOK, list)
}

// createProjectHandler godoc
//
//	@Summary		Add a project
//	@Description	Accepts multipart/form-data (with optional "snapshot" image) or JSON.
//	@Tags			Projects
//	@Accept			json,mpfd
//	@Produce		json
//	@Param			project	body		projectPayload	true	"Project"
//	@Success		200		{string}	string			"Project added!"
//	@Failure		400		{object}	errorResponse
//	@Failure		401		{object}	errorResponse
//	@Security		BasicAuth
//	@Security		ApiKeyAuth
//	@Router			/api/projects/add [post]
func (app *application) createProjectHandler(w http.ResponseWriter, r *http.Request) {
	patch, err := app.readProjectPatch(w, r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	project := &projects.Project{Technologies: []string{}}
	applyProjectPatch(project, patch)

	if err := Validate.Struct(project); err != nil {
		app.badRequestResponse(w, r, errors.New(validationMessage(err)))
		return
	}

	snapshotURL, err := app.uploadSnapshot(r.Context(), r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	project.SnapshotURL = snapshotURL

	if err := app.store.Projects.Create(r.Context(), project); err != nil {
		app.destroySnapshot(snapshotURL)
		app.storeErrorResponse(w, r, err)
		return
	}

	app.logger.Infow("project added", "id", project.ID, "title", project.Title)
	writeJSON(w, http.StatusOK, "Project added!")
}

func applyProjectPatch(p *projects.Project, patch projects.Patch) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Technologies != nil {
		p.Technologies = *patch.Technologies
	}
	if patch.LiveURL != nil {
		p.LiveURL = *patch.LiveURL
	}
	if patch.GithubURL != nil {
		p.GithubURL = *patch.GithubURL
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.Order != nil {
		p.Order = *patch.Order
	}
}

// updateProjectHandler godoc
//
//	@Summary		Update a project
//	@Description	Replaces only the fields present in the request. A new snapshot replaces the stored URL.
//	@Tags			Projects
//	@Accept			json,mpfd
//	@Produce		json
//	@Param			id		path		string			true	"Project ID"
//	@Param			project	body		projectPayload	true	"Fields to change"
//	@Success		200		{string}	string			"Project updated!"
//	@Failure		400		{object}	errorResponse
//	@Failure		401		{object}	errorResponse
//	@Failure		404		{object}	errorResponse
//	@Security		BasicAuth
//	@Security		ApiKeyAuth
//	@Router			/api/projects/update/{id} [post]
func (app *application) updateProjectHandler(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid project ID"))
		return
	}

	patch, err := app.readProjectPatch(w, r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := validateProjectPatch(patch); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	snapshotURL, err := app.uploadSnapshot(r.Context(), r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if snapshotURL != "" {
		patch.SnapshotURL = &snapshotURL
	}

	if _, err := app.store.Projects.Update(r.Context(), id, patch); err != nil {
		app.destroySnapshot(snapshotURL)
		if errors.Is(err, projects.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.storeErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, "Project updated!")
}

// deleteProjectHandler godoc
//
//	@Summary		Delete a project
//	@Description	Removes the project and, best-effort, its snapshot on the media host.
//	@Tags			Projects
//	@Produce		json
//	@Param			id	path		string	true	"Project ID"
//	@Success		200	{string}	string	"Project deleted."
//	@Failure		400	{object}	errorResponse
//	@Failure		401	{object}	errorResponse
//	@Failure		404	{object}	errorResponse
//	@Security		BasicAuth
//	@Security		ApiKeyAuth
//	@Router			/api/projects/{id} [delete]
func (app *application) deleteProjectHandler(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid project ID"))
		return
	}

	deleted, err := app.store.Projects.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, projects.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.storeErrorResponse(w, r, err)
		return
	}

	app.destroySnapshot(deleted.SnapshotURL)
	writeJSON(w, http.StatusOK, "Project deleted.")
}
