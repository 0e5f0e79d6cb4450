package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"folio/internal/domain/experience"
	"folio/internal/params"
)

// experiencePayload accepts description as an array or a comma separated string.
type experiencePayload struct {
	Role        *string         `json:"role"`
	Company     *string         `json:"company"`
	Duration    *string         `json:"duration"`
	Description json.RawMessage `json:"description" swaggertype:"array,string"`
	Type        *string         `json:"type"`
}

func (p experiencePayload) patch() (experience.Patch, error) {
	patch := experience.Patch{
		Role:     trimmed(p.Role),
		Company:  trimmed(p.Company),
		Duration: trimmed(p.Duration),
		Type:     trimmed(p.Type),
	}
	if p.Description != nil {
		desc, err := params.DecodeList(p.Description)
		if err != nil {
			return patch, fmt.Errorf("description: %w", err)
		}
		patch.Description = &desc
	}
	return patch, nil
}

// listExperienceHandler godoc
//
//	@Summary		List experience
//	@Description	Returns the career timeline, newest first.
//	@Tags			Experience
//	@Produce		json
//	@Success		200	{array}		experience.Experience
//	@Failure		400	{object}	errorResponse
//	@Router			/api/experience [get]
func (app *application) listExperienceHandler(w http.ResponseWriter, r *http.Request) {
	list, err := app.store.Experience.List(r.Context())
	if err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}
	if list == nil {
		list = []experience.Experience{}
	}

	writeJSON(w, http.StatusOK, list)
}

// createExperienceHandler godoc
//
//	@Summary		Add an experience entry
//	@Tags			Experience
//	@Accept			json
//	@Produce		json
//	@Param			experience	body		experiencePayload	true	"Experience"
//	@Success		200			{string}	string				"Experience added!"
//	@Failure		400			{object}	errorResponse
//	@Failure		401			{object}	errorResponse
//	@Security		BasicAuth
//	@Security		ApiKeyAuth
//	@Router			/api/experience/add [post]
func (app *application) createExperienceHandler(w http.ResponseWriter, r *http.Request) {
	var payload experiencePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	patch, err := payload.patch()
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	entry := &experience.Experience{Description: []string{}}
	applyExperiencePatch(entry, patch)

	if err := Validate.Struct(entry); err != nil {
		app.badRequestResponse(w, r, errors.New(validationMessage(err)))
		return
	}

	if err := app.store.Experience.Create(r.Context(), entry); err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, "Experience added!")
}

func applyExperiencePatch(e *experience.Experience, patch experience.Patch) {
	if patch.Role != nil {
		e.Role = *patch.Role
	}
	if patch.Company != nil {
		e.Company = *patch.Company
	}
	if patch.Duration != nil {
		e.Duration = *patch.Duration
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.Type != nil {
		e.Type = *patch.Type
	}
}

// updateExperienceHandler godoc
//
//	@Summary		Update an experience entry
//	@Description	Replaces only the fields present in the request.
//	@Tags			Experience
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string				true	"Experience ID"
//	@Param			experience	body		experiencePayload	true	"Fields to change"
//	@Success		200			{string}	string				"Experience updated!"
//	@Failure		400			{object}	errorResponse
//	@Failure		401			{object}	errorResponse
//	@Failure		404			{object}	errorResponse
//	@Security		BasicAuth
//	@Security		ApiKeyAuth
//	@Router			/api/experience/update/{id} [post]
func (app *application) updateExperienceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid experience ID"))
		return
	}

	var payload experiencePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	patch, err := payload.patch()
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if patch.Role != nil && *patch.Role == "" {
		app.badRequestResponse(w, r, errors.New("role is required"))
		return
	}
	if patch.Company != nil && *patch.Company == "" {
		app.badRequestResponse(w, r, errors.New("company is required"))
		return
	}

	if _, err := app.store.Experience.Update(r.Context(), id, patch); err != nil {
		if errors.Is(err, experience.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.storeErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, "Experience updated!")
}

// deleteExperienceHandler godoc
//
//	@Summary		Delete an experience entry
//	@Tags			Experience
//	@Produce		json
//	@Param			id	path		string	true	"Experience ID"
//	@Success		200	{string}	string	"Experience deleted."
//	@Failure		400	{object}	errorResponse
//	@Failure		401	{object}	errorResponse
//	@Failure		404	{object}	errorResponse
//	@Security		BasicAuth
//	@Security		ApiKeyAuth
//	@Router			/api/experience/{id} [delete]
func (app *application) deleteExperienceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid experience ID"))
		return
	}

	if err := app.store.Experience.Delete(r.Context(), id); err != nil {
		if errors.Is(err, experience.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.storeErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, "Experience deleted.")
}
