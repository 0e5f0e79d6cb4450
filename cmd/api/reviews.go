package main

import (
	"errors"
	"io"
	"net/http"

	"folio/internal/domain/reviews"
	"folio/internal/mailer"
)

// for swagger only
type ReviewPayload struct {
	Name   string `json:"name" example:"Alice"`
	Review string `json:"review" example:"Great work!"`
	Rating int    `json:"rating" example:"5"`
}

// listReviewsHandler godoc
//
//	@Summary		List reviews
//	@Description	Returns approved reviews, newest first. Never returns unapproved ones.
//	@Tags			Reviews
//	@Produce		json
//	@Success		200	{array}		reviews.Review
//	@Failure		500	{object}	errorResponse
//	@Router			/api/reviews [get]
func (app *application) listReviewsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := app.store.Reviews.ListApproved(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if list == nil {
		list = []reviews.Review{}
	}

	writeJSON(w, http.StatusOK, list)
}

// createReviewHandler godoc
//
//	@Summary		Submit a review
//	@Description	Validates and stores a testimonial. Open to any visitor.
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			review	body		ReviewPayload	true	"Review payload"
//	@Success		201		{object}	reviews.Review
//	@Failure		400		{object}	errorResponse	"All fields are required"
//	@Failure		500		{object}	errorResponse
//	@Router			/api/reviews/add [post]
func (app *application) createReviewHandler(w http.ResponseWriter, r *http.Request) {
	var payload reviews.Submission
	// An empty body is reported as missing fields, not as a decode error.
	if err := readPublicJSON(w, r, &payload); err != nil && !errors.Is(err, io.EOF) {
		app.badRequestResponse(w, r, err)
		return
	}

	review, err := payload.Parse(app.config.reviews.autoApprove)
	if err != nil {
		var verr *reviews.ValidationError
		if errors.As(err, &verr) {
			app.reviewValidationResponse(w, r, verr)
			return
		}
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(review); err != nil {
		app.badRequestResponse(w, r, errors.New(validationMessage(err)))
		return
	}

	if err := app.store.Reviews.Create(r.Context(), review); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if app.metrics != nil {
		app.metrics.ReviewCreated(review.Rating)
	}
	app.notifyReviewSubmitted(*review)

	writeJSON(w, http.StatusCreated, review)
}

type approvalPayload struct {
	IsApproved *bool `json:"isApproved"`
}

// setReviewApprovalHandler godoc
//
//	@Summary		Moderate a review
//	@Description	Sets the isApproved flag, the only mutable field of a review.
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string			true	"Review ID"
//	@Param			approval	body		approvalPayload	true	"Approval flag"
//	@Success		200			{object}	reviews.Review
//	@Failure		400			{object}	errorResponse
//	@Failure		401			{object}	errorResponse
//	@Failure		404			{object}	errorResponse
//	@Failure		500			{object}	errorResponse
//	@Security		BasicAuth
//	@Security		ApiKeyAuth
//	@Router			/api/reviews/{id}/approval [post]
func (app *application) setReviewApprovalHandler(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid review ID"))
		return
	}

	var payload approvalPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if payload.IsApproved == nil {
		app.badRequestResponse(w, r, errors.New("isApproved is required"))
		return
	}

	review, err := app.store.Reviews.SetApproval(r.Context(), id, *payload.IsApproved)
	if err != nil {
		if errors.Is(err, reviews.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.logger.Infow("review moderated", "id", review.ID, "approved", review.IsApproved)
	writeJSON(w, http.StatusOK, review)
}

// notifyReviewSubmitted mails the site owner; failures never reach the visitor.
func (app *application) notifyReviewSubmitted(review reviews.Review) {
	cfg := app.config.reviews
	if app.mailer == nil || cfg.notifyEmail == "" {
		return
	}

	app.background(func() {
		if err := app.mailer.Send(mailer.ReviewSubmittedTemplate, cfg.notifyName, cfg.notifyEmail, review); err != nil {
			app.logger.Errorw("failed to send review notification", "review", review.ID, "error", err)
			return
		}
		app.logger.Infow("review notification sent", "review", review.ID, "to", cfg.notifyEmail)
	})
}
