package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"folio/internal/domain/reviews"
	"folio/internal/mailer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v), string(body))
	return v
}

func TestCreateReviewThenList(t *testing.T) {
	te := newTestEnv(t)

	rr := te.do(t, http.MethodPost, "/api/reviews/add", `{"name":"Alice","review":"Great work!","rating":5}`, nil)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	created := decode[reviews.Review](t, rr.Body.Bytes())
	assert.Equal(t, "Alice", created.Name)
	assert.Equal(t, 5, created.Rating)
	assert.True(t, created.IsApproved)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	rr = te.do(t, http.MethodGet, "/api/reviews", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	list := decode[[]reviews.Review](t, rr.Body.Bytes())
	require.NotEmpty(t, list)
	assert.Equal(t, created.ID, list[0].ID)
}

func TestCreateReviewMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		fields []string
	}{
		{"empty name", `{"name":"","review":"x","rating":3}`, []string{"name"}},
		{"blank name", `{"name":"   ","review":"x","rating":3}`, []string{"name"}},
		{"missing review", `{"name":"Bob","rating":3}`, []string{"review"}},
		{"missing rating", `{"name":"Bob","review":"x"}`, []string{"rating"}},
		{"empty object", `{}`, []string{"name", "review", "rating"}},
		{"empty body", ``, []string{"name", "review", "rating"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			te := newTestEnv(t)

			rr := te.do(t, http.MethodPost, "/api/reviews/add", tc.body, nil)
			require.Equal(t, http.StatusBadRequest, rr.Code)

			body := decode[struct {
				Error  string   `json:"error"`
				Fields []string `json:"fields"`
			}](t, rr.Body.Bytes())
			assert.Equal(t, reviews.MsgMissingFields, body.Error)
			assert.Equal(t, tc.fields, body.Fields)
			assert.Zero(t, te.reviews.count())
		})
	}
}

func TestCreateReviewRatingBounds(t *testing.T) {
	tests := []struct {
		rating string
		want   int
	}{
		{`0`, http.StatusBadRequest},
		{`1`, http.StatusCreated},
		{`5`, http.StatusCreated},
		{`6`, http.StatusBadRequest},
		{`"4"`, http.StatusCreated},
		{`3.5`, http.StatusBadRequest},
		{`"abc"`, http.StatusBadRequest},
		{`true`, http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.rating, func(t *testing.T) {
			te := newTestEnv(t)

			body := fmt.Sprintf(`{"name":"Carol","review":"Nice","rating":%s}`, tc.rating)
			rr := te.do(t, http.MethodPost, "/api/reviews/add", body, nil)
			assert.Equal(t, tc.want, rr.Code, rr.Body.String())

			if tc.want == http.StatusCreated {
				assert.Equal(t, 1, te.reviews.count())
			} else {
				assert.Zero(t, te.reviews.count())
			}
		})
	}
}

func TestCreateReviewStoreFailure(t *testing.T) {
	te := newTestEnv(t)
	te.reviews.err = errStoreDown

	rr := te.do(t, http.MethodPost, "/api/reviews/add", `{"name":"Dan","review":"ok","rating":4}`, nil)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"the server encountered a problem"}`, rr.Body.String())

	rr = te.do(t, http.MethodGet, "/api/reviews", "", nil)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestListReviewsHidesUnapproved(t *testing.T) {
	te := newTestEnv(t)
	te.app.config.reviews.autoApprove = false

	rr := te.do(t, http.MethodPost, "/api/reviews/add", `{"name":"Eve","review":"pending","rating":2}`, nil)
	require.Equal(t, http.StatusCreated, rr.Code)
	pending := decode[reviews.Review](t, rr.Body.Bytes())
	assert.False(t, pending.IsApproved)

	rr = te.do(t, http.MethodGet, "/api/reviews", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	rr = te.do(t, http.MethodPost, "/api/reviews/"+pending.ID+"/approval", `{"isApproved":true}`, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = te.do(t, http.MethodGet, "/api/reviews", "", nil)
	list := decode[[]reviews.Review](t, rr.Body.Bytes())
	require.Len(t, list, 1)
	assert.Equal(t, pending.ID, list[0].ID)
}

func TestListReviewsNewestFirstAndIdempotent(t *testing.T) {
	te := newTestEnv(t)

	for _, name := range []string{"first", "second", "third"} {
		rr := te.do(t, http.MethodPost, "/api/reviews/add", fmt.Sprintf(`{"name":%q,"review":"r","rating":3}`, name), nil)
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	first := te.do(t, http.MethodGet, "/api/reviews", "", nil)
	second := te.do(t, http.MethodGet, "/api/reviews", "", nil)
	assert.Equal(t, first.Body.String(), second.Body.String())

	list := decode[[]reviews.Review](t, first.Body.Bytes())
	require.Len(t, list, 3)
	assert.Equal(t, []string{"third", "second", "first"}, []string{list[0].Name, list[1].Name, list[2].Name})
	for i := 1; i < len(list); i++ {
		assert.False(t, list[i].CreatedAt.After(list[i-1].CreatedAt))
	}
}

func TestSetReviewApprovalErrors(t *testing.T) {
	te := newTestEnv(t)

	rr := te.do(t, http.MethodPost, "/api/reviews/not-a-uuid/approval", `{"isApproved":false}`, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = te.do(t, http.MethodPost, "/api/reviews/7d3f6c1e-4c1a-4b8e-9a51-2f0f3c9e1a11/approval", `{"isApproved":false}`, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = te.do(t, http.MethodPost, "/api/reviews/7d3f6c1e-4c1a-4b8e-9a51-2f0f3c9e1a11/approval", `{}`, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateReviewNotifiesOwner(t *testing.T) {
	te := newTestEnv(t)
	m := &fakeMailer{}
	te.app.mailer = m
	te.app.config.reviews.notifyEmail = "owner@example.com"

	rr := te.do(t, http.MethodPost, "/api/reviews/add", `{"name":"Frank","review":"Solid","rating":4}`, nil)
	require.Equal(t, http.StatusCreated, rr.Code)

	te.app.wg.Wait()
	require.Len(t, m.sent, 1)
	assert.Equal(t, mailer.ReviewSubmittedTemplate, m.sent[0].template)
	assert.Equal(t, "owner@example.com", m.sent[0].email)
}

func TestCreateReviewIgnoresUnknownFields(t *testing.T) {
	te := newTestEnv(t)

	rr := te.do(t, http.MethodPost, "/api/reviews/add", `{"name":"Gina","review":"Lovely","rating":5,"email":"g@example.com","isApproved":false}`, nil)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	created := decode[reviews.Review](t, rr.Body.Bytes())
	assert.Equal(t, "Gina", created.Name)
	assert.True(t, created.IsApproved)
	assert.Equal(t, 1, te.reviews.count())
}

func TestCreateReviewRejectsNulCharacters(t *testing.T) {
	te := newTestEnv(t)

	rr := te.do(t, http.MethodPost, "/api/reviews/add", `{"name":"Hal\u0000","review":"ok","rating":4}`, nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	body := decode[struct {
		Error  string   `json:"error"`
		Fields []string `json:"fields"`
	}](t, rr.Body.Bytes())
	assert.Equal(t, reviews.MsgInvalidText, body.Error)
	assert.Equal(t, []string{"name"}, body.Fields)
	assert.Zero(t, te.reviews.count())
}
