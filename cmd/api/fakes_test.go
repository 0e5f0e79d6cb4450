package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"folio/internal/domain/experience"
	"folio/internal/domain/projects"
	"folio/internal/domain/reviews"
	"folio/internal/domain/storage"
	"folio/internal/feed"
	"folio/internal/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var errStoreDown = errors.New("store unavailable")

// clock hands out strictly increasing timestamps so ordering is deterministic.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) next() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.now.IsZero() {
		c.now = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	c.now = c.now.Add(time.Second)
	return c.now
}

type fakeReviews struct {
	mu    sync.Mutex
	clock clock
	items []reviews.Review
	err   error
}

func (f *fakeReviews) Create(ctx context.Context, r *reviews.Review) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	r.ID = uuid.NewString()
	r.CreatedAt = f.clock.next()
	r.UpdatedAt = r.CreatedAt
	f.items = append(f.items, *r)
	return nil
}

func (f *fakeReviews) ListApproved(ctx context.Context) ([]reviews.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := []reviews.Review{}
	for _, r := range f.items {
		if r.IsApproved {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeReviews) SetApproval(ctx context.Context, id string, approved bool) (*reviews.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].IsApproved = approved
			f.items[i].UpdatedAt = f.clock.next()
			r := f.items[i]
			return &r, nil
		}
	}
	return nil, reviews.ErrNotFound
}

func (f *fakeReviews) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}

type fakeProjects struct {
	mu    sync.Mutex
	clock clock
	items []projects.Project
	err   error
}

func (f *fakeProjects) List(ctx context.Context) ([]projects.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := append([]projects.Project{}, f.items...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (f *fakeProjects) Create(ctx context.Context, p *projects.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	p.ID = uuid.NewString()
	p.CreatedAt = f.clock.next()
	p.UpdatedAt = p.CreatedAt
	f.items = append(f.items, *p)
	return nil
}

func (f *fakeProjects) Update(ctx context.Context, id string, patch projects.Patch) (*projects.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			applyProjectPatch(&f.items[i], patch)
			if patch.SnapshotURL != nil {
				f.items[i].SnapshotURL = *patch.SnapshotURL
			}
			f.items[i].UpdatedAt = f.clock.next()
			p := f.items[i]
			return &p, nil
		}
	}
	return nil, projects.ErrNotFound
}

func (f *fakeProjects) Delete(ctx context.Context, id string) (*projects.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for i, p := range f.items {
		if p.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return &p, nil
		}
	}
	return nil, projects.ErrNotFound
}

func (f *fakeProjects) get(id string) (projects.Project, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.items {
		if p.ID == id {
			return p, true
		}
	}
	return projects.Project{}, false
}

type fakeExperience struct {
	mu    sync.Mutex
	clock clock
	items []experience.Experience
	err   error
}

func (f *fakeExperience) List(ctx context.Context) ([]experience.Experience, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := append([]experience.Experience{}, f.items...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeExperience) Create(ctx context.Context, e *experience.Experience) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	e.ID = uuid.NewString()
	e.CreatedAt = f.clock.next()
	e.UpdatedAt = e.CreatedAt
	f.items = append(f.items, *e)
	return nil
}

func (f *fakeExperience) Update(ctx context.Context, id string, patch experience.Patch) (*experience.Experience, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			applyExperiencePatch(&f.items[i], patch)
			f.items[i].UpdatedAt = f.clock.next()
			e := f.items[i]
			return &e, nil
		}
	}
	return nil, experience.ErrNotFound
}

func (f *fakeExperience) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i, e := range f.items {
		if e.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return experience.ErrNotFound
}

type fakeFeed struct {
	posts []feed.Post
	err   error
}

func (f *fakeFeed) Fetch(ctx context.Context) ([]feed.Post, error) {
	return f.posts, f.err
}

type fakeUploader struct {
	mu        sync.Mutex
	uploads   []string
	destroyed []string
	err       error
}

func (u *fakeUploader) Upload(ctx context.Context, file io.Reader, folder string) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.err != nil {
		return "", u.err
	}
	if _, err := io.ReadAll(file); err != nil {
		return "", err
	}
	url := "https://res.cloudinary.com/demo/image/upload/v1700000000/" + folder + "/" + uuid.NewString() + ".png"
	u.uploads = append(u.uploads, url)
	return url, nil
}

func (u *fakeUploader) Destroy(ctx context.Context, url string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.destroyed = append(u.destroyed, url)
	return nil
}

type sentMail struct {
	template string
	email    string
	data     any
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (m *fakeMailer) Send(templateFile, name, email string, data any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{template: templateFile, email: email, data: data})
	return nil
}

type testEnv struct {
	app        *application
	reviews    *fakeReviews
	projects   *fakeProjects
	experience *fakeExperience
	feed       *fakeFeed
	media      *fakeUploader
	handler    http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	te := &testEnv{
		reviews:    &fakeReviews{},
		projects:   &fakeProjects{},
		experience: &fakeExperience{},
		feed:       &fakeFeed{},
		media:      &fakeUploader{},
	}

	te.app = &application{
		config: config{
			env: "test",
			cors: corsConfig{
				allowedOrigins: []string{"http://localhost:3000"},
			},
			reviews: reviewsConfig{autoApprove: true},
			media:   mediaConfig{projectsFolder: "portfolio/projects"},
		},
		store: &storage.Container{
			Reviews:    te.reviews,
			Projects:   te.projects,
			Experience: te.experience,
		},
		logger:  zap.NewNop().Sugar(),
		media:   te.media,
		feed:    te.feed,
		metrics: metrics.New("folio_test"),
	}
	te.handler = te.app.mount()
	return te
}

func (e *testEnv) do(t *testing.T, method, target, body string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	rr := httptest.NewRecorder()
	e.handler.ServeHTTP(rr, req)
	return rr
}
