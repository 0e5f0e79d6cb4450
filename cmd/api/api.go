package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"folio/docs" //this is required to generate swagger docs
	"folio/internal/auth"
	"folio/internal/domain/storage"
	"folio/internal/feed"
	"folio/internal/mailer"
	"folio/internal/media"
	"folio/internal/metrics"

	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config     config
	store      *storage.Container
	logger     *zap.SugaredLogger
	media      media.Uploader
	feed       feed.Fetcher
	mailer     mailer.Client
	authorizer auth.Authorizer
	metrics    *metrics.Metrics
	wg         sync.WaitGroup
}

type config struct {
	addr    string
	env     string
	apiURL  string
	db      dbConfig
	cors    corsConfig
	reviews reviewsConfig
	feed    feedConfig
	media   mediaConfig
	mail    mailConfig
	auth    authConfig
}

type dbConfig struct {
	addr        string
	maxConns    int
	maxIdleTime string
	migrate     bool
}

type corsConfig struct {
	allowedOrigins []string
}

type reviewsConfig struct {
	// autoApprove decides whether new reviews are public immediately.
	autoApprove bool
	notifyName  string
	notifyEmail string
}

type feedConfig struct {
	url     string
	timeout time.Duration
}

type mediaConfig struct {
	cloudinaryURL  string
	projectsFolder string
}

type mailConfig struct {
	smtp mailer.SMTPConfig
}

type authConfig struct {
	// mode is one of none, basic, token.
	mode  string
	basic basicConfig
	token tokenConfig
}

type basicConfig struct {
	user     string
	passHash string
}

type tokenConfig struct {
	secret string
	iss    string
	aud    string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if app.metrics != nil {
		r.Use(app.metrics.Middleware)
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.cors.allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Portfolio API is running!"))
	})
	r.Get("/health", app.healthCheckHandler)
	r.With(app.RequireWriteAccess).Get("/debug/vars", expvar.Handler().ServeHTTP)
	if app.metrics != nil {
		r.Handle("/metrics", app.metrics.Handler())
	}
	docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.apiURL)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

	r.Route("/api", func(r chi.Router) {
		r.Route("/reviews", func(r chi.Router) {
			r.Get("/", app.listReviewsHandler)
			r.Post("/add", app.createReviewHandler)
			r.With(app.RequireWriteAccess).Post("/{id}/approval", app.setReviewApprovalHandler)
		})

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", app.listProjectsHandler)
			r.Group(func(r chi.Router) {
				r.Use(app.RequireWriteAccess)
				r.Post("/add", app.createProjectHandler)
				r.Post("/update/{id}", app.updateProjectHandler)
				r.Delete("/{id}", app.deleteProjectHandler)
			})
		})

		r.Route("/experience", func(r chi.Router) {
			r.Get("/", app.listExperienceHandler)
			r.Group(func(r chi.Router) {
				r.Use(app.RequireWriteAccess)
				r.Post("/add", app.createExperienceHandler)
				r.Post("/update/{id}", app.updateExperienceHandler)
				r.Delete("/{id}", app.deleteExperienceHandler)
			})
		})

		r.Get("/medium", app.listMediumPostsHandler)
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	// Docs
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		err := srv.Shutdown(ctx)
		// Let queued notification mails finish before the pool is closed.
		app.wg.Wait()
		shutdown <- err
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
