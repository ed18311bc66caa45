// Package web serves the EventBuddy pages: it resolves the browser session,
// applies route gates, calls the booking API and renders views.
package web

import (
	"embed"
	"encoding/json"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"

	"github.com/Foysal-Munsy/EventBuddy-Frontend/api"
	"github.com/Foysal-Munsy/EventBuddy-Frontend/gate"
	"github.com/Foysal-Munsy/EventBuddy-Frontend/session"
	"github.com/Foysal-Munsy/EventBuddy-Frontend/views"
)

// IndexPageSize is the number of events per page on the home page.
const IndexPageSize = 3

//go:embed static
var staticFiles embed.FS

// Options configure a Server.
type Options struct {
	// CSRFKey is the 32 byte key of the CSRF cookie.
	CSRFKey []byte
	// Secure marks cookies Secure and enforces the strict Referer check
	// CSRF protection does for TLS requests.
	Secure bool
	Logger *slog.Logger
	// Now replaces time.Now, to decide whether events are in the past.
	Now func() time.Time
}

type Server struct {
	provider *session.Provider
	gate     *gate.Gate
	api      *api.Client
	logger   *slog.Logger
	now      func() time.Time

	csrfKey []byte
	secure  bool
}

func New(provider *session.Provider, client *api.Client, options Options) *Server {
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := options.Now
	if now == nil {
		now = time.Now
	}
	return &Server{
		provider: provider,
		gate:     gate.New(provider, gate.DefaultPaths, logger),
		api:      client,
		logger:   logger,
		now:      now,
		csrfKey:  options.CSRFKey,
		secure:   options.Secure,
	}
}

// Router builds the HTTP handler of the front end.
func (server *Server) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(server.accessLog)
	router.Use(middleware.Recoverer)

	router.Get("/health", server.health)
	static, _ := fs.Sub(staticFiles, "static")
	router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	router.Group(func(router chi.Router) {
		if !server.secure {
			router.Use(plaintext)
		}
		router.Use(csrf.Protect(server.csrfKey,
			csrf.Secure(server.secure),
			csrf.Path("/"),
			csrf.FieldName(views.CSRFFieldName),
			csrf.SameSite(csrf.SameSiteLaxMode),
			csrf.ErrorHandler(http.HandlerFunc(server.csrfFailed)),
		))
		router.Use(server.provider.Middleware)

		router.Get("/", server.index)
		router.Get("/events/{id}", server.event)
		router.Post("/events/{id}/book", server.book)
		router.Post("/signout", server.signOut)
		router.Get("/auth/watch", server.watch)

		router.Group(func(router chi.Router) {
			router.Use(server.gate.Require(gate.SignedOut))
			router.Get("/signin", server.signInForm)
			router.Post("/signin", server.signIn)
			router.Get("/register", server.registerForm)
			router.Post("/register", server.register)
		})

		router.With(server.gate.Require(gate.User)).Get("/dashboard", server.dashboard)

		router.Route("/admin", func(router chi.Router) {
			router.Use(server.gate.Require(gate.Admin))
			router.Get("/", server.admin)
			router.Post("/events", server.createEvent)
			router.Post("/events/{id}/delete", server.deleteEvent)
		})
	})
	return router
}

func (server *Server) health(responseWriter http.ResponseWriter, request *http.Request) {
	writeJSON(responseWriter, http.StatusOK, map[string]string{"status": "ok"})
}

func (server *Server) csrfFailed(responseWriter http.ResponseWriter, request *http.Request) {
	server.logger.Warn("csrf_rejected",
		"path", request.URL.Path,
		"reason", csrf.FailureReason(request),
		"request_id", middleware.GetReqID(request.Context()),
	)
	http.Error(responseWriter, "The form expired. Go back, reload the page and try again.", http.StatusForbidden)
}

func writeJSON(responseWriter http.ResponseWriter, status int, value any) {
	responseWriter.Header().Set("Content-Type", "application/json")
	responseWriter.WriteHeader(status)
	_ = json.NewEncoder(responseWriter).Encode(value)
}
