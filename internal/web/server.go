// Package web provides the HTTP surface of the invoice dashboard:
// form-submission routes feeding the mutation service, the cached
// listing page, and the sign-in endpoints.
package web

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/justine-135/invoice-dashboard/internal/auth"
	"github.com/justine-135/invoice-dashboard/internal/config"
	"github.com/justine-135/invoice-dashboard/internal/invoice"
	"github.com/justine-135/invoice-dashboard/internal/web/middleware"
)

// InvoiceLister reads the invoice records backing the listing page.
type InvoiceLister interface {
	List(ctx context.Context) ([]invoice.Record, error)
}

// Server is the HTTP server for the dashboard.
type Server struct {
	invoices *invoice.Service
	lister   InvoiceLister
	verifier auth.Verifier
	sessions *auth.SessionStore
	cache    *PageCache
	session  config.SessionConfig
	router   *chi.Mux
	server   *http.Server
}

// NewServer wires the mutation service, listing reader, credential
// verifier, session store, and page cache into a routed server.
func NewServer(invoices *invoice.Service, lister InvoiceLister, verifier auth.Verifier, sessions *auth.SessionStore, cache *PageCache, session config.SessionConfig) *Server {
	s := &Server{
		invoices: invoices,
		lister:   lister,
		verifier: verifier,
		sessions: sessions,
		cache:    cache,
		session:  session,
		router:   chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(chimw.RequestID)
	s.router.Use(chimw.RealIP)
	s.router.Use(middleware.RequestLogger)
	s.router.Use(chimw.Recoverer)
	s.router.Use(securityHeaders)
}

func (s *Server) setupRoutes() {
	s.router.Route("/dashboard/invoices", func(r chi.Router) {
		r.Get("/", s.handleListInvoices)
		r.Post("/", s.handleCreateInvoice)
		r.Post("/{id}", s.handleUpdateInvoice)
		r.Delete("/{id}", s.handleDeleteInvoice)
	})

	s.router.Post("/login", s.handleLogin)
	s.router.Post("/logout", s.handleLogout)
}

// Start begins listening for HTTP requests with the configured timeouts.
func (s *Server) Start(cfg config.ServerConfig) error {
	s.server = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      http.TimeoutHandler(s.router, cfg.RequestTimeout, "request timed out"),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// securityHeaders adds baseline security headers to all responses.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}
