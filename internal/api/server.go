package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Thommy-String/preventivo-pro-casa-parquet/internal/config"
	"github.com/Thommy-String/preventivo-pro-casa-parquet/internal/quote"
)

// QuoteStore is the persistence surface the handlers need. The
// Firestore-backed implementation lives in internal/store.
type QuoteStore interface {
	Get(ctx context.Context, id string) (*quote.Quote, error)
	Put(ctx context.Context, q *quote.Quote) error
	List(ctx context.Context) ([]quote.Quote, error)
	Delete(ctx context.Context, id string) error
}

// Server is the HTTP API for the quote editor and the public share
// view.
type Server struct {
	router chi.Router
	store  QuoteStore
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(store QuoteStore, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		store: store,
		log:   log,
		cfg:   cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints: health plus the shareable quote view.
	r.Get("/health", s.handleHealth)
	r.Get("/q/{quoteID}", s.handleShareView)

	// Editor endpoints behind the admin API key.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.AdminAPIKey, s.log))

		r.Get("/api/quotes", s.handleListQuotes)
		r.Post("/api/quotes", s.handleCreateQuote)
		r.Get("/api/quotes/{quoteID}", s.handleGetQuote)
		r.Put("/api/quotes/{quoteID}", s.handleSaveQuote)
		r.Delete("/api/quotes/{quoteID}", s.handleDeleteQuote)

		r.Post("/api/quotes/{quoteID}/days/{day}/arrival", s.handleUpdateArrival)
		r.Post("/api/quotes/{quoteID}/days/{day}/slots", s.handleAddSlot)
		r.Patch("/api/quotes/{quoteID}/sections/{sectionID}/slots/{slotID}", s.handleUpdateSlot)
		r.Delete("/api/quotes/{quoteID}/sections/{sectionID}/slots/{slotID}", s.handleRemoveSlot)

		r.Get("/api/quotes/{quoteID}/schedule", s.handleSchedule)
		r.Get("/api/quotes/{quoteID}/export.docx", s.handleExportDocx)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
