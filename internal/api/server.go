package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"fishguide/internal/advisor"
	"fishguide/internal/catalog"
	"fishguide/internal/journal"
	"fishguide/internal/report"
)

// Journal is the journal surface the API serves. *journal.Service satisfies it.
type Journal interface {
	Entries(ctx context.Context) []journal.Entry
	Entry(ctx context.Context, id string) (journal.Entry, error)
	SaveEntry(ctx context.Context, e journal.Entry) (journal.Entry, error)
	DeleteEntry(ctx context.Context, id string) error
	Catches(ctx context.Context) []journal.Catch
	AddCatch(ctx context.Context, c journal.Catch) (journal.Catch, error)
	DeleteCatch(ctx context.Context, id string) error
	CatchesForEntry(ctx context.Context, entryID string) []journal.Catch
}

type Deps struct {
	Advisor        *advisor.Advisor
	Reports        *report.Generator
	Catalog        *catalog.Catalog
	Gear           *catalog.Gear
	Journal        Journal
	AllowedOrigins []string
	// Today supplies the report date when none is given.
	Today func() string
}

type Server struct {
	advisor *advisor.Advisor
	reports *report.Generator
	catalog *catalog.Catalog
	gear    *catalog.Gear
	journal Journal
	today   func() string
	router  chi.Router
}

func New(deps Deps) *Server {
	s := &Server{
		advisor: deps.Advisor,
		reports: deps.Reports,
		catalog: deps.Catalog,
		gear:    deps.Gear,
		journal: deps.Journal,
		today:   deps.Today,
	}
	if s.advisor == nil {
		s.advisor = advisor.New(nil)
	}
	if s.reports == nil {
		s.reports = report.New(nil)
	}
	if s.catalog == nil {
		s.catalog = catalog.Default()
	}
	if s.gear == nil {
		s.gear = catalog.DefaultGear()
	}
	if s.today == nil {
		s.today = func() string { return time.Now().Format("2006-01-02") }
	}
	s.router = s.routes(deps.AllowedOrigins)
	return s
}

func (s *Server) routes(origins []string) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	if len(origins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}

	r.Get("/health", s.handleHealth)
	r.Post("/recommendations", s.handleRecommend)
	r.Get("/reports", s.handleReport)
	r.Get("/species", s.handleSpecies)
	r.Get("/locations", s.handleLocations)
	r.Get("/gear", s.handleGear)
	r.Get("/gear/kits", s.handleStarterKits)

	r.Route("/journal", func(r chi.Router) {
		r.Get("/", s.handleListEntries)
		r.Post("/", s.handleSaveEntry)
		r.Get("/{id}", s.handleGetEntry)
		r.Delete("/{id}", s.handleDeleteEntry)
		r.Get("/{id}/catches", s.handleEntryCatches)
	})
	r.Route("/catches", func(r chi.Router) {
		r.Get("/", s.handleListCatches)
		r.Post("/", s.handleAddCatch)
		r.Delete("/{id}", s.handleDeleteCatch)
	})
	return r
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
