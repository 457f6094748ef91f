// Package transport exposes the CRM core as a JSON HTTP API. Handlers are
// thin: decode, delegate to a domain service, encode. Read paths never
// mutate state; seeding happens only through POST /api/init (or at
// startup).
package transport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hferris/pipecrm/internal/domain/activity"
	"github.com/hferris/pipecrm/internal/domain/company"
	"github.com/hferris/pipecrm/internal/domain/contact"
	"github.com/hferris/pipecrm/internal/domain/dashboard"
	"github.com/hferris/pipecrm/internal/domain/deal"
	"github.com/hferris/pipecrm/internal/domain/note"
)

// Seeder loads the fixture dataset into an empty store.
type Seeder interface {
	Seed(ctx context.Context) (bool, error)
}

// Services bundles the domain services the API serves.
type Services struct {
	Companies  *company.Service
	Contacts   *contact.Service
	Deals      *deal.Service
	Activities *activity.Service
	Notes      *note.Service
	Dashboard  *dashboard.Service
}

// Server wires HTTP handlers to domain services.
type Server struct {
	svc    Services
	seeder Seeder
	logger *slog.Logger
}

// NewRouter builds the API router with middleware.
func NewRouter(svc Services, seeder Seeder, logger *slog.Logger) *chi.Mux {
	s := &Server{svc: svc, seeder: seeder, logger: logger}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger(logger))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/dashboard", s.handleDashboard)
		r.Post("/init", s.handleInit)

		r.Get("/companies", s.handleListCompanies)
		r.Post("/companies", s.handleCreateCompany)
		r.Put("/companies", s.handleUpdateCompany)

		r.Get("/contacts", s.handleListContacts)
		r.Post("/contacts", s.handleCreateContact)
		r.Put("/contacts", s.handleUpdateContact)

		r.Get("/deals", s.handleListDeals)
		r.Post("/deals", s.handleCreateDeal)
		r.Put("/deals", s.handleUpdateDeal)

		r.Get("/activities", s.handleListActivities)
		r.Get("/activities/summary", s.handleActivitySummary)
		r.Post("/activities", s.handleCreateActivity)
		r.Put("/activities", s.handleCompleteActivity)

		r.Get("/notes", s.handleListNotes)
		r.Post("/notes", s.handleCreateNote)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

type initResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (s *Server) handleInit(w http.ResponseWriter, r *http.Request) {
	seeded, err := s.seeder.Seed(r.Context())
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	msg := "Database already seeded"
	if seeded {
		msg = "Database initialized successfully"
	}
	writeJSON(w, http.StatusOK, initResponse{Success: true, Message: msg})
}
