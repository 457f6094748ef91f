package transport

import (
	"net/http"

	"github.com/hferris/pipecrm/internal/domain/deal"
)

func (s *Server) handleListDeals(w http.ResponseWriter, r *http.Request) {
	deals, err := s.svc.Deals.List(r.Context())
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	if deals == nil {
		deals = []deal.Deal{}
	}
	writeJSON(w, http.StatusOK, deals)
}

func (s *Server) handleCreateDeal(w http.ResponseWriter, r *http.Request) {
	var req deal.CreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	d, err := s.svc.Deals.Create(r.Context(), req)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, d)
}

func (s *Server) handleUpdateDeal(w http.ResponseWriter, r *http.Request) {
	var req deal.UpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	d, err := s.svc.Deals.Update(r.Context(), req)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}
