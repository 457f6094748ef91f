package transport

import (
	"net/http"
	"strconv"

	"github.com/hferris/pipecrm/internal/domain/note"
)

func (s *Server) handleListNotes(w http.ResponseWriter, r *http.Request) {
	var opts note.ListOptions

	if v := r.URL.Query().Get("contact_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid contact_id")
			return
		}
		opts.ContactID = &id
	}
	if v := r.URL.Query().Get("deal_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid deal_id")
			return
		}
		opts.DealID = &id
	}

	notes, err := s.svc.Notes.List(r.Context(), opts)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	if notes == nil {
		notes = []note.Note{}
	}
	writeJSON(w, http.StatusOK, notes)
}

func (s *Server) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	var req note.CreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	n, err := s.svc.Notes.Create(r.Context(), req)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, n)
}
