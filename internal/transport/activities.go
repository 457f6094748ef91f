package transport

import (
	"net/http"
	"time"

	"github.com/hferris/pipecrm/internal/domain/activity"
)

func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := s.svc.Activities.List(r.Context())
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	if activities == nil {
		activities = []activity.Activity{}
	}
	writeJSON(w, http.StatusOK, activities)
}

func (s *Server) handleActivitySummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.svc.Activities.Summarize(r.Context(), time.Now())
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleCreateActivity(w http.ResponseWriter, r *http.Request) {
	var req activity.CreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	a, err := s.svc.Activities.Create(r.Context(), req)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

type completeActivityRequest struct {
	ID        int64 `json:"id"`
	Completed bool  `json:"completed"`
}

func (s *Server) handleCompleteActivity(w http.ResponseWriter, r *http.Request) {
	var req completeActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.svc.Activities.SetCompleted(r.Context(), req.ID, req.Completed); err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
