package server

import (
	"net/http"

	"github.com/jonathan/resume-builder/internal/types"
)

// handleGetDraft loads an autosave draft
func (s *Server) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	draft, err := s.drafts.Load(r.Context(), r.PathValue("key"))
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, draft)
}

// handlePutDraft saves an autosave draft. Empty drafts are acknowledged but not stored.
func (s *Server) handlePutDraft(w http.ResponseWriter, r *http.Request) {
	var draft types.Draft
	if !s.decodeBody(w, r, &draft) {
		return
	}

	saved, err := s.drafts.Save(r.Context(), r.PathValue("key"), draft)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]bool{"saved": saved})
}

// handleDeleteDraft removes an autosave draft
func (s *Server) handleDeleteDraft(w http.ResponseWriter, r *http.Request) {
	if err := s.drafts.Clear(r.Context(), r.PathValue("key")); err != nil {
		s.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleGetRecord loads a saved résumé record
func (s *Server) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	rec, err := s.drafts.LoadRecord(r.Context(), r.PathValue("key"))
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, newRecordResponse(rec))
}

// handlePutRecord saves a résumé record
func (s *Server) handlePutRecord(w http.ResponseWriter, r *http.Request) {
	var req RecordRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if err := s.drafts.SaveRecord(r.Context(), r.PathValue("key"), req.Record); err != nil {
		s.handleError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, newRecordResponse(req.Record))
}
