package server

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-builder/internal/fieldparse"
)

// CreateSessionRequest starts a field-by-field session
type CreateSessionRequest struct {
	Text string `json:"text"`
}

// EditFieldRequest supplies a value for the current field
type EditFieldRequest struct {
	Value string `json:"value"`
}

// handleCreateSession starts a session over the posted text
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		s.handleError(w, r, &ErrValidation{Field: "text", Message: "text is required"})
		return
	}

	session := s.sessions.Create(req.Text)
	s.logger.Info("field session created", zap.String("session", session.ID()))
	s.jsonResponse(w, http.StatusCreated, session.Snapshot())
}

// session looks up the {id} path value, writing 404 when it is unknown
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*fieldparse.Session, bool) {
	session, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.handleError(w, r, err)
		return nil, false
	}
	return session, true
}

// handleGetSession returns the session state
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, session.Snapshot())
}

// handleDeleteSession cancels and forgets a session
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Delete(r.PathValue("id")); err != nil {
		s.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSessionExtract proposes a value for the current field
func (s *Server) handleSessionExtract(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}
	snap, err := session.Extract(r.Context())
	s.snapshotResponse(w, r, snap, err)
}

// handleSessionAccept commits the proposal
func (s *Server) handleSessionAccept(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}
	snap, err := session.Accept()
	s.snapshotResponse(w, r, snap, err)
}

// handleSessionEdit commits a user value for the current field
func (s *Server) handleSessionEdit(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}
	var req EditFieldRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	snap, err := session.Edit(req.Value)
	var stepErr *fieldparse.StepError
	if errors.As(err, &stepErr) {
		err = &ErrValidation{Field: stepErr.Field, Message: stepErr.Err.Error()}
	}
	s.snapshotResponse(w, r, snap, err)
}

// handleSessionSkip leaves the current field unchanged
func (s *Server) handleSessionSkip(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}
	snap, err := session.Skip()
	s.snapshotResponse(w, r, snap, err)
}

// handleSessionBack returns to the previous field
func (s *Server) handleSessionBack(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}
	snap, err := session.Back()
	s.snapshotResponse(w, r, snap, err)
}

// handleSessionStream extracts and accepts every remaining field, streaming a
// "field" event per step. Fields whose extraction fails get an "error" event
// and are skipped. The final "complete" event carries the finished record.
func (s *Server) handleSessionStream(w http.ResponseWriter, r *http.Request) {
	if s.client == nil {
		s.handleError(w, r, ErrModelUnavailable)
		return
	}
	session, ok := s.session(w, r)
	if !ok {
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	ctx := r.Context()
	for !session.Done() {
		if ctx.Err() != nil {
			return
		}

		snap, err := session.Extract(ctx)
		var stepErr *fieldparse.StepError
		switch {
		case errors.As(err, &stepErr):
			sse.WriteError(stepErr.Field, stepErr.Err.Error())
			snap, err = session.Skip()
		case err == nil:
			snap, err = session.Accept()
		}
		if err != nil {
			sse.WriteError("", err.Error())
			return
		}
		if err := sse.WriteField(snap); err != nil {
			s.logger.Warn("failed to write field event", zap.Error(err))
			return
		}
	}

	record, err := session.Result()
	if err != nil {
		sse.WriteError("", err.Error())
		return
	}
	sse.WriteComplete(session.ID(), record)
}

// snapshotResponse writes snap, or the mapped error status with the snapshot attached
func (s *Server) snapshotResponse(w http.ResponseWriter, r *http.Request, snap fieldparse.Snapshot, err error) {
	if err == nil {
		s.jsonResponse(w, http.StatusOK, snap)
		return
	}

	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("field session step failed", zap.String("session", snap.ID), zap.Error(err))
	}
	s.jsonResponse(w, status, map[string]any{"error": err.Error(), "session": snap})
}
