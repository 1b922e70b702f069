package server

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-builder/internal/resumetext"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/types"
)

// ShareRequest publishes résumé text, or a record, under a share code
type ShareRequest struct {
	Source   string              `json:"source,omitempty"`
	Title    string              `json:"title,omitempty"`
	Content  string              `json:"content,omitempty"`
	Record   *types.ResumeRecord `json:"record,omitempty"`
	Template string              `json:"template,omitempty"`
	TTLHours int                 `json:"ttl_hours,omitempty"`
}

// handleCreateShare publishes a résumé. A source that is already shared gets its existing share back.
func (s *Server) handleCreateShare(w http.ResponseWriter, r *http.Request) {
	var req ShareRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	content := req.Content
	if req.Record != nil {
		content = resumetext.Serialize(*req.Record)
	}
	if strings.TrimSpace(content) == "" {
		s.handleError(w, r, &ErrValidation{Field: "content", Message: "content or record is required"})
		return
	}
	if req.TTLHours < 0 {
		s.handleError(w, r, &ErrValidation{Field: "ttl_hours", Message: "must not be negative"})
		return
	}

	share, err := s.shares.Create(r.Context(), storage.ShareInput{
		Source:   req.Source,
		Title:    req.Title,
		Content:  content,
		Template: req.Template,
		TTL:      time.Duration(req.TTLHours) * time.Hour,
	})
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	s.logger.Info("resume shared", zap.String("code", share.Code), zap.String("source", share.Source))
	s.jsonResponse(w, http.StatusCreated, share)
}

// handleGetShare returns a shared résumé and counts the view
func (s *Server) handleGetShare(w http.ResponseWriter, r *http.Request) {
	share, err := s.shares.Lookup(r.Context(), r.PathValue("code"), true)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, share)
}

// handleDeleteShare withdraws a share code
func (s *Server) handleDeleteShare(w http.ResponseWriter, r *http.Request) {
	if err := s.shares.Delete(r.Context(), r.PathValue("code")); err != nil {
		s.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
