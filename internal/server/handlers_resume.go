package server

import (
	"net/http"
	"strings"

	"github.com/jonathan/resume-builder/internal/diagnosis"
	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/jsonrepair"
	"github.com/jonathan/resume-builder/internal/parsing"
	"github.com/jonathan/resume-builder/internal/resumetext"
	"github.com/jonathan/resume-builder/internal/types"
)

// TextRequest carries delimited résumé text
type TextRequest struct {
	Text string `json:"text"`
}

// RecordRequest carries a structured record
type RecordRequest struct {
	Record types.ResumeRecord `json:"record"`
}

// RecordResponse returns a record with its delimited text
type RecordResponse struct {
	Record   types.ResumeRecord `json:"record"`
	Text     string             `json:"text"`
	Complete bool               `json:"complete"`
}

// RepairRequest carries raw model output
type RepairRequest struct {
	Content string `json:"content"`
}

// DiagnoseRequest carries a résumé as text or record, plus target keywords
type DiagnoseRequest struct {
	Text     string              `json:"text,omitempty"`
	Record   *types.ResumeRecord `json:"record,omitempty"`
	Keywords []string            `json:"keywords,omitempty"`
}

// EditRequest applies ops to a record in order
type EditRequest struct {
	Record types.ResumeRecord `json:"record"`
	Ops    []editor.Op        `json:"ops"`
}

// UploadRequest carries extracted upload content
type UploadRequest struct {
	Content string `json:"content"`
	Format  string `json:"format,omitempty"` // text (default) or html
}

func newRecordResponse(rec types.ResumeRecord) RecordResponse {
	rec.Normalize()
	return RecordResponse{Record: rec, Text: resumetext.Serialize(rec), Complete: rec.IsComplete()}
}

// handleParse converts delimited text into a record
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req TextRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	rec := resumetext.Parse(req.Text)
	s.jsonResponse(w, http.StatusOK, RecordResponse{Record: rec, Text: req.Text, Complete: rec.IsComplete()})
}

// handleSerialize converts a record into delimited text
func (s *Server) handleSerialize(w http.ResponseWriter, r *http.Request) {
	var req RecordRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	s.jsonResponse(w, http.StatusOK, newRecordResponse(req.Record))
}

// handleRepair recovers a record from malformed model output
func (s *Server) handleRepair(w http.ResponseWriter, r *http.Request) {
	var req RepairRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		s.handleError(w, r, &ErrValidation{Field: "content", Message: "content is required"})
		return
	}

	result, err := jsonrepair.ParseResume(req.Content)
	if err != nil {
		s.handleError(w, r, &parsing.ParseError{Message: "no recovery strategy succeeded", Cause: err})
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleMarkdown exports text, or a record, as Markdown
func (s *Server) handleMarkdown(w http.ResponseWriter, r *http.Request) {
	var req DiagnoseRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	text := req.Text
	if req.Record != nil {
		text = resumetext.Serialize(*req.Record)
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"markdown": resumetext.ToMarkdown(text)})
}

// handleTranslate swaps the structural labels of text, or a record, for English ones
func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req DiagnoseRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	text := req.Text
	if req.Record != nil {
		text = resumetext.Serialize(*req.Record)
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"text": resumetext.ToEnglish(text)})
}

// handleDiagnose runs the rule-based diagnosis
func (s *Server) handleDiagnose(w http.ResponseWriter, r *http.Request) {
	var req DiagnoseRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	rec, err := req.record()
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, diagnosis.Report(rec, diagnosis.Options{Keywords: req.Keywords}))
}

// handleScore returns the condensed score for a résumé
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req DiagnoseRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	rec, err := req.record()
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, diagnosis.Score(rec, diagnosis.Options{Keywords: req.Keywords}))
}

// handleMatch compares a résumé with target job keywords
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req DiagnoseRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if len(req.Keywords) == 0 {
		s.handleError(w, r, &ErrValidation{Field: "keywords", Message: "at least one keyword is required"})
		return
	}
	rec, err := req.record()
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, diagnosis.MatchJob(rec, req.Keywords))
}

// record returns the request's record, parsing text when no record was sent.
func (req DiagnoseRequest) record() (types.ResumeRecord, error) {
	var rec types.ResumeRecord
	switch {
	case req.Record != nil:
		rec = *req.Record
	case strings.TrimSpace(req.Text) != "":
		rec = resumetext.Parse(req.Text)
	default:
		return rec, &ErrValidation{Field: "text", Message: "text or record is required"}
	}
	rec.Normalize()
	return rec, nil
}

// handleEdit applies a batch of edit ops
func (s *Server) handleEdit(w http.ResponseWriter, r *http.Request) {
	var req EditRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	rec, err := editor.ApplyAll(req.Record, req.Ops)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, newRecordResponse(rec))
}

// handleUpload cleans uploaded text or HTML
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	var req UploadRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	content := req.Content
	switch req.Format {
	case "", "text":
	case "html":
		text, err := ingestion.HTMLToText(content)
		if err != nil {
			s.handleError(w, r, &ErrValidation{Field: "content", Message: err.Error()})
			return
		}
		content = text
	default:
		s.handleError(w, r, &ErrValidation{Field: "format", Message: "must be text or html"})
		return
	}

	upload, err := ingestion.PrepareUpload(content)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, upload)
}

// handleAutoParse parses a whole résumé with the model
func (s *Server) handleAutoParse(w http.ResponseWriter, r *http.Request) {
	if s.client == nil {
		s.handleError(w, r, ErrModelUnavailable)
		return
	}
	var req TextRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	result, err := s.parser.ParseResume(r.Context(), req.Text)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"record":   result.Record,
		"text":     resumetext.Serialize(result.Record),
		"strategy": result.Strategy,
		"complete": result.Complete,
	})
}
