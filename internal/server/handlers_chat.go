package server

import (
	"net/http"

	"github.com/jonathan/resume-builder/internal/chat"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/resumetext"
	"github.com/jonathan/resume-builder/internal/types"
)

// ChatRequest is one conversation turn
type ChatRequest struct {
	Messages  []types.ChatMessage `json:"messages"`
	Resume    string              `json:"resume,omitempty"`
	TargetJob string              `json:"targetJob,omitempty"`
	Interview bool                `json:"interview,omitempty"`
}

// ChatBlocksRequest carries an assistant reply to scan for blocks
type ChatBlocksRequest struct {
	Message string `json:"message"`
}

// ChatBlocksResponse holds the blocks found in a reply
type ChatBlocksResponse struct {
	Resume        string                   `json:"resume,omitempty"`
	HasResume     bool                     `json:"hasResume"`
	Record        *types.ResumeRecord      `json:"record,omitempty"`
	Feedback      *types.InterviewFeedback `json:"feedback,omitempty"`
	FeedbackError string                   `json:"feedbackError,omitempty"`
}

// handleChatBlocks extracts the résumé and feedback blocks from a reply
func (s *Server) handleChatBlocks(w http.ResponseWriter, r *http.Request) {
	var req ChatBlocksRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	var resp ChatBlocksResponse
	if block, ok := ingestion.ExtractResumeBlock(req.Message); ok {
		resp.Resume, resp.HasResume = block, true
		rec := resumetext.Parse(block)
		resp.Record = &rec
	}
	if feedback, ok, err := ingestion.ExtractFeedbackBlock(req.Message); ok {
		if err != nil {
			resp.FeedbackError = err.Error()
		} else {
			resp.Feedback = feedback
		}
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleChat relays one turn to the model
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if s.client == nil {
		s.handleError(w, r, ErrModelUnavailable)
		return
	}
	var req ChatRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	reply, err := chat.Turn(r.Context(), s.client, req.Messages, req.Resume, chat.Options{
		TargetJob: req.TargetJob,
		Interview: req.Interview,
	})
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, reply)
}

// handleGreeting returns the opening assistant message
func (s *Server) handleGreeting(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, chat.Greeting())
}
