package fieldparse

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-builder/internal/types"
)

// State is where a session is in its step cycle
type State string

// Session states
const (
	StateAwaiting   State = "awaiting"   // current field has no proposal yet
	StateExtracting State = "extracting" // extractor call in flight
	StateReviewing  State = "reviewing"  // proposal ready for accept, edit or skip
	StateDone       State = "done"
	StateCancelled  State = "cancelled"
)

// Snapshot is a copy of a session's visible state
type Snapshot struct {
	ID       string             `json:"id"`
	State    State              `json:"state"`
	Step     int                `json:"step"`
	Total    int                `json:"total"`
	Field    *Field             `json:"field,omitempty"`
	Proposal any                `json:"proposal,omitempty"`
	Record   types.ResumeRecord `json:"record"`
	Error    string             `json:"error,omitempty"`
}

// Session walks Fields in order. Only one extraction runs at a time; the
// committed record changes only through Accept and Edit.
type Session struct {
	mu        sync.Mutex
	id        string
	text      string
	extractor Extractor
	logger    *zap.Logger

	step     int
	state    State
	record   types.ResumeRecord
	proposal *types.ResumeRecord
	lastErr  error
	cancel   context.CancelFunc
}

// NewSession starts a session over text. A nil logger is replaced with a no-op logger.
func NewSession(id string, extractor Extractor, text string, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		id:        id,
		text:      text,
		extractor: extractor,
		logger:    logger.With(zap.String("session", id)),
		state:     StateAwaiting,
		record:    types.NewResumeRecord(),
	}
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// Extract asks the extractor for the current field and holds the answer as a
// proposal. A failed step leaves the record unchanged and returns a *StepError.
func (s *Session) Extract(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	if err := s.checkActive(); err != nil {
		s.mu.Unlock()
		return Snapshot{}, err
	}
	field := Fields[s.step]
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.state = StateExtracting
	s.proposal = nil
	s.lastErr = nil
	s.mu.Unlock()

	start := time.Now()
	raw, err := s.extractor.Extract(ctx, field, s.text)
	cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancel = nil
	if s.state == StateCancelled {
		return s.snapshot(), ErrCancelled
	}

	var proposal types.ResumeRecord
	if err == nil {
		proposal, err = Decode(s.record, field, raw)
	}
	if err != nil {
		s.state = StateAwaiting
		s.lastErr = &StepError{Field: field.Key, Err: err}
		s.logger.Warn("field extraction failed", zap.String("field", field.Key), zap.Error(err))
		return s.snapshot(), s.lastErr
	}

	s.proposal = &proposal
	s.state = StateReviewing
	s.logger.Debug("field extracted",
		zap.String("field", field.Key),
		zap.Duration("duration", time.Since(start)))
	return s.snapshot(), nil
}

// Accept commits the proposal and advances.
func (s *Session) Accept() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkActive(); err != nil {
		return s.snapshot(), err
	}
	if s.proposal == nil {
		return s.snapshot(), ErrNoProposal
	}
	s.record = *s.proposal
	s.advance()
	return s.snapshot(), nil
}

// Edit commits a user-supplied value for the current field and advances. List
// fields take a JSON array; skills may also be a delimited list.
func (s *Session) Edit(value string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkActive(); err != nil {
		return s.snapshot(), err
	}
	field := Fields[s.step]
	rec, err := decodeEdit(s.record, field, value)
	if err != nil {
		return s.snapshot(), &StepError{Field: field.Key, Err: err}
	}
	s.record = rec
	s.advance()
	return s.snapshot(), nil
}

// Skip discards any proposal and advances, leaving the field at its prior value.
func (s *Session) Skip() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkActive(); err != nil {
		return s.snapshot(), err
	}
	s.advance()
	return s.snapshot(), nil
}

// Back returns to the previous field, discarding any proposal. A finished
// session reopens at the last field.
func (s *Session) Back() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateCancelled:
		return s.snapshot(), ErrCancelled
	case StateExtracting:
		return s.snapshot(), ErrBusy
	}
	if s.step > 0 {
		s.step--
	}
	s.proposal = nil
	s.lastErr = nil
	s.state = StateAwaiting
	return s.snapshot(), nil
}

// Cancel aborts any in-flight extraction and discards the in-progress record.
func (s *Session) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateCancelled:
		return nil
	case StateDone:
		return ErrFinished
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.state = StateCancelled
	s.record = types.NewResumeRecord()
	s.proposal = nil
	s.logger.Info("field session cancelled", zap.Int("step", s.step))
	return nil
}

// Done reports whether every field has been passed.
func (s *Session) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateDone
}

// Cancelled reports whether the session was cancelled.
func (s *Session) Cancelled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateCancelled
}

// Result returns the completed record.
func (s *Session) Result() (types.ResumeRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateDone:
		return s.record.Clone(), nil
	case StateCancelled:
		return types.ResumeRecord{}, ErrCancelled
	default:
		return types.ResumeRecord{}, ErrInProgress
	}
}

// Snapshot returns the current visible state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) checkActive() error {
	switch s.state {
	case StateExtracting:
		return ErrBusy
	case StateDone:
		return ErrFinished
	case StateCancelled:
		return ErrCancelled
	}
	return nil
}

func (s *Session) advance() {
	s.proposal = nil
	s.lastErr = nil
	s.step++
	if s.step >= len(Fields) {
		s.step = len(Fields)
		s.state = StateDone
		s.logger.Info("field session finished")
		return
	}
	s.state = StateAwaiting
}

func (s *Session) snapshot() Snapshot {
	snap := Snapshot{
		ID:     s.id,
		State:  s.state,
		Step:   s.step,
		Total:  len(Fields),
		Record: s.record.Clone(),
	}
	if s.step < len(Fields) && s.state != StateCancelled {
		field := Fields[s.step]
		snap.Field = &field
		if s.proposal != nil {
			snap.Proposal = Value(*s.proposal, field)
		}
	}
	if s.lastErr != nil {
		snap.Error = s.lastErr.Error()
	}
	return snap
}
