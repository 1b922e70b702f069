package fieldparse

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-builder/internal/types"
)

// Decision is the user's answer to a proposal
type Decision int

// Decisions
const (
	DecisionAccept Decision = iota
	DecisionEdit
	DecisionSkip
	DecisionBack
	DecisionCancel
)

// Review is a Decision plus the edited value for DecisionEdit
type Review struct {
	Decision Decision
	Value    string
}

// Reviewer is asked about every field. proposal is nil when extraction failed,
// in which case extractErr says why.
type Reviewer interface {
	Review(ctx context.Context, field Field, proposal any, extractErr error) (Review, error)
}

// Run drives a whole session over text with reviewer making the decisions.
// Cancellation through ctx or DecisionCancel discards the record.
func Run(ctx context.Context, extractor Extractor, text string, reviewer Reviewer, logger *zap.Logger) (types.ResumeRecord, error) {
	s := NewSession(uuid.NewString(), extractor, text, logger)

	for !s.Done() {
		snap, err := s.Extract(ctx)
		if ctxErr := ctx.Err(); ctxErr != nil {
			_ = s.Cancel()
			return types.ResumeRecord{}, fmt.Errorf("%w: %w", ErrCancelled, ctxErr)
		}
		var stepErr *StepError
		if err != nil && !errors.As(err, &stepErr) {
			return types.ResumeRecord{}, err
		}

		review, err := reviewer.Review(ctx, *snap.Field, snap.Proposal, err)
		if err != nil {
			_ = s.Cancel()
			return types.ResumeRecord{}, err
		}

		switch review.Decision {
		case DecisionAccept:
			if snap.Proposal == nil {
				_, err = s.Skip()
			} else {
				_, err = s.Accept()
			}
		case DecisionEdit:
			_, err = s.Edit(review.Value)
		case DecisionSkip:
			_, err = s.Skip()
		case DecisionBack:
			_, err = s.Back()
		case DecisionCancel:
			_ = s.Cancel()
			return types.ResumeRecord{}, ErrCancelled
		}
		// A bad edit keeps the session on the same field.
		if err != nil && !errors.As(err, &stepErr) {
			return types.ResumeRecord{}, err
		}
	}

	return s.Result()
}
