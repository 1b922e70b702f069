package fieldparse

import (
	"errors"
	"fmt"
)

// Session errors
var (
	ErrCancelled       = errors.New("field session cancelled")
	ErrBusy            = errors.New("field extraction already in progress")
	ErrFinished        = errors.New("field session already finished")
	ErrInProgress      = errors.New("field session not finished")
	ErrNoProposal      = errors.New("no proposal to accept")
	ErrSessionNotFound = errors.New("field session not found")
)

// StepError is a failed extraction for one field. The field keeps its prior value.
type StepError struct {
	Field string
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("extract %s: %v", e.Field, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
