// Package server provides the HTTP REST API for the resume builder.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-builder/internal/chat"
	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/fieldparse"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/parsing"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/storage"
)

// ErrModelUnavailable is returned by endpoints that need a model when no API key is configured.
var ErrModelUnavailable = errors.New("model client not configured")

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		parseValErr   *parsing.ValidationError
		schemaErr     *schemas.ValidationError
		indexErr      *editor.IndexError
		stepErr       *fieldparse.StepError
		apiErr        *parsing.APICallError
		parseErr      *parsing.ParseError
		fieldErrs     validator.ValidationErrors
	)

	switch {
	case err == nil:
		return http.StatusInternalServerError
	case errors.As(err, &validationErr), errors.As(err, &parseValErr), errors.As(err, &schemaErr),
		errors.As(err, &indexErr), errors.As(err, &fieldErrs), errors.Is(err, editor.ErrInvalidOp),
		errors.Is(err, chat.ErrEmptyHistory), errors.Is(err, ingestion.ErrTooShort):
		return http.StatusBadRequest
	case errors.Is(err, fieldparse.ErrSessionNotFound), errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, fieldparse.ErrBusy), errors.Is(err, fieldparse.ErrFinished),
		errors.Is(err, fieldparse.ErrInProgress), errors.Is(err, fieldparse.ErrNoProposal),
		errors.Is(err, fieldparse.ErrCancelled):
		return http.StatusConflict
	case errors.As(err, &parseErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &stepErr), errors.As(err, &apiErr):
		return http.StatusBadGateway
	case errors.Is(err, ErrModelUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
