// Package apperror defines the error kinds surfaced by the scoring service and
// maps them onto HTTP status codes.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNoLeads is returned when scoring is requested before any CSV upload.
	ErrNoLeads = errors.New("No leads uploaded to score. Upload CSV first")
	// ErrNoOffer is returned by lookups of an offer that was never submitted.
	ErrNoOffer = errors.New("No offer submitted yet")
)

// ValidationError reports malformed client input on a single field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ParseError wraps a failure while decoding an uploaded lead file.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse leads csv: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func NewParseError(err error) *ParseError {
	return &ParseError{Err: err}
}

// AIScoringError is a per-lead failure of the AI scorer: the completion call
// failed or timed out, or its output held no parseable JSON.
type AIScoringError struct {
	Lead string
	Err  error
}

func (e *AIScoringError) Error() string {
	if e.Lead == "" {
		return fmt.Sprintf("ai scoring failed: %v", e.Err)
	}
	return fmt.Sprintf("ai scoring failed for lead %q: %v", e.Lead, e.Err)
}

func (e *AIScoringError) Unwrap() error {
	return e.Err
}

func NewAIScoringError(lead string, err error) *AIScoringError {
	return &AIScoringError{Lead: lead, Err: err}
}

// StatusCode picks the HTTP status for err.
func StatusCode(err error) int {
	var (
		validationErr *ValidationError
		parseErr      *ParseError
		aiErr         *AIScoringError
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, ErrNoLeads):
		return http.StatusBadRequest
	case errors.Is(err, ErrNoOffer):
		return http.StatusNotFound
	case errors.As(err, &aiErr):
		return http.StatusBadGateway
	case errors.As(err, &parseErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
