// Package server provides the HTTP REST API for the resume matcher.
package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-matcher/internal/document"
	"github.com/jonathan/resume-matcher/internal/fetch"
	"github.com/jonathan/resume-matcher/internal/matcher"
)

// ErrNotFound indicates a requested analysis does not exist.
type ErrNotFound struct{}

func (e *ErrNotFound) Error() string {
	return "analysis not found"
}

// ErrUnauthorized indicates a missing or invalid bearer token.
type ErrUnauthorized struct{}

func (e *ErrUnauthorized) Error() string {
	return "missing or invalid token"
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var (
		inputErr       *matcher.InputError
		unsupportedErr *document.UnsupportedTypeError
		extractionErr  *document.ExtractionError
		fetchErr       *fetch.Error
	)
	switch {
	case errors.As(err, &inputErr), errors.As(err, &unsupportedErr), errors.As(err, &extractionErr):
		return http.StatusBadRequest
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	default:
		switch err.(type) {
		case *ErrNotFound:
			return http.StatusNotFound
		case *ErrUnauthorized:
			return http.StatusUnauthorized
		default:
			return http.StatusInternalServerError
		}
	}
}
