package core

import (
	"context"
	"errors"
	"fmt"
)

type ErrorCode string

const (
	ErrBadRequest          ErrorCode = "CHIMP_BAD_REQUEST"
	ErrNotFound            ErrorCode = "CHIMP_NOT_FOUND"
	ErrUnsupported         ErrorCode = "CHIMP_UNSUPPORTED_VERSION"
	ErrNoSuchMethod        ErrorCode = "CHIMP_UNKNOWN_METHOD"
	ErrConflict            ErrorCode = "CHIMP_CONFLICT"
	ErrOAuthFailed         ErrorCode = "CHIMP_OAUTH_FAILED"
	ErrUpstream            ErrorCode = "CHIMP_UPSTREAM_ERROR"
	ErrUpstreamUnreachable ErrorCode = "CHIMP_UPSTREAM_UNREACHABLE"
	ErrUpstreamTimeout     ErrorCode = "CHIMP_UPSTREAM_TIMEOUT"
	ErrTooManyRequests     ErrorCode = "CHIMP_RATE_LIMITED"
	ErrInternal            ErrorCode = "CHIMP_INTERNAL"
)

// HTTPStatus returns the HTTP status code for this error code.
func (e ErrorCode) HTTPStatus() int {
	switch e {
	case ErrBadRequest, ErrUnsupported:
		return 400
	case ErrNotFound, ErrNoSuchMethod:
		return 404
	case ErrConflict:
		return 409
	case ErrOAuthFailed:
		return 401
	case ErrTooManyRequests:
		return 429
	case ErrUpstream, ErrUpstreamUnreachable:
		return 502
	case ErrUpstreamTimeout:
		return 504
	default:
		return 500
	}
}

type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAppError(code ErrorCode, msg string) *AppError {
	return &AppError{Code: code, Message: msg}
}

var (
	ErrMissingAPIKey      = errors.New("you have to provide an API key for this to work")
	ErrUnsupportedVersion = errors.New("unsupported API version")
	ErrUnknownMethod      = errors.New("unknown API method")
	ErrNoDatacenter       = errors.New("API key carries no datacenter suffix")
	ErrUnreachable        = errors.New("remote endpoint unreachable")
	ErrBadResponse        = errors.New("undecodable remote response")
	ErrRateLimited        = errors.New("client rate limit would exceed the call deadline")
)

// APIError is an error reported by a remote MailChimp or Mandrill endpoint.
// Code is whatever the remote sent: MailChimp uses negative or small positive
// integers, Mandrill a string name.
type APIError struct {
	Message string `json:"error"`
	Code    any    `json:"code,omitempty"`
	Name    string `json:"name,omitempty"`
	Status  int    `json:"-"`
}

func (e *APIError) Error() string {
	if e.Code == nil || e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s (code %v)", e.Message, e.Code)
}

// NewAPIError mirrors the remote error shape: a message and an optional code.
func NewAPIError(message string, code any) *APIError {
	return &APIError{Message: message, Code: code}
}

// Classify maps an arbitrary error to the AppError the gateway returns.
func Classify(err error) *AppError {
	var app *AppError
	if errors.As(err, &app) {
		return app
	}
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		return NewAppError(ErrUpstream, apiErr.Error())
	case errors.Is(err, ErrRateLimited):
		return NewAppError(ErrTooManyRequests, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return NewAppError(ErrUpstreamTimeout, err.Error())
	case errors.Is(err, ErrUnreachable):
		return NewAppError(ErrUpstreamUnreachable, err.Error())
	case errors.Is(err, ErrBadResponse):
		return NewAppError(ErrUpstream, err.Error())
	case errors.Is(err, ErrMissingAPIKey), errors.Is(err, ErrNoDatacenter):
		return NewAppError(ErrBadRequest, err.Error())
	case errors.Is(err, ErrUnsupportedVersion):
		return NewAppError(ErrUnsupported, err.Error())
	case errors.Is(err, ErrUnknownMethod):
		return NewAppError(ErrNoSuchMethod, err.Error())
	}
	return NewAppError(ErrInternal, err.Error())
}
