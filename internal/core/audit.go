package core

import (
	"context"
	"errors"
	"time"
)

// CallOutcome is the audit label of a remote call.
type CallOutcome string

const (
	OutcomeOK          CallOutcome = "ok"
	OutcomeAPIError    CallOutcome = "api_error"
	OutcomeUnreachable CallOutcome = "unreachable"
	OutcomeBadResponse CallOutcome = "bad_response"
	OutcomeRateLimited CallOutcome = "rate_limited"
	OutcomeRejected    CallOutcome = "rejected"
)

// OutcomeOf labels the result of a remote call. Errors raised before any
// request went out count as rejected.
func OutcomeOf(err error) CallOutcome {
	var apiErr *APIError
	switch {
	case err == nil:
		return OutcomeOK
	case errors.As(err, &apiErr):
		return OutcomeAPIError
	case errors.Is(err, ErrRateLimited):
		return OutcomeRateLimited
	case errors.Is(err, ErrUnreachable), errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return OutcomeUnreachable
	case errors.Is(err, ErrBadResponse):
		return OutcomeBadResponse
	}
	return OutcomeRejected
}

type AuditEvent struct {
	EventID     int64         `json:"event_id"`
	Ts          time.Time     `json:"ts"`
	API         string        `json:"api"`
	Version     string        `json:"version"`
	Method      string        `json:"method"`
	AccountID   *string       `json:"account_id,omitempty"`
	RequestID   *string       `json:"request_id,omitempty"`
	RequestHash string        `json:"request_hash"`
	Outcome     CallOutcome   `json:"outcome"`
	Duration    time.Duration `json:"duration"`
}
