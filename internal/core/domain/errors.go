package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSendingReplyFailed = errors.New("failed to send reply")
	ErrEmptyCity          = errors.New("empty city")
	ErrNotFound           = errors.New("no matching data in provider response")
)

// FailureKind classifies why a provider call did not produce a payload.
type FailureKind int

const (
	NoFailure FailureKind = iota
	FailureNotFound
	FailureTimeout
	FailureUpstream
	FailureUnexpected
)

func (k FailureKind) String() string {
	switch k {
	case NoFailure:
		return "ok"
	case FailureNotFound:
		return "not_found"
	case FailureTimeout:
		return "timeout"
	case FailureUpstream:
		return "upstream"
	default:
		return "unexpected"
	}
}

// ProviderError is returned by provider adapters. StatusCode is set for upstream failures only.
type ProviderError struct {
	Provider   string
	Kind       FailureKind
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (status %d): %v", e.Provider, e.Kind, e.StatusCode, e.Err)
	}

	return fmt.Sprintf("%s: %s: %v", e.Provider, e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// KindOf reports the failure kind carried by err. Errors that are not a ProviderError count as unexpected.
func KindOf(err error) FailureKind {
	if err == nil {
		return NoFailure
	}

	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return providerErr.Kind
	}

	return FailureUnexpected
}

// Reply is the outcome of a provider lookup, already rendered as user facing text.
type Reply struct {
	Text    string
	Failure FailureKind
}

func (r Reply) Failed() bool {
	return r.Failure != NoFailure
}

// Retryable reports whether another attempt could yield a different result.
func (r Reply) Retryable() bool {
	switch r.Failure {
	case FailureTimeout, FailureUpstream, FailureUnexpected:
		return true
	default:
		return false
	}
}

// StatusCode returns the HTTP status carried by err, or 0 if there is none.
func StatusCode(err error) int {
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return providerErr.StatusCode
	}

	return 0
}
