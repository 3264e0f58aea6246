package llm

import (
	"errors"
	"fmt"
)

// Error types for classifying text-completion errors.

// ConfigurationError reports an invalid service configuration, such as an
// unknown provider name. Raised at construction time, never retried.
type ConfigurationError struct {
	msg string
}

func (e *ConfigurationError) Error() string {
	return e.msg
}

// NewConfigurationError creates a configuration error.
func NewConfigurationError(format string, args ...any) error {
	return &ConfigurationError{msg: fmt.Sprintf(format, args...)}
}

// IsConfiguration returns true if the error is a configuration error.
func IsConfiguration(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

// TransientError represents a temporary error that may succeed on retry.
type TransientError struct {
	err error
}

func (e *TransientError) Error() string {
	return e.err.Error()
}

func (e *TransientError) Unwrap() error {
	return e.err
}

// NewTransientError wraps an error as transient (retryable).
func NewTransientError(err error) error {
	return &TransientError{err: err}
}

// FatalError represents a permanent error that should not be retried.
type FatalError struct {
	err error
}

func (e *FatalError) Error() string {
	return e.err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.err
}

// NewFatalError wraps an error as fatal (non-retryable).
func NewFatalError(err error) error {
	return &FatalError{err: err}
}

// TimeoutError reports that the request deadline expired before the
// provider responded.
type TimeoutError struct {
	err error
}

func (e *TimeoutError) Error() string {
	return e.err.Error()
}

func (e *TimeoutError) Unwrap() error {
	return e.err
}

// NewTimeoutError wraps an error as a request timeout.
func NewTimeoutError(err error) error {
	return &TimeoutError{err: err}
}

// IsTransient returns true if the error is transient and should be retried.
func IsTransient(err error) bool {
	var transient *TransientError
	return errors.As(err, &transient)
}

// IsFatal returns true if the error is fatal and should not be retried.
func IsFatal(err error) bool {
	var fatal *FatalError
	return errors.As(err, &fatal)
}

// IsTimeout returns true if the error is a request timeout.
func IsTimeout(err error) bool {
	var timeout *TimeoutError
	return errors.As(err, &timeout)
}
