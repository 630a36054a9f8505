package sms

import "errors"

var (
	// ErrConfig matches every *ConfigError via errors.Is.
	ErrConfig = errors.New("sms: configuration error")
	// ErrValidation matches every *ValidationError via errors.Is.
	ErrValidation = errors.New("sms: validation error")
	// ErrTransport matches every *TransportError via errors.Is.
	ErrTransport = errors.New("sms: transport error")
)

// ConfigError is returned by New when the token or endpoint is missing.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return e.Msg }

func (e *ConfigError) Is(target error) bool { return target == ErrConfig }

// ValidationError is returned when recipients, sender or text are rejected.
// It is always returned before any network I/O happens.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// TransportError wraps a failure to complete the HTTP round trip.
// A response with a non-2xx status is not a TransportError.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "sms request failed: " + e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }
