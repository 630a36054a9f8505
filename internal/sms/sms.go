// Package sms exposes a minimal client for an SMS-sending HTTP API:
// validate the message, POST it with a bearer token and hand the raw
// provider response back to the caller.
package sms

import "context"

// Sender is the contract consumed by the service layer.
type Sender interface {
	// Send validates the message and posts it to the provider.
	// A completed round trip always yields a Result, whatever its status code.
	Send(ctx context.Context, recipients []string, from, text string) (*Result, error)
}

// Result is the raw outcome of a completed provider call.
// The body is passed through as-is and never interpreted here.
type Result struct {
	StatusCode int
	Body       string
}
