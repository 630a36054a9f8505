package sms

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/oggyb/sms-dispatch/internal/request"
)

// Doer is the HTTP transport the client posts through. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Option customises a Client at construction time.
type Option func(*options)

type options struct {
	verifyTLS  bool
	timeout    time.Duration
	httpClient Doer
}

// WithVerifyTLS toggles certificate and hostname verification.
// Disabling it is meant for self-signed or test endpoints only.
func WithVerifyTLS(verify bool) Option {
	return func(o *options) { o.verifyTLS = verify }
}

// WithTimeout sets the timeout of the default HTTP transport.
// It has no effect when WithHTTPClient is used.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithHTTPClient injects the transport used for every request.
func WithHTTPClient(c Doer) Option {
	return func(o *options) { o.httpClient = c }
}

var _ Sender = (*Client)(nil)

// Client sends SMS messages to a single provider endpoint.
// All fields are set once in New; a Client is safe for concurrent use.
type Client struct {
	apiToken   string
	apiURL     string
	verifyTLS  bool
	httpClient Doer
}

// New creates a Client for the given bearer token and endpoint.
func New(apiToken, apiURL string, opts ...Option) (*Client, error) {
	if apiToken == "" || apiURL == "" {
		return nil, &ConfigError{Msg: "credential or endpoint missing"}
	}

	o := options{verifyTLS: true}
	for _, opt := range opts {
		opt(&o)
	}

	hc := o.httpClient
	if hc == nil {
		hc = newHTTPClient(o.verifyTLS, o.timeout)
	}

	return &Client{
		apiToken:   apiToken,
		apiURL:     apiURL,
		verifyTLS:  o.verifyTLS,
		httpClient: hc,
	}, nil
}

func newHTTPClient(verifyTLS bool, timeout time.Duration) *http.Client {
	tr := http.DefaultTransport.(*http.Transport).Clone()
	if !verifyTLS {
		tr.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in for test endpoints
	}
	return &http.Client{
		Transport: tr,
		Timeout:   timeout,
	}
}

// SendTo is Send for a single recipient. An empty recipient counts as none.
func (c *Client) SendTo(ctx context.Context, recipient, from, text string) (*Result, error) {
	var recipients []string
	if recipient != "" {
		recipients = []string{recipient}
	}
	return c.Send(ctx, recipients, from, text)
}

// Send validates the message, posts it to the provider and returns the raw
// status code and body. Non-2xx responses are returned as a Result, not an error.
func (c *Client) Send(ctx context.Context, recipients []string, from, text string) (*Result, error) {
	if err := validate(recipients, from, text); err != nil {
		return nil, err
	}

	body, err := json.Marshal(request.NewProviderRequest(recipients, from, text))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sms payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to create request: %w", err)}
	}

	req.Header.Set("Accept", "application/json, text/plain")
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Content-Type", "application/json")
	// An empty value stops net/http from adding its default User-Agent.
	req.Header.Set("User-Agent", "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to read response: %w", err)}
	}

	return &Result{
		StatusCode: resp.StatusCode,
		Body:       string(raw),
	}, nil
}
