package udns

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-logr/logr"
)

// DefaultBaseURL is the production UltraDNS REST endpoint.
const DefaultBaseURL = "https://restapi.ultradns.com"

// Client is an UltraDNS REST API client.
//
// A Client holds mutable session and transaction state and is not safe for
// concurrent use; independent Client instances are fully isolated and may
// run concurrently.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        logr.Logger
	userAgent  string
	auth       *authenticator
	tx         transaction
}

// New creates an UltraDNS client for the given credentials. Authentication
// is lazy: the first call logs in.
//
// Example:
//
//	client, err := udns.New("user", "password")
//
//	// Against a test stack
//	client, err := udns.New("user", "password",
//	    udns.WithBaseURL("https://test-restapi.ultradns.com"),
//	)
func New(username, password string, opts ...Option) (*Client, error) {
	config := defaultConfig()
	for _, opt := range opts {
		opt(config)
	}

	if username == "" {
		return nil, fmt.Errorf("udns: username cannot be empty")
	}
	if password == "" {
		return nil, fmt.Errorf("udns: password cannot be empty")
	}
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	httpClient := config.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.timeout}
	}
	baseURL := strings.TrimRight(config.baseURL, "/")

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		log:        config.log,
		userAgent:  config.userAgent,
		auth: &authenticator{
			baseURL:    baseURL,
			username:   username,
			password:   password,
			httpClient: httpClient,
			log:        config.log,
		},
	}, nil
}

// validateConfig validates the client configuration.
func validateConfig(config *clientConfig) error {
	if config.baseURL == "" {
		return fmt.Errorf("base URL cannot be empty")
	}
	if config.timeout < 0 {
		return fmt.Errorf("timeout cannot be negative")
	}
	return nil
}

// call dispatches one API operation. While a transaction is open it guards
// reads and queues writes without touching the network; otherwise it
// performs the HTTP round trip, authenticating lazily on first use.
//
// The returned raw message is nil for 204 responses and for successful
// responses whose body is not JSON.
func (c *Client) call(ctx context.Context, method, uri string, params url.Values, body any) (json.RawMessage, error) {
	if c.tx.active {
		if method == http.MethodGet {
			return nil, ErrReadInTransaction
		}
		if err := c.tx.enqueue(method, uri, body); err != nil {
			return nil, err
		}
		c.log.V(1).Info("operation queued", "method", method, "uri", uri, "pending", len(c.tx.queue))
		return nil, nil
	}

	return c.do(ctx, method, uri, params, body, false)
}

// do performs the HTTP round trip with error decoding and the single
// token-refresh retry. The loop runs at most twice: a persistently expired
// token after one refresh is decoded as an ordinary error.
func (c *Client) do(ctx context.Context, method, uri string, params url.Values, body any, batch bool) (json.RawMessage, error) {
	if !c.auth.isAuthenticated() {
		if err := c.auth.authenticate(ctx); err != nil {
			return nil, err
		}
	}

	refreshed := false
	for {
		statusCode, raw, err := c.roundTrip(ctx, method, uri, params, body)
		if err != nil {
			return nil, err
		}

		if statusCode == http.StatusNoContent {
			return nil, nil
		}

		if statusCode >= http.StatusBadRequest {
			if !refreshed && tokenExpired(statusCode, raw) {
				if err := c.auth.refresh(ctx); err != nil {
					return nil, err
				}
				refreshed = true
				continue
			}
			if batch {
				return nil, decodeBatchError(statusCode, raw)
			}
			return nil, decodeError(statusCode, raw)
		}

		if len(raw) == 0 || !json.Valid(raw) {
			return nil, nil
		}
		return raw, nil
	}
}

// roundTrip builds and executes a single HTTP request. Bodies are omitted
// for GET and DELETE.
func (c *Client) roundTrip(ctx context.Context, method, uri string, params url.Values, body any) (int, []byte, error) {
	var bodyReader io.Reader
	if body != nil && method != http.MethodGet && method != http.MethodDelete {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("udns: marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	target := c.baseURL + uri
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return 0, nil, fmt.Errorf("udns: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.auth.accessToken)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.log.V(1).Info("request", "method", method, "uri", uri)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("udns: %s %s: %w", method, uri, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("udns: read response: %w", err)
	}
	return resp.StatusCode, raw, nil
}

// unmarshalResult decodes a dispatcher result into dst, tolerating the
// nil result of a queued or body-less call.
func unmarshalResult(raw json.RawMessage, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("udns: decode response: %w", err)
	}
	return nil
}
