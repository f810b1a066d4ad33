package http

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/fivetwenty-io/nbapi/internal/constants"
	"github.com/fivetwenty-io/nbapi/pkg/nationbuilder"
)

// Request describes one call against the NationBuilder API.
type Request struct {
	Method string
	// Path is resolved against the base URL. Absolute URLs are used as is.
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
	// Action is a human-readable description used in logs and errors.
	Action string
}

// Response is the status, headers and body of one call.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	// URL is the fully resolved request URL.
	URL string
}

// Client owns the authorized session for one nation and classifies responses.
type Client struct {
	baseURL       string
	accessToken   string
	userAgent     string
	verifyTLS     bool
	timeout       time.Duration
	baseTransport http.RoundTripper
	logger        nationbuilder.Logger
	debug         bool

	sessionOnce sync.Once
	session     *http.Client
	newSession  func() *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for request tracing and error diagnostics.
func WithLogger(logger nationbuilder.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTLSVerification turns certificate validation on or off. It is off by default.
func WithTLSVerification(verify bool) Option {
	return func(c *Client) {
		c.verifyTLS = verify
	}
}

// WithHTTPTimeout sets the session timeout. Zero keeps the transport defaults.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithBaseTransport replaces the transport underneath the bearer token layer.
// The TLS setting is ignored when a base transport is given.
func WithBaseTransport(transport http.RoundTripper) Option {
	return func(c *Client) {
		c.baseTransport = transport
	}
}

// NewClient creates a client for baseURL. The session is not created until the first
// call. An empty access token fails here, before any network activity.
func NewClient(baseURL, accessToken string, opts ...Option) (*Client, error) {
	if accessToken == "" {
		return nil, nationbuilder.ErrAccessTokenRequired
	}

	client := &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		accessToken: accessToken,
		userAgent:   constants.UserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.logger == nil {
		client.logger = nationbuilder.DefaultLogger(client.debug)
	}

	client.newSession = client.buildSession

	return client, nil
}

// BaseURL returns the API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// EnsureAuthorized creates the session on first use. Later calls are no-ops.
// It panics when the client has no access token, which only happens when the
// Client was not built with NewClient.
func (c *Client) EnsureAuthorized() {
	if c.accessToken == "" {
		panic(nationbuilder.ErrAccessTokenRequired)
	}

	c.sessionOnce.Do(func() {
		c.session = c.newSession()
	})
}

// Session returns the authorized HTTP client, creating it if needed.
func (c *Client) Session() *http.Client {
	c.EnsureAuthorized()

	return c.session
}

func (c *Client) buildSession() *http.Client {
	base := c.baseTransport
	if base == nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = &tls.Config{
			MinVersion:         tls.VersionTLS12,
			InsecureSkipVerify: !c.verifyTLS, // #nosec G402 -- NationBuilder certificate chains are unreliable, WithTLSVerification(true) restores validation
		}
		base = transport
	}

	source := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: c.accessToken,
		TokenType:   "Bearer",
	})

	c.logger.Debug("Session created", map[string]interface{}{
		"base_url":   c.baseURL,
		"verify_tls": c.verifyTLS,
	})

	return &http.Client{
		Transport: &oauth2.Transport{Source: source, Base: base},
		Timeout:   c.timeout,
	}
}

// Do sends req through the session and checks the response. When the status is not
// a success the response is returned together with the classified error.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	resp, err := c.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	err = c.CheckResponse(resp, req.Action, resp.URL)
	if err != nil {
		return resp, err
	}

	return resp, nil
}

// Send issues req through the session without classifying the status. Callers that
// need to inspect a failure before it is classified pass the result to CheckResponse.
func (c *Client) Send(ctx context.Context, req *Request) (*Response, error) {
	fullURL, err := c.resolveURL(req.Path, req.Query)
	if err != nil {
		return nil, err
	}

	body, err := encodeBody(req.Body)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Content-Type", constants.ContentTypeJSON)
	httpReq.Header.Set("Accept", constants.ContentTypeJSON)
	httpReq.Header.Set("User-Agent", c.userAgent)

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.Session().Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.debug {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         fullURL,
			"status_code": httpResp.StatusCode,
		})
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       data,
		URL:        fullURL,
	}, nil
}

// CheckResponse returns nil for statuses 200-299 and a classified
// *nationbuilder.ResponseError otherwise. action and url are only used for diagnostics.
func (c *Client) CheckResponse(resp *Response, action, url string) error {
	if resp == nil {
		return c.raiseError(action, &Response{}, url)
	}

	if resp.StatusCode < constants.StatusSuccessMin || resp.StatusCode > constants.StatusSuccessMax {
		return c.raiseError(action, resp, url)
	}

	c.logger.Debug("Request successful", map[string]interface{}{
		"target": describeTarget(url, action),
	})

	return nil
}

// raiseError builds the classified error and reports the response to the operator.
func (c *Client) raiseError(action string, resp *Response, url string) error {
	respErr := nationbuilder.NewResponseError(action, resp.StatusCode, resp.Headers, resp.Body, url)

	c.logger.Error("API response error", map[string]interface{}{
		"kind":        respErr.Kind.String(),
		"status_code": resp.StatusCode,
		"url":         url,
		"headers":     resp.Headers,
		"body":        string(resp.Body),
	})

	return respErr
}

func describeTarget(url, action string) string {
	if url != "" {
		return url
	}

	if action != "" {
		return action
	}

	return constants.UnknownTarget
}

func (c *Client) resolveURL(path string, query url.Values) (string, error) {
	target := path
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		if path != "" && !strings.HasPrefix(path, "/") {
			path = "/" + path
		}

		target = c.baseURL + path
	}

	if len(query) == 0 {
		return target, nil
	}

	parsed, err := url.Parse(target)
	if err != nil {
		return "", fmt.Errorf("parsing request URL: %w", err)
	}

	values := parsed.Query()

	for key, list := range query {
		for _, value := range list {
			values.Add(key, value)
		}
	}

	parsed.RawQuery = values.Encode()

	return parsed.String(), nil
}

func encodeBody(body interface{}) (io.Reader, error) {
	switch typed := body.(type) {
	case nil:
		return nil, nil
	case string:
		return strings.NewReader(typed), nil
	case []byte:
		return bytes.NewReader(typed), nil
	default:
		data, err := json.Marshal(typed)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		return bytes.NewReader(data), nil
	}
}
