package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	appErrors "memento/internal/errors"
)

const (
	// DefaultBaseURL points at a locally running backend.
	DefaultBaseURL = "http://localhost:5000"
	// DefaultTimeout bounds each request; the dashboard never retries.
	DefaultTimeout = 10 * time.Second
)

// HTTPClient talks JSON over HTTP to the Memento backend. Authenticated
// reads send the bearer token installed via SetToken; the token may be
// swapped at any time (login, session switch) without rebuilding the client.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

// HTTPOption configures an HTTPClient.
type HTTPOption func(*HTTPClient)

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) HTTPOption {
	return func(c *HTTPClient) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithToken installs an initial bearer token.
func WithToken(token string) HTTPOption {
	return func(c *HTTPClient) {
		c.token = token
	}
}

// NewHTTPClient creates a client for the given base URL.
func NewHTTPClient(baseURL string, opts ...HTTPOption) *HTTPClient {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	c := &HTTPClient{
		baseURL:    trimmed,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken implements Client.
func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *HTTPClient) bearerToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// errorEnvelope is the backend's JSON error body.
type errorEnvelope struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return classifyTransportError(method, path, fmt.Errorf("marshal request: %w", err))
		}
		body = bytes.NewReader(data)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return classifyTransportError(method, path, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.bearerToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyTransportError(method, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return classifyTransportError(method, path, err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var envelope errorEnvelope
		_ = json.Unmarshal(data, &envelope)
		return classifyStatusError(method, path, resp.StatusCode, envelope.Error)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return classifyParseError(method, path, err)
	}
	return nil
}

// Login exchanges credentials for a bearer token. A 401 is reported as
// invalid credentials rather than an expired-session failure.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (LoginResult, error) {
	payload := map[string]string{"email": email, "password": password}
	var result LoginResult
	err := c.do(ctx, http.MethodPost, "/api/login", nil, payload, &result)
	if err != nil {
		if appErrors.IsCode(err, appErrors.CodeUnauthorized) {
			return LoginResult{}, appErrors.New(appErrors.CodeInvalidCredentials, "invalid email or password", err)
		}
		return LoginResult{}, err
	}
	return result, nil
}

// Me returns the account record for the installed bearer token.
func (c *HTTPClient) Me(ctx context.Context) (User, error) {
	var user User
	err := c.do(ctx, http.MethodGet, "/api/me", nil, nil, &user)
	return user, err
}

// Conversations lists the most recent conversations. A positive limit is
// passed upstream as a query parameter; the result is not truncated locally.
func (c *HTTPClient) Conversations(ctx context.Context, limit int) ([]Conversation, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var conversations []Conversation
	err := c.do(ctx, http.MethodGet, "/api/conversations", query, nil, &conversations)
	return conversations, err
}

// Conversation returns a single conversation by id.
func (c *HTTPClient) Conversation(ctx context.Context, id string) (Conversation, error) {
	var conversation Conversation
	err := c.do(ctx, http.MethodGet, "/api/conversations/"+url.PathEscape(id), nil, nil, &conversation)
	return conversation, err
}

// People lists known people. The backend takes no limit parameter here;
// display capping is the caller's concern.
func (c *HTTPClient) People(ctx context.Context) ([]Person, error) {
	var people []Person
	err := c.do(ctx, http.MethodGet, "/api/people", nil, nil, &people)
	return people, err
}

// Person returns a single person by id.
func (c *HTTPClient) Person(ctx context.Context, id string) (Person, error) {
	var person Person
	err := c.do(ctx, http.MethodGet, "/api/people/"+url.PathEscape(id), nil, nil, &person)
	return person, err
}
