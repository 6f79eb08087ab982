package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/reorder"
	"github.com/thenoetrevino/dragboard/internal/types"
)

// DefaultTimeout bounds every request made by Client
const DefaultTimeout = 10 * time.Second

// Client talks to the board API over HTTP with a bearer token. Responses are mapped
// back onto the model error categories: 4xx answers become client errors and
// everything else (including network failures) wraps models.ErrTransient.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *slog.Logger
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the client logger
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a client for the API at baseURL (e.g. http://localhost:8080)
func NewClient(baseURL, token string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: DefaultTimeout},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) LoadBoard(ctx context.Context) (*models.Board, error) {
	var b models.Board
	if err := c.do(ctx, http.MethodGet, "/api/board", nil, &b); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", models.ErrBoardNotFound, err)
		}
		return nil, err
	}
	b.Sort()
	return &b, nil
}

func (c *Client) CreateBoard(ctx context.Context, title string) (*models.Board, error) {
	var b models.Board
	if err := c.do(ctx, http.MethodPost, "/api/board", map[string]string{"title": title}, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) UpdateBoard(ctx context.Context, title string) (*models.Board, error) {
	var b models.Board
	if err := c.do(ctx, http.MethodPatch, "/api/board", map[string]string{"title": title}, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) CreateColumn(ctx context.Context, title string) (*models.Column, error) {
	var col models.Column
	if err := c.do(ctx, http.MethodPost, "/api/columns", map[string]string{"title": title}, &col); err != nil {
		return nil, err
	}
	return &col, nil
}

func (c *Client) UpdateColumn(ctx context.Context, id types.ColumnID, title string) (*models.Column, error) {
	var col models.Column
	path := fmt.Sprintf("/api/columns/%d", id)
	if err := c.do(ctx, http.MethodPatch, path, map[string]string{"title": title}, &col); err != nil {
		return nil, err
	}
	return &col, nil
}

func (c *Client) DeleteColumn(ctx context.Context, id types.ColumnID) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/columns/%d", id), nil, nil)
}

func (c *Client) MoveColumn(ctx context.Context, m reorder.ColumnMove) error {
	path := fmt.Sprintf("/api/columns/%d/move", m.ColumnID)
	return c.do(ctx, http.MethodPost, path, map[string]int{"destIndex": m.DestIndex}, nil)
}

func (c *Client) CreateTask(ctx context.Context, columnID types.ColumnID, title, description string) (*models.Task, error) {
	body := map[string]any{"columnId": columnID, "title": title, "description": description}
	var t models.Task
	if err := c.do(ctx, http.MethodPost, "/api/tasks", body, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) UpdateTask(ctx context.Context, id types.TaskID, patch models.TaskPatch) (*models.Task, error) {
	var t models.Task
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/tasks/%d", id), patch, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) DeleteTask(ctx context.Context, id types.TaskID) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", id), nil, nil)
}

func (c *Client) MoveTask(ctx context.Context, m reorder.TaskMove) error {
	return c.do(ctx, http.MethodPost, "/api/tasks/move", m, nil)
}

// do sends one request and decodes a 2xx body into out when out is non-nil
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("api request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return fmt.Errorf("%w: %s %s: %w", models.ErrTransient, method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %w", models.ErrTransient, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(raw, &body); err != nil || body.Error == "" {
		body.Error = strings.TrimSpace(string(raw))
		if body.Error == "" {
			body.Error = http.StatusText(resp.StatusCode)
		}
	}

	var category error
	switch resp.StatusCode {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		category = models.ErrValidation
	case http.StatusUnauthorized:
		category = models.ErrUnauthenticated
	case http.StatusForbidden:
		category = models.ErrUnauthorized
	case http.StatusNotFound:
		category = models.ErrNotFound
	case http.StatusConflict:
		category = models.ErrConflict
	default:
		category = models.ErrTransient
	}
	return fmt.Errorf("%w: %s (HTTP %d)", category, body.Error, resp.StatusCode)
}
