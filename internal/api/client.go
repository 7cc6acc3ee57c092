// Package api is the HTTP client for the PinGrid backend.
//
// THE BACKEND AS A BLACK BOX:
// The backend is a stateless CRUD passthrough over the four entity tables.
// This package is the only code that talks to it; everything above (stores,
// reorder engine, importer) goes through the Client and never touches
// net/http directly. The contracts are small:
//
//   - fetch-by-parent per level (lazy store population)
//   - create/delete per entity
//   - partial update per entity (also used for reparenting — changing the
//     parent foreign key rides the same endpoint as a rename)
//   - bulk reorder per level: (parent id, ordered child ids) in, full child
//     list with canonical server-assigned positions out
//   - click tracking (fire-and-forget) and the global top-used ranking
//
// ERROR MAPPING:
// Every non-success response carries the conventional {"error","message"}
// body. We extract the message into apperror.ServerRejected so components
// can render it verbatim; a 404 becomes apperror.ErrNotFound. When the body
// isn't parseable we fall back to a generic message rather than leaking the
// raw response to the UI.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/rs/xid"

	"github.com/pingrid/pingrid/internal/apperror"
)

// errorResponse is the backend's standard error body.
type errorResponse struct {
	Error   string `json:"error"`   // machine-readable type ("not_found", ...)
	Message string `json:"message"` // human-readable description
}

// Client talks to the PinGrid backend.
//
// One Client is created at startup and shared; it is safe for concurrent
// use because it holds no mutable state beyond the http.Client's pool.
type Client struct {
	baseURL string
	token   string // bearer token, optional — empty means unauthenticated
	http    *http.Client
	logger  *slog.Logger
}

// New creates a Client for the backend at baseURL.
//
// The http.Client gets a generous timeout rather than none at all: there is
// no per-request cancellation UI, so a hung backend must not pin a goroutine
// forever. Callers who need tighter bounds pass a context.
func New(baseURL, token string, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http: &http.Client{
			Timeout:   30 * time.Second,
			Transport: newLoggingTransport(http.DefaultTransport, logger),
		},
		logger: logger,
	}
}

// do runs one request/response round trip.
//
// body (if non-nil) is JSON-encoded; out (if non-nil) receives the decoded
// response body. Every request carries a correlation id so client and
// backend logs can be joined — xid gives us sortable, URL-safe 20-char ids
// without coordination.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: encoding %s %s body: %w", method, path, err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("api: building %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", xid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return c.decodeError(res, method, path)
	}

	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return fmt.Errorf("api: decoding %s %s response: %w", method, path, err)
		}
	}
	return nil
}

// decodeError turns a non-2xx response into a domain error.
func (c *Client) decodeError(res *http.Response, method, path string) error {
	var body errorResponse
	// Best effort — a failed decode just means we use the fallback message.
	_ = json.NewDecoder(res.Body).Decode(&body)

	if res.StatusCode == http.StatusNotFound {
		if body.Message != "" {
			return &apperror.AppError{Err: apperror.ErrNotFound, Message: body.Message}
		}
		return &apperror.AppError{Err: apperror.ErrNotFound, Message: "resource not found"}
	}

	c.logger.Warn("backend rejected request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", res.StatusCode),
		slog.String("message", body.Message),
	)
	return apperror.ServerRejected(body.Message)
}
