// Package solver talks to the external cube-solving service.
package solver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// DefaultURL is where a locally running solving service listens.
const DefaultURL = "http://127.0.0.1:5000/solve"

// Solver returns a move sequence that solves a facelet string.
type Solver interface {
	GetSolution(ctx context.Context, facelets string) (string, error)
}

// Client implements Solver over JSON/HTTP.
type Client struct {
	httpClient *http.Client
	url        string
	logger     *slog.Logger
}

// NewClient creates a solver client posting to url.
func NewClient(httpClient *http.Client, url string, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if url == "" {
		url = DefaultURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: httpClient,
		url:        url,
		logger:     logger,
	}
}

type solveRequest struct {
	State string `json:"state"`
}

// solveResponse keeps Solution untyped so that a non-string value can be
// told apart from a missing one.
type solveResponse struct {
	Solution any `json:"solution"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// URL returns the endpoint the client posts to.
func (c *Client) URL() string {
	return c.url
}

// GetSolution sends facelets to the solver and returns its move sequence.
//
// Errors are one of: ErrUnreachable when the request never got a response,
// *ServerError for a non-success status, ErrInvalidFormat when the body has
// no string solution.
func (c *Client) GetSolution(ctx context.Context, facelets string) (string, error) {
	body, err := json.Marshal(solveRequest{State: facelets})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "solver unreachable", "url", c.url, "error", err)
		return "", &unreachableError{cause: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.WarnContext(ctx, "solver response unreadable", "status", resp.StatusCode, "error", err)
		return "", &unreachableError{cause: err}
	}

	c.logger.DebugContext(ctx, "solver responded",
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"bytes", len(respBody),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", serverError(resp.StatusCode, respBody)
	}

	var out solveResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		c.logger.WarnContext(ctx, "solver response is not JSON", "error", err)
		return "", ErrInvalidFormat
	}

	solution, ok := out.Solution.(string)
	if !ok || solution == "" {
		return "", ErrInvalidFormat
	}

	return solution, nil
}

func serverError(status int, body []byte) *ServerError {
	var er errorResponse
	if err := json.Unmarshal(body, &er); err != nil {
		return &ServerError{Status: status, Message: msgServerError}
	}
	if er.Message == "" {
		return &ServerError{Status: status, Message: statusMessage(status)}
	}
	return &ServerError{Status: status, Message: er.Message}
}
