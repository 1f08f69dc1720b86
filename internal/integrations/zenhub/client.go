// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-08-21
// Last Modified: 2026-08-29

// Package zenhub is a minimal client for the Zenhub REST API. There is no
// official Go SDK, so this wraps the handful of board endpoints decadog
// needs directly over net/http.
package zenhub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// APIError is a non-success response from the Zenhub API.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("zenhub api error [%d]: %s", e.Status, e.Body)
}

// Client makes authenticated requests to the Zenhub API.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	token      string
}

// NewClient creates a Zenhub client for the given API endpoint and token.
func NewClient(rawURL, token string) (*Client, error) {
	if !strings.HasSuffix(rawURL, "/") {
		rawURL += "/"
	}
	base, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Zenhub base url %q: %w", rawURL, err)
	}
	return &Client{
		httpClient: http.DefaultClient,
		baseURL:    base,
		token:      token,
	}, nil
}

// GetFirstWorkspace returns the first Zenhub workspace containing the
// repository. Boards are addressed per workspace.
func (c *Client) GetFirstWorkspace(ctx context.Context, repoID int64) (*Workspace, error) {
	var workspaces []Workspace
	path := fmt.Sprintf("p2/repositories/%d/workspaces", repoID)
	if err := c.do(ctx, http.MethodGet, path, nil, &workspaces); err != nil {
		return nil, err
	}
	if len(workspaces) == 0 {
		return nil, fmt.Errorf("no Zenhub workspace found for repository %d", repoID)
	}
	return &workspaces[0], nil
}

// GetBoard fetches the board pipelines for a workspace/repository pair.
func (c *Client) GetBoard(ctx context.Context, workspaceID string, repoID int64) (*Board, error) {
	var board Board
	path := fmt.Sprintf("p2/workspaces/%s/repositories/%d/board", workspaceID, repoID)
	if err := c.do(ctx, http.MethodGet, path, nil, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

// MoveIssue places an issue at the top of a board pipeline.
func (c *Client) MoveIssue(ctx context.Context, workspaceID string, repoID int64, issueNumber int, pipelineID string) error {
	path := fmt.Sprintf("p2/workspaces/%s/repositories/%d/issues/%d/moves", workspaceID, repoID, issueNumber)
	body := PipelinePosition{PipelineID: pipelineID, Position: "top"}
	return c.do(ctx, http.MethodPost, path, body, nil)
}

// GetIssue fetches Zenhub's metadata (estimate, epic flag) for an issue.
func (c *Client) GetIssue(ctx context.Context, repoID int64, issueNumber int) (*Issue, error) {
	var issue Issue
	path := fmt.Sprintf("p1/repositories/%d/issues/%d", repoID, issueNumber)
	if err := c.do(ctx, http.MethodGet, path, nil, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

// SetEstimate assigns a story-point estimate to an issue.
func (c *Client) SetEstimate(ctx context.Context, repoID int64, issueNumber, estimate int) error {
	path := fmt.Sprintf("p1/repositories/%d/issues/%d/estimate", repoID, issueNumber)
	return c.do(ctx, http.MethodPut, path, setEstimate{Estimate: estimate}, nil)
}

// do sends one authenticated request and decodes the response into out,
// when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	endpoint, err := c.baseURL.Parse(path)
	if err != nil {
		return fmt.Errorf("invalid Zenhub path %q: %w", path, err)
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode Zenhub request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return fmt.Errorf("failed to build Zenhub request: %w", err)
	}
	req.Header.Set("X-Authentication-Token", c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("zenhub request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(detail))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode Zenhub response: %w", err)
	}
	return nil
}
