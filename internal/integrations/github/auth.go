// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-08-20
// Last Modified: 2026-08-24

// Package github wraps the GitHub API for sprint management, scoped to a
// single repository.
package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v60/github"
	"golang.org/x/oauth2"
)

// NewClient creates a GitHub client authenticated with the given token and
// scoped to owner/repo. If token is empty, the client is unauthenticated.
func NewClient(ctx context.Context, token, owner, repo string) *Client {
	var tc *http.Client

	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		tc = oauth2.NewClient(ctx, ts)
	}

	client := github.NewClient(tc)

	return &Client{
		client: client,
		owner:  owner,
		repo:   repo,
	}
}

// WithBaseURL points the client at a non-default API endpoint, e.g. a
// GitHub Enterprise instance or a test server.
func (c *Client) WithBaseURL(raw string) (*Client, error) {
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid GitHub base url %q: %w", raw, err)
	}
	c.client.BaseURL = parsed
	return c, nil
}
