// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-08-20
// Last Modified: 2026-08-29

package github

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-github/v60/github"
)

// Client wraps the GitHub API client, scoped to one repository.
type Client struct {
	client *github.Client
	owner  string
	repo   string
}

// TicketNotFoundError indicates an issue number that does not exist in the
// repository. Callers treat this as a user mistake, not a transport failure.
type TicketNotFoundError struct {
	Number int
}

func (e *TicketNotFoundError) Error() string {
	return fmt.Sprintf("ticket #%d not found", e.Number)
}

// Owner returns the configured repository owner.
func (c *Client) Owner() string { return c.owner }

// Repo returns the configured repository name.
func (c *Client) Repo() string { return c.repo }

// GetRepository fetches the repository record. Zenhub addresses boards by
// the numeric repository id from here.
func (c *Client) GetRepository(ctx context.Context) (*github.Repository, error) {
	repository, _, err := c.client.Repositories.Get(ctx, c.owner, c.repo)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch repository: %w", err)
	}
	return repository, nil
}

// ListMilestones fetches open milestones, most recently due first.
func (c *Client) ListMilestones(ctx context.Context) ([]*github.Milestone, error) {
	opts := &github.MilestoneListOptions{
		State:     "open",
		Sort:      "due_on",
		Direction: "desc",
	}
	milestones, _, err := c.client.Issues.ListMilestones(ctx, c.owner, c.repo, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list milestones: %w", err)
	}
	return milestones, nil
}

// GetIssue fetches an issue by number.
func (c *Client) GetIssue(ctx context.Context, number int) (*github.Issue, error) {
	issue, resp, err := c.client.Issues.Get(ctx, c.owner, c.repo, number)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, &TicketNotFoundError{Number: number}
		}
		return nil, fmt.Errorf("failed to fetch issue #%d: %w", number, err)
	}
	return issue, nil
}

// SetMilestone attaches an issue to a milestone, overwriting any existing
// one. The returned issue reflects the tracker's post-call state and is
// used by callers to verify the assignment took effect.
func (c *Client) SetMilestone(ctx context.Context, issueNumber, milestoneNumber int) (*github.Issue, error) {
	req := &github.IssueRequest{
		Milestone: github.Int(milestoneNumber),
	}
	issue, _, err := c.client.Issues.Edit(ctx, c.owner, c.repo, issueNumber, req)
	if err != nil {
		return nil, fmt.Errorf("failed to set milestone on issue #%d: %w", issueNumber, err)
	}
	return issue, nil
}

// ClearMilestone detaches an issue from its milestone.
func (c *Client) ClearMilestone(ctx context.Context, issueNumber int) (*github.Issue, error) {
	issue, _, err := c.client.Issues.RemoveMilestone(ctx, c.owner, c.repo, issueNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to clear milestone on issue #%d: %w", issueNumber, err)
	}
	return issue, nil
}

// ListCollaborators fetches the users that can be assigned to issues.
func (c *Client) ListCollaborators(ctx context.Context) ([]*github.User, error) {
	opts := &github.ListCollaboratorsOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}
	var all []*github.User
	for {
		users, resp, err := c.client.Repositories.ListCollaborators(ctx, c.owner, c.repo, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list collaborators: %w", err)
		}
		all = append(all, users...)
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return all, nil
}

// AssignUser sets the issue's assignees to the single given login,
// overwriting any existing assignees. Returns the post-call issue for
// verification.
func (c *Client) AssignUser(ctx context.Context, issueNumber int, login string) (*github.Issue, error) {
	req := &github.IssueRequest{
		Assignees: &[]string{login},
	}
	issue, _, err := c.client.Issues.Edit(ctx, c.owner, c.repo, issueNumber, req)
	if err != nil {
		return nil, fmt.Errorf("failed to assign %q to issue #%d: %w", login, issueNumber, err)
	}
	return issue, nil
}
