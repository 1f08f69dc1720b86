// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-08-22
// Last Modified: 2026-08-31

// Package sprint drives the interactive sprint-start workflow: select a
// milestone, loop over ticket numbers, attach each to the milestone, move
// it onto the board, and assign a collaborator.
//
// The tracker, board and terminal are injected as capabilities so the
// state machine can be exercised with scripted fakes.
package sprint

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/go-github/v60/github"

	ghclient "github.com/similigh/decadog/internal/integrations/github"
)

// Tracker is the issue-tracker capability the session needs. Mutating
// calls return the tracker's post-call state, used for verification.
type Tracker interface {
	ListMilestones(ctx context.Context) ([]*github.Milestone, error)
	GetIssue(ctx context.Context, number int) (*github.Issue, error)
	SetMilestone(ctx context.Context, issueNumber, milestoneNumber int) (*github.Issue, error)
	ListCollaborators(ctx context.Context) ([]*github.User, error)
	AssignUser(ctx context.Context, issueNumber int, login string) (*github.Issue, error)
}

// Pipeline is a board column, as the session sees it.
type Pipeline struct {
	ID           string
	Name         string
	IssueNumbers []int
}

// Board is the optional Zenhub-board capability. Sessions without a board
// skip all pipeline steps.
type Board interface {
	ListPipelines(ctx context.Context) ([]Pipeline, error)
	MoveIssue(ctx context.Context, issueNumber int, pipelineID string) error
}

// Surface is the interactive-terminal capability. All prompts block until
// the user answers.
type Surface interface {
	// ChooseOne presents options and returns the chosen index.
	ChooseOne(prompt string, options []string) (int, error)
	// PromptText asks for a free-text line. Empty input is a valid answer.
	PromptText(prompt string) (string, error)
	// Confirm asks a yes/no question.
	Confirm(prompt string) (bool, error)
	// Say reports progress and non-fatal problems to the user.
	Say(format string, args ...interface{})
}

// MatchFunc narrows candidates against a typed pattern, returning the
// indices of matches, best first. It must be deterministic for a given
// input. An empty pattern matches everything in the original order.
type MatchFunc func(pattern string, candidates []string) []int

// matchAll is the fallback matcher: every candidate, unranked.
func matchAll(pattern string, candidates []string) []int {
	indices := make([]int, len(candidates))
	for i := range candidates {
		indices[i] = i
	}
	return indices
}

// Session runs the sprint-start workflow over the injected capabilities.
type Session struct {
	tracker Tracker
	surface Surface
	board   Board
	match   MatchFunc
}

// Option configures a Session.
type Option func(*Session)

// WithBoard enables the pipeline steps of the workflow.
func WithBoard(board Board) Option {
	return func(s *Session) { s.board = board }
}

// WithMatcher sets the fuzzy matcher used for assignee narrowing.
func WithMatcher(match MatchFunc) Option {
	return func(s *Session) { s.match = match }
}

// New creates a session. The tracker and surface are required.
func New(tracker Tracker, surface Surface, opts ...Option) *Session {
	s := &Session{
		tracker: tracker,
		surface: surface,
		match:   matchAll,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// loopStatus is the outcome of one ticket-loop pass.
type loopStatus int

const (
	loopDone loopStatus = iota
	loopNextPipeline
)

// Run executes the workflow until the user ends the ticket loop.
// Tracker and board transport errors are fatal; per-ticket problems
// (unknown number, verification mismatch) are reported and looped past.
func (s *Session) Run(ctx context.Context) error {
	milestones, err := s.tracker.ListMilestones(ctx)
	if err != nil {
		return fmt.Errorf("failed to list milestones: %w", err)
	}
	if len(milestones) == 0 {
		return ErrNoMilestones
	}

	titles := make([]string, len(milestones))
	for i, milestone := range milestones {
		titles[i] = milestone.GetTitle()
	}
	choice, err := s.surface.ChooseOne("Select milestone", titles)
	if err != nil {
		return fmt.Errorf("milestone selection failed: %w", err)
	}
	milestone := milestones[choice]

	if s.board == nil {
		_, err := s.manageTickets(ctx, milestone, nil)
		return err
	}

	for {
		pipelines, err := s.board.ListPipelines(ctx)
		if err != nil {
			return fmt.Errorf("failed to list board pipelines: %w", err)
		}
		names := make([]string, len(pipelines))
		for i, pipeline := range pipelines {
			names[i] = pipeline.Name
		}
		choice, err := s.surface.ChooseOne("Select pipeline", names)
		if err != nil {
			return fmt.Errorf("pipeline selection failed: %w", err)
		}

		status, err := s.manageTickets(ctx, milestone, &pipelines[choice])
		if err != nil {
			return err
		}
		if status == loopDone {
			return nil
		}
	}
}

// manageTickets runs the ticket prompt loop for one milestone (and
// optionally one pipeline). Empty input or "q" ends the session; "n"
// moves to the next pipeline when a board is attached.
func (s *Session) manageTickets(ctx context.Context, milestone *github.Milestone, pipeline *Pipeline) (loopStatus, error) {
	prompt := "Ticket number (empty: done)"
	if pipeline != nil {
		prompt = "Ticket number (empty: done, n: next pipeline)"
	}

	for {
		input, err := s.surface.PromptText(prompt)
		if err != nil {
			return loopDone, fmt.Errorf("ticket prompt failed: %w", err)
		}
		input = strings.TrimSpace(input)

		if input == "" || input == "q" {
			return loopDone, nil
		}
		if input == "n" && pipeline != nil {
			return loopNextPipeline, nil
		}

		number, err := strconv.Atoi(input)
		if err != nil {
			s.surface.Say("Invalid ticket number %q.", input)
			continue
		}

		if err := s.manageTicket(ctx, milestone, pipeline, number); err != nil {
			if isFatal(err) {
				return loopDone, err
			}
			s.surface.Say("%v", err)
		}
	}
}

// manageTicket walks a single ticket through milestone attachment,
// pipeline placement and assignee selection.
func (s *Session) manageTicket(ctx context.Context, milestone *github.Milestone, pipeline *Pipeline, number int) error {
	issue, err := s.tracker.GetIssue(ctx, number)
	if err != nil {
		return err
	}
	s.surface.Say("%d: %s", issue.GetNumber(), issue.GetTitle())
	if issue.GetHTMLURL() != "" {
		s.surface.Say("%s", issue.GetHTMLURL())
	}

	if issueInMilestone(issue, milestone) {
		s.surface.Say("Already in milestone.")
	} else {
		confirmed, err := s.surface.Confirm("Assign to milestone?")
		if err != nil {
			return fmt.Errorf("confirmation failed: %w", err)
		}
		if !confirmed {
			return nil
		}
		updated, err := s.tracker.SetMilestone(ctx, number, milestone.GetNumber())
		if err != nil {
			return err
		}
		if !issueInMilestone(updated, milestone) {
			// Report and keep going; the maintainer can retry the ticket.
			s.surface.Say("%v", &VerificationError{
				Action: "milestone assignment",
				Detail: fmt.Sprintf("ticket #%d does not show milestone %q after update", number, milestone.GetTitle()),
			})
			return nil
		}
	}

	if pipeline != nil {
		if issueInPipeline(pipeline, number) {
			s.surface.Say("Already in pipeline.")
		} else if err := s.board.MoveIssue(ctx, number, pipeline.ID); err != nil {
			return fmt.Errorf("failed to move ticket #%d to pipeline %q: %w", number, pipeline.Name, err)
		}
	}

	return s.manageAssignment(ctx, issue)
}

// manageAssignment confirms or updates the ticket's assignee. The default
// flows from the current state: an unassigned ticket leans towards
// assignment, an assigned one towards keeping its assignees.
func (s *Session) manageAssignment(ctx context.Context, issue *github.Issue) error {
	var wantUpdate bool
	if len(issue.Assignees) == 0 {
		keep, err := s.surface.Confirm("Leave unassigned?")
		if err != nil {
			return fmt.Errorf("confirmation failed: %w", err)
		}
		wantUpdate = !keep
	} else {
		correct, err := s.surface.Confirm(fmt.Sprintf(
			"Assigned to %s; is this correct?",
			strings.Join(assigneeLogins(issue), ", "),
		))
		if err != nil {
			return fmt.Errorf("confirmation failed: %w", err)
		}
		wantUpdate = !correct
	}
	if !wantUpdate {
		return nil
	}

	collaborators, err := s.tracker.ListCollaborators(ctx)
	if err != nil {
		return err
	}
	if len(collaborators) == 0 {
		s.surface.Say("No collaborators available.")
		return nil
	}
	logins := make([]string, len(collaborators))
	for i, user := range collaborators {
		logins[i] = user.GetLogin()
	}

	pattern, err := s.surface.PromptText("Assignee")
	if err != nil {
		return fmt.Errorf("assignee prompt failed: %w", err)
	}
	matches := s.match(strings.TrimSpace(pattern), logins)
	if len(matches) == 0 {
		s.surface.Say("No collaborators match %q.", pattern)
		return nil
	}

	candidates := make([]string, len(matches))
	for i, index := range matches {
		candidates[i] = logins[index]
	}
	choice, err := s.surface.ChooseOne("Select assignee", candidates)
	if err != nil {
		return fmt.Errorf("assignee selection failed: %w", err)
	}
	login := candidates[choice]

	if userAssigned(issue, login) {
		s.surface.Say("Already assigned.")
		return nil
	}

	updated, err := s.tracker.AssignUser(ctx, issue.GetNumber(), login)
	if err != nil {
		return err
	}
	if !userAssigned(updated, login) {
		s.surface.Say("%v", &VerificationError{
			Action: "user assignment",
			Detail: fmt.Sprintf("ticket #%d does not show assignee %q after update", issue.GetNumber(), login),
		})
	}
	return nil
}

// isFatal classifies a per-ticket error. Unknown ticket numbers and
// verification mismatches are the maintainer's to retry; everything else
// is a tracker/transport failure that ends the session.
func isFatal(err error) bool {
	var notFound *ghclient.TicketNotFoundError
	if errors.As(err, &notFound) {
		return false
	}
	var verification *VerificationError
	return !errors.As(err, &verification)
}
