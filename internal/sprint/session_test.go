// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-08-22
// Last Modified: 2026-08-31

package sprint

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-github/v60/github"

	ghclient "github.com/similigh/decadog/internal/integrations/github"
)

// fakeTracker is a scripted Tracker that records mutating calls.
type fakeTracker struct {
	milestones []*github.Milestone
	issues     map[int]*github.Issue
	users      []*github.User

	// setMilestoneResult overrides the default "echo the change" response,
	// to simulate a tracker that did not apply the update.
	setMilestoneResult *github.Issue
	// assignUserResult likewise for assignments.
	assignUserResult *github.Issue
	// failSetMilestone simulates a transport failure.
	failSetMilestone error

	setMilestoneCalls []int
	assignUserCalls   []string
	getIssueCalls     []int
}

func (f *fakeTracker) ListMilestones(ctx context.Context) ([]*github.Milestone, error) {
	return f.milestones, nil
}

func (f *fakeTracker) GetIssue(ctx context.Context, number int) (*github.Issue, error) {
	f.getIssueCalls = append(f.getIssueCalls, number)
	issue, ok := f.issues[number]
	if !ok {
		return nil, &ghclient.TicketNotFoundError{Number: number}
	}
	return issue, nil
}

func (f *fakeTracker) SetMilestone(ctx context.Context, issueNumber, milestoneNumber int) (*github.Issue, error) {
	f.setMilestoneCalls = append(f.setMilestoneCalls, issueNumber)
	if f.failSetMilestone != nil {
		return nil, f.failSetMilestone
	}
	if f.setMilestoneResult != nil {
		return f.setMilestoneResult, nil
	}
	return &github.Issue{
		Number:    github.Int(issueNumber),
		Milestone: &github.Milestone{Number: github.Int(milestoneNumber)},
	}, nil
}

func (f *fakeTracker) ListCollaborators(ctx context.Context) ([]*github.User, error) {
	return f.users, nil
}

func (f *fakeTracker) AssignUser(ctx context.Context, issueNumber int, login string) (*github.Issue, error) {
	f.assignUserCalls = append(f.assignUserCalls, login)
	if f.assignUserResult != nil {
		return f.assignUserResult, nil
	}
	return &github.Issue{
		Number:    github.Int(issueNumber),
		Assignees: []*github.User{{Login: github.String(login)}},
	}, nil
}

// scriptSurface answers prompts from pre-loaded queues.
type scriptSurface struct {
	t        *testing.T
	choices  []int
	texts    []string
	confirms []bool
	said     []string
}

func (s *scriptSurface) ChooseOne(prompt string, options []string) (int, error) {
	if len(s.choices) == 0 {
		s.t.Fatalf("Unexpected ChooseOne(%q)", prompt)
	}
	choice := s.choices[0]
	s.choices = s.choices[1:]
	return choice, nil
}

func (s *scriptSurface) PromptText(prompt string) (string, error) {
	if len(s.texts) == 0 {
		s.t.Fatalf("Unexpected PromptText(%q)", prompt)
	}
	text := s.texts[0]
	s.texts = s.texts[1:]
	return text, nil
}

func (s *scriptSurface) Confirm(prompt string) (bool, error) {
	if len(s.confirms) == 0 {
		s.t.Fatalf("Unexpected Confirm(%q)", prompt)
	}
	answer := s.confirms[0]
	s.confirms = s.confirms[1:]
	return answer, nil
}

func (s *scriptSurface) Say(format string, args ...interface{}) {
	s.said = append(s.said, fmt.Sprintf(format, args...))
}

func (s *scriptSurface) saidContaining(substr string) bool {
	for _, line := range s.said {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

// substringMatch is a deterministic stand-in for the fuzzy matcher.
func substringMatch(pattern string, candidates []string) []int {
	var matches []int
	for i, candidate := range candidates {
		if strings.Contains(candidate, pattern) {
			matches = append(matches, i)
		}
	}
	return matches
}

func sprintMilestone() *github.Milestone {
	return &github.Milestone{Number: github.Int(7), Title: github.String("Sprint 7")}
}

func openIssue(number int) *github.Issue {
	return &github.Issue{
		Number: github.Int(number),
		Title:  github.String("Mock Title"),
		State:  github.String("open"),
	}
}

func TestRunNoMilestones(t *testing.T) {
	tracker := &fakeTracker{}
	surface := &scriptSurface{t: t}

	err := New(tracker, surface).Run(context.Background())
	if !errors.Is(err, ErrNoMilestones) {
		t.Fatalf("Expected ErrNoMilestones, got %v", err)
	}
}

func TestRunEmptyInputEndsSession(t *testing.T) {
	tracker := &fakeTracker{milestones: []*github.Milestone{sprintMilestone()}}
	surface := &scriptSurface{
		t:       t,
		choices: []int{0},
		texts:   []string{""},
	}

	if err := New(tracker, surface).Run(context.Background()); err != nil {
		t.Fatalf("Expected clean exit, got %v", err)
	}
	if len(tracker.getIssueCalls) != 0 {
		t.Errorf("Expected no tracker calls after empty input, got %v", tracker.getIssueCalls)
	}
}

func TestRunAssignsMilestone(t *testing.T) {
	tracker := &fakeTracker{
		milestones: []*github.Milestone{sprintMilestone()},
		issues:     map[int]*github.Issue{42: openIssue(42)},
	}
	surface := &scriptSurface{
		t:        t,
		choices:  []int{0},
		texts:    []string{"42", ""},
		confirms: []bool{true, true}, // assign to milestone; leave unassigned
	}

	if err := New(tracker, surface).Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(tracker.setMilestoneCalls) != 1 || tracker.setMilestoneCalls[0] != 42 {
		t.Errorf("Expected one SetMilestone call for #42, got %v", tracker.setMilestoneCalls)
	}
	if !surface.saidContaining("Mock Title") {
		t.Error("Expected the ticket description to be shown")
	}
}

func TestRunDecliningMilestoneSkipsTicket(t *testing.T) {
	tracker := &fakeTracker{
		milestones: []*github.Milestone{sprintMilestone()},
		issues:     map[int]*github.Issue{42: openIssue(42)},
	}
	surface := &scriptSurface{
		t:        t,
		choices:  []int{0},
		texts:    []string{"42", ""},
		confirms: []bool{false}, // decline milestone; assignment is not reached
	}

	if err := New(tracker, surface).Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(tracker.setMilestoneCalls) != 0 {
		t.Errorf("Expected no SetMilestone calls, got %v", tracker.setMilestoneCalls)
	}
}

func TestRunVerificationFailureIsReportedNotFatal(t *testing.T) {
	tracker := &fakeTracker{
		milestones: []*github.Milestone{sprintMilestone()},
		issues:     map[int]*github.Issue{42: openIssue(42)},
		// The tracker "succeeds" but the returned issue has no milestone.
		setMilestoneResult: openIssue(42),
	}
	surface := &scriptSurface{
		t:        t,
		choices:  []int{0},
		texts:    []string{"42", ""},
		confirms: []bool{true},
	}

	if err := New(tracker, surface).Run(context.Background()); err != nil {
		t.Fatalf("Expected session to survive verification failure, got %v", err)
	}
	if !surface.saidContaining("verification failed") {
		t.Errorf("Expected a verification failure report, said: %v", surface.said)
	}
}

func TestRunTicketNotFoundLoops(t *testing.T) {
	tracker := &fakeTracker{
		milestones: []*github.Milestone{sprintMilestone()},
		issues:     map[int]*github.Issue{},
	}
	surface := &scriptSurface{
		t:       t,
		choices: []int{0},
		texts:   []string{"999", "not-a-number", ""},
	}

	if err := New(tracker, surface).Run(context.Background()); err != nil {
		t.Fatalf("Expected session to survive unknown tickets, got %v", err)
	}
	if !surface.saidContaining("not found") {
		t.Errorf("Expected a not-found report, said: %v", surface.said)
	}
	if !surface.saidContaining("Invalid ticket number") {
		t.Errorf("Expected an invalid-number report, said: %v", surface.said)
	}
}

func TestRunTrackerErrorIsFatal(t *testing.T) {
	tracker := &fakeTracker{
		milestones:       []*github.Milestone{sprintMilestone()},
		issues:           map[int]*github.Issue{42: openIssue(42)},
		failSetMilestone: errors.New("502 bad gateway"),
	}
	surface := &scriptSurface{
		t:        t,
		choices:  []int{0},
		texts:    []string{"42"},
		confirms: []bool{true},
	}

	err := New(tracker, surface).Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "502") {
		t.Fatalf("Expected fatal tracker error, got %v", err)
	}
}

func TestRunAssignsUserWithFuzzyNarrowing(t *testing.T) {
	issue := openIssue(42)
	issue.Milestone = sprintMilestone() // already attached, milestone step skipped
	tracker := &fakeTracker{
		milestones: []*github.Milestone{sprintMilestone()},
		issues:     map[int]*github.Issue{42: issue},
		users: []*github.User{
			{Login: github.String("alice")},
			{Login: github.String("bob")},
			{Login: github.String("malicia")},
		},
	}
	surface := &scriptSurface{
		t:        t,
		choices:  []int{0, 0}, // milestone, then first narrowed candidate
		texts:    []string{"42", "alic", ""},
		confirms: []bool{false}, // do not leave unassigned
	}

	session := New(tracker, surface, WithMatcher(substringMatch))
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(tracker.assignUserCalls) != 1 || tracker.assignUserCalls[0] != "alice" {
		t.Errorf("Expected alice to be assigned, got %v", tracker.assignUserCalls)
	}
	if !surface.saidContaining("Already in milestone.") {
		t.Error("Expected the already-in-milestone notice")
	}
}

func TestRunNoMatchingCollaboratorsSkipsAssignment(t *testing.T) {
	issue := openIssue(42)
	issue.Milestone = sprintMilestone()
	tracker := &fakeTracker{
		milestones: []*github.Milestone{sprintMilestone()},
		issues:     map[int]*github.Issue{42: issue},
		users:      []*github.User{{Login: github.String("alice")}},
	}
	surface := &scriptSurface{
		t:        t,
		choices:  []int{0},
		texts:    []string{"42", "zzz", ""},
		confirms: []bool{false},
	}

	session := New(tracker, surface, WithMatcher(substringMatch))
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(tracker.assignUserCalls) != 0 {
		t.Errorf("Expected no assignment, got %v", tracker.assignUserCalls)
	}
	if !surface.saidContaining("No collaborators match") {
		t.Errorf("Expected a no-match notice, said: %v", surface.said)
	}
}

// fakeBoard is a scripted Board.
type fakeBoard struct {
	pipelines []Pipeline
	moves     []string
}

func (f *fakeBoard) ListPipelines(ctx context.Context) ([]Pipeline, error) {
	return f.pipelines, nil
}

func (f *fakeBoard) MoveIssue(ctx context.Context, issueNumber int, pipelineID string) error {
	f.moves = append(f.moves, fmt.Sprintf("%d->%s", issueNumber, pipelineID))
	return nil
}

func TestRunMovesTicketOntoPipeline(t *testing.T) {
	issue := openIssue(42)
	issue.Milestone = sprintMilestone()
	tracker := &fakeTracker{
		milestones: []*github.Milestone{sprintMilestone()},
		issues:     map[int]*github.Issue{42: issue},
	}
	board := &fakeBoard{pipelines: []Pipeline{
		{ID: "p1", Name: "Backlog", IssueNumbers: []int{7}},
		{ID: "p2", Name: "In Progress"},
	}}
	surface := &scriptSurface{
		t:        t,
		choices:  []int{0, 1}, // milestone, then "In Progress"
		texts:    []string{"42", ""},
		confirms: []bool{true}, // leave unassigned
	}

	session := New(tracker, surface, WithBoard(board))
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(board.moves) != 1 || board.moves[0] != "42->p2" {
		t.Errorf("Expected move 42->p2, got %v", board.moves)
	}
}

func TestRunNextPipelineSentinel(t *testing.T) {
	tracker := &fakeTracker{milestones: []*github.Milestone{sprintMilestone()}}
	board := &fakeBoard{pipelines: []Pipeline{
		{ID: "p1", Name: "Backlog"},
		{ID: "p2", Name: "In Progress"},
	}}
	surface := &scriptSurface{
		t:       t,
		choices: []int{0, 0, 1}, // milestone, Backlog, then In Progress
		texts:   []string{"n", ""},
	}

	session := New(tracker, surface, WithBoard(board))
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(surface.choices) != 0 || len(surface.texts) != 0 {
		t.Error("Expected the whole script to be consumed")
	}
}
