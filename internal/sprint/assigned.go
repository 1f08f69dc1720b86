// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-08-22
// Last Modified: 2026-08-24

package sprint

import "github.com/google/go-github/v60/github"

// issueInMilestone reports whether the issue is already attached to the
// milestone, so the session can skip a redundant confirm-and-patch.
func issueInMilestone(issue *github.Issue, milestone *github.Milestone) bool {
	return issue.GetMilestone() != nil &&
		issue.GetMilestone().GetNumber() == milestone.GetNumber()
}

// issueInPipeline reports whether the issue already sits on the pipeline.
func issueInPipeline(pipeline *Pipeline, issueNumber int) bool {
	for _, number := range pipeline.IssueNumbers {
		if number == issueNumber {
			return true
		}
	}
	return false
}

// userAssigned reports whether the login is among the issue's assignees.
func userAssigned(issue *github.Issue, login string) bool {
	for _, assignee := range issue.Assignees {
		if assignee.GetLogin() == login {
			return true
		}
	}
	return false
}

// assigneeLogins collects the issue's current assignee logins.
func assigneeLogins(issue *github.Issue) []string {
	logins := make([]string, 0, len(issue.Assignees))
	for _, assignee := range issue.Assignees {
		logins = append(logins, assignee.GetLogin())
	}
	return logins
}
