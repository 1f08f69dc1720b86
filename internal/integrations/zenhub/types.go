// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-08-21
// Last Modified: 2026-08-24

package zenhub

// Workspace is a Zenhub workspace containing one or more repositories.
type Workspace struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Repositories []int64 `json:"repositories"`
}

// PipelineIssue is an issue reference on a board pipeline.
type PipelineIssue struct {
	IssueNumber int       `json:"issue_number"`
	Estimate    *Estimate `json:"estimate,omitempty"`
	Position    *int      `json:"position,omitempty"`
	IsEpic      bool      `json:"is_epic"`
}

// Pipeline is a column on a Zenhub board.
type Pipeline struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Issues []PipelineIssue `json:"issues"`
}

// Board is the pipelines of a workspace/repository pair.
type Board struct {
	Pipelines []Pipeline `json:"pipelines"`
}

// Estimate is a story-point estimate.
type Estimate struct {
	Value int `json:"value"`
}

// Issue is Zenhub's view of a GitHub issue.
type Issue struct {
	Estimate *Estimate `json:"estimate,omitempty"`
	IsEpic   bool      `json:"is_epic"`
}

// PipelinePosition describes where to place a moved issue.
type PipelinePosition struct {
	PipelineID string `json:"pipeline_id"`
	Position   string `json:"position"`
}

// setEstimate is the request body for estimate updates.
type setEstimate struct {
	Estimate int `json:"estimate"`
}
