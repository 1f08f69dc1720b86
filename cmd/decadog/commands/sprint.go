// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-08-24
// Last Modified: 2026-08-31

package commands

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/similigh/decadog/internal/core/config"
	"github.com/similigh/decadog/internal/integrations/github"
	"github.com/similigh/decadog/internal/integrations/zenhub"
	"github.com/similigh/decadog/internal/interact"
	"github.com/similigh/decadog/internal/sprint"
)

var noKeyring bool

// sprintCmd represents the sprint command group
var sprintCmd = &cobra.Command{
	Use:   "sprint",
	Short: "Manage sprints",
}

// sprintStartCmd represents the sprint start command
var sprintStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Assign issues to a sprint, and people to issues",
	Long: `Start a sprint: select an open milestone, then loop over ticket
numbers. Each ticket is attached to the milestone after confirmation,
optionally moved onto a Zenhub board pipeline, and optionally assigned to
a collaborator picked via fuzzy name matching.

The loop ends on empty input. Tracker failures end the session; a ticket
that fails verification can simply be entered again.`,
	Run: func(cmd *cobra.Command, args []string) {
		runSprintStart()
	},
}

func init() {
	rootCmd.AddCommand(sprintCmd)
	sprintCmd.AddCommand(sprintStartCmd)

	sprintStartCmd.Flags().BoolVar(&noKeyring, "no-keyring", false, "Skip the OS keyring when resolving credentials")
}

func runSprintStart() {
	ctx := context.Background()

	cfg := resolveConfig()

	sessionID := uuid.NewString()
	if verbose {
		log.Printf("[sprint] session %s for %s/%s (github token %s)",
			sessionID, cfg.Owner, cfg.Repo, cfg.GithubToken)
	}

	ghClient := github.NewClient(ctx, cfg.GithubToken.Value(), cfg.Owner, cfg.Repo)
	if cfg.GithubURL != config.DefaultGithubURL {
		if _, err := ghClient.WithBaseURL(cfg.GithubURL); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}

	opts := []sprint.Option{sprint.WithMatcher(interact.Match)}
	if cfg.HasZenhub() {
		board, err := newZenhubBoard(ctx, ghClient, cfg)
		if err != nil {
			fmt.Printf("Warning: Zenhub unavailable, board steps disabled: %v\n", err)
		} else {
			opts = append(opts, sprint.WithBoard(board))
		}
	} else if verbose {
		fmt.Println("No Zenhub token configured; board steps disabled.")
	}

	session := sprint.New(ghClient, interact.NewTerminal(), opts...)
	if err := session.Run(ctx); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveConfig merges the credential layers and exits on a fatal
// resolution error.
func resolveConfig() *config.Config {
	var layers []config.Layer
	if !noKeyring {
		layers = append(layers, config.NewKeyringLayer())
	}
	layers = append(layers, config.NewEnvLayer())
	if cfgFile != "" {
		layers = append(layers, config.NewFileLayerFromPath(cfgFile))
	} else {
		layers = append(layers, config.NewFileLayer("."))
	}

	resolver := config.NewResolver(layers...)
	resolver.Warnf = func(format string, args ...interface{}) {
		log.Printf("[config] "+format, args...)
	}

	cfg, err := resolver.Resolve()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// zenhubBoard adapts the Zenhub client to the session's Board capability,
// pinned to the repository's first workspace.
type zenhubBoard struct {
	client      *zenhub.Client
	workspaceID string
	repoID      int64
}

func newZenhubBoard(ctx context.Context, ghClient *github.Client, cfg *config.Config) (*zenhubBoard, error) {
	zhClient, err := zenhub.NewClient(cfg.ZenhubURL, cfg.ZenhubToken.Value())
	if err != nil {
		return nil, err
	}

	repository, err := ghClient.GetRepository(ctx)
	if err != nil {
		return nil, err
	}

	workspace, err := zhClient.GetFirstWorkspace(ctx, repository.GetID())
	if err != nil {
		return nil, err
	}

	return &zenhubBoard{
		client:      zhClient,
		workspaceID: workspace.ID,
		repoID:      repository.GetID(),
	}, nil
}

func (b *zenhubBoard) ListPipelines(ctx context.Context) ([]sprint.Pipeline, error) {
	board, err := b.client.GetBoard(ctx, b.workspaceID, b.repoID)
	if err != nil {
		return nil, err
	}

	pipelines := make([]sprint.Pipeline, len(board.Pipelines))
	for i, pipeline := range board.Pipelines {
		numbers := make([]int, len(pipeline.Issues))
		for j, issue := range pipeline.Issues {
			numbers[j] = issue.IssueNumber
		}
		pipelines[i] = sprint.Pipeline{
			ID:           pipeline.ID,
			Name:         pipeline.Name,
			IssueNumbers: numbers,
		}
	}
	return pipelines, nil
}

func (b *zenhubBoard) MoveIssue(ctx context.Context, issueNumber int, pipelineID string) error {
	return b.client.MoveIssue(ctx, b.workspaceID, b.repoID, issueNumber, pipelineID)
}
