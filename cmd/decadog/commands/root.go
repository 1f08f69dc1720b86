// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-08-24
// Last Modified: 2026-08-24

// Package commands defines the decadog command tree.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "decadog",
	Short: "Start and manage development sprints from the terminal",
	Long: `Decadog helps a repository maintainer run development sprints on
GitHub: pick a milestone, walk through ticket numbers, attach each ticket
to the milestone, and assign collaborators as you go.

Credentials and repository settings are resolved from the OS keyring,
DECADOG_* environment variables and a decadog.yaml file, in that order.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to config file (default: decadog.yaml in the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
