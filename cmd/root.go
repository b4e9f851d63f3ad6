/*
Copyright © 2026 scooby (osx-tags)
*/

// root.go defines the root command and CLI execution entry point.
//
// PersistentPreRunE loads configuration and initialises extensions for
// commands that touch file attributes. Commands in noStoreCommands (config,
// guide, log, version) skip it, so they still work when the configuration
// file is broken.

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"

	"github.com/scooby/osx-tags/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "finder-tags",
	Short: "Read and write Finder tags",
	Long: `Read and write the Finder tags stored in a file's extended attributes.

Tags are kept in com.apple.metadata:_kMDItemUserTags and its legacy alias
com.apple.metadata:kMDItemOMUserTags. Each tag may carry one of Finder's
seven colours.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		if noStoreCommands[topLevelCmdName(cmd)] {
			return nil
		}
		if err := initExtensions(); err != nil {
			if JSON() {
				_ = PrintJSON(map[string]string{"error": err.Error()})
				cmd.SilenceErrors = true
			}
			return fmt.Errorf("initialise extensions: %w", err)
		}
		return nil
	},
}

// topLevelCmdName returns the name of the top-level command (direct child of root).
func topLevelCmdName(cmd *cobra.Command) string {
	for cmd.HasParent() && cmd.Parent().HasParent() {
		cmd = cmd.Parent()
	}
	return cmd.Name()
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, registers extensions and executes the command.
// An interrupt cancels the command between files. Exit code 1 indicates error.
func Execute() {
	// Initialise audit logger (warn if it fails, but continue)
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := Run(ctx, os.Args[1:])
	stop()
	log.Close()

	if err != nil {
		os.Exit(1)
	}
}

// Run registers extensions and executes the root command with args.
func Run(ctx context.Context, args []string) error {
	registerExtensions()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// RootCmd returns the root command for testing and extension access.
func RootCmd() *cobra.Command {
	return rootCmd
}
