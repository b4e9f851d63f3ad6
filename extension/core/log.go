// log.go implements the "finder-tags log" command, a view over the audit
// history recorded for the current directory.

package core

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/scooby/osx-tags/cmd"
	"github.com/scooby/osx-tags/extension"
	"github.com/scooby/osx-tags/internal/duration"
	"github.com/scooby/osx-tags/internal/format"
	"github.com/scooby/osx-tags/internal/log"
	"github.com/spf13/cobra"
)

const defaultLogLimit = 20

func newLogCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "log",
		Short: "Show recent tag operations",
		Long: `Show recent operations run from the current directory, newest first.

  finder-tags log -n 5
  finder-tags log --since 7d

The history lives in ~/.finder-tags/log/finder-tags-log.db.`,
		Args: cobra.NoArgs,
		RunE: runLog,
	}
	c.Flags().IntP(extension.FlagLimit, "n", defaultLogLimit, "Maximum entries to show")
	c.Flags().String(extension.FlagSince, "", "Only entries newer than this (12h, 7d, 4w, 3m)")
	return c
}

func runLog(c *cobra.Command, _ []string) error {
	limit, _ := c.Flags().GetInt(extension.FlagLimit)
	if limit <= 0 {
		return cmd.PrintJSONError(fmt.Errorf("--limit must be positive, got %d", limit))
	}

	sinceFlag, _ := c.Flags().GetString(extension.FlagSince)
	since, err := duration.Since(sinceFlag, time.Now())
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("--since: %w", err))
	}

	if wd, err := os.Getwd(); err == nil {
		log.SetProject(wd)
	}
	entries, err := log.Recent(limit, since)
	if err != nil {
		return cmd.PrintJSONError(err)
	}
	if entries == nil {
		entries = []log.Entry{}
	}
	if cmd.JSON() {
		return cmd.PrintJSON(entries)
	}

	for _, e := range entries {
		fmt.Fprintln(cmd.Out(), logLine(e))
	}
	return nil
}

// logLine renders an entry as "time source path tags [error]".
func logLine(e log.Entry) string {
	var b strings.Builder
	b.WriteString(time.Unix(e.Start, 0).Format("2006-01-02 15:04:05"))
	b.WriteString("  " + e.Source)
	if e.Path != "" {
		b.WriteString("  " + e.Path)
	}
	for _, t := range e.Tags {
		b.WriteString(" [" + format.Label(t) + "]")
	}
	if !e.Success {
		b.WriteString("  error: " + e.Error)
	}
	return b.String()
}
