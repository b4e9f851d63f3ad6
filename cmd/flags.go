/*
Copyright © 2026 scooby (osx-tags)
*/

// flags.go defines global CLI flags and accessors for shared state.
//
// Flags are package-level variables bound to the root command. Extensions
// read them through the exported accessors rather than through cobra.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/scooby/osx-tags/internal/format"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var validOutputFormats = []string{"json"}

var (
	output  string
	verbose bool
	noColor bool
)

// out is the output writer for commands. Defaults to os.Stdout.
// Tests can replace this to capture output.
var out io.Writer = os.Stdout

// Out returns the output writer.
func Out() io.Writer { return out }

// SetOut sets the output writer (for testing).
func SetOut(w io.Writer) { out = w }

// JSON returns true if JSON output is requested, by flag or by the
// output.format setting.
func JSON() bool {
	if output != "" {
		return output == "json"
	}
	return cfg != nil && cfg.JSON()
}

// Colour reports whether plain output should carry ANSI styling: never
// with --no-color, otherwise per the color.mode setting against the
// output writer.
func Colour() bool {
	if noColor {
		return false
	}
	mode := format.ModeAuto
	if cfg != nil {
		mode = cfg.ColorMode()
	}
	f, _ := out.(*os.File)
	return format.Enabled(mode, f)
}

// PrintJSON marshals v to JSON and writes it to the output writer.
// Returns nil if output format is not JSON.
func PrintJSON(v any) error {
	if !JSON() {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(out, string(b))
	return nil
}

// PrintJSONError prints an error in JSON format if output is JSON.
// Returns nil if error was printed (suppressing Cobra error), or the original error if not.
func PrintJSONError(err error) error {
	if !JSON() || err == nil {
		return err
	}
	_ = PrintJSON(map[string]string{"error": err.Error()})
	return nil
}

// ResetFlags restores every flag in the command tree to its default. Tests
// running several commands in one process call it between runs.
func ResetFlags() {
	var walk func(c *cobra.Command)
	walk = func(c *cobra.Command) {
		reset := func(f *pflag.Flag) {
			if r, ok := f.Value.(interface{ Reset() }); ok {
				r.Reset()
			} else {
				_ = f.Value.Set(f.DefValue)
			}
			f.Changed = false
		}
		c.Flags().VisitAll(reset)
		c.PersistentFlags().VisitAll(reset)
		for _, sub := range c.Commands() {
			walk(sub)
		}
	}
	walk(rootCmd)
	cfg = nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format: json")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug diagnostics on stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return validOutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
}
