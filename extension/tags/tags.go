// Package tags provides the tag extension for finder-tags.
// It registers commands: read, set, add, del, clear.
package tags

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/scooby/osx-tags/cmd"
	"github.com/scooby/osx-tags/extension"
	"github.com/scooby/osx-tags/internal/progress"
	"github.com/scooby/osx-tags/internal/store"
	"github.com/scooby/osx-tags/internal/tagflag"
	"github.com/scooby/osx-tags/internal/tags"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the tag extension.
type Extension struct {
	open store.Opener
}

// Compile-time interface compliance.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "tags".
func (e *Extension) Name() string { return "tags" }

// Init receives the store opener from the extension context.
func (e *Extension) Init(ctx extension.Context) error {
	e.open = ctx.Opener()
	return nil
}

// Commands returns the tag commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newReadCmd(),
		e.newMutateCmd(tags.ActionSet, "Replace all tags on files", tags.Set),
		e.newMutateCmd(tags.ActionAdd, "Add tags to files", tags.Add),
		e.newMutateCmd(tags.ActionDel, "Remove tags from files", tags.Remove),
		e.newClearCmd(),
	}
}

// writer returns where plain output goes: discarded under JSON output.
func writer() io.Writer {
	if cmd.JSON() {
		return io.Discard
	}
	return cmd.Out()
}

func (e *Extension) newReadCmd() *cobra.Command {
	var pairs tagflag.Pairs
	c := &cobra.Command{
		Use:   "read FILE...",
		Short: "Print the tags of files",
		Long: `Print the tags of files, one line per file with each tag in brackets.

  finder-tags read notes.txt
  finder-tags read -j *.pdf`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if !pairs.Empty() {
				return cmd.PrintJSONError(tags.ErrReadWithTags)
			}
			jsonFlag, _ := c.Flags().GetBool(extension.FlagJSON)
			asJSON := cmd.JSON() || jsonFlag

			w := cmd.Out()
			if asJSON {
				w = io.Discard
			}
			opts, done := withProgress(tags.Options{
				Source: "tags:read",
				Colour: cmd.Colour(),
			}, "reading", len(args))
			got, err := tags.Read(c.Context(), w, e.open, args, opts)
			done()
			if err != nil {
				return cmd.PrintJSONError(fmt.Errorf("read: %w", err))
			}
			if asJSON {
				return printJSON(got)
			}
			return nil
		},
	}
	tagflag.Register(c.Flags(), &pairs)
	c.Flags().BoolP(extension.FlagJSON, "j", false, "Prefer JSON output")
	return c
}

// mutation is the shared signature of tags.Set, tags.Add and tags.Remove.
type mutation = func(ctx context.Context, w io.Writer, open store.Opener, paths, tokens []string, opts tags.Options) ([]tags.Result, error)

func (e *Extension) newMutateCmd(action, short string, op mutation) *cobra.Command {
	var pairs tagflag.Pairs
	c := &cobra.Command{
		Use:   action + " [-c COLOR] -t TAG... FILE...",
		Short: short,
		Long: short + `.

--color applies to every --tag after it until the next --color:

  finder-tags ` + action + ` -t plain -c red -t urgent -t hot FILE

See 'finder-tags guide colors' for the palette.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			tokens, err := pairs.Tokens()
			if err != nil {
				return cmd.PrintJSONError(err)
			}
			opts, done := withProgress(options(c, "tags:"+action), "tagging", len(args))
			res, err := op(c.Context(), writer(), e.open, args, tokens, opts)
			done()
			if err != nil {
				return cmd.PrintJSONError(fmt.Errorf("%s: %w", action, err))
			}
			return cmd.PrintJSON(res)
		},
	}
	tagflag.Register(c.Flags(), &pairs)
	addChangeFlags(c)
	return c
}

func (e *Extension) newClearCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "clear FILE...",
		Short: "Remove every tag from files",
		Long:  `Remove both tag attributes from files. Untagged files are not an error.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			opts, done := withProgress(options(c, "tags:clear"), "clearing", len(args))
			res, err := tags.Clear(c.Context(), writer(), e.open, args, opts)
			done()
			if err != nil {
				return cmd.PrintJSONError(fmt.Errorf("clear: %w", err))
			}
			return cmd.PrintJSON(res)
		},
	}
	addChangeFlags(c)
	return c
}

// printJSON writes v regardless of the global output format, for read -j.
func printJSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	_, err = fmt.Fprintln(cmd.Out(), string(b))
	return err
}

// withProgress attaches a stderr progress line to opts. Diff output shares
// the terminal, so dry runs and --diff go without one.
func withProgress(opts tags.Options, label string, total int) (tags.Options, func()) {
	if opts.DryRun || opts.Diff {
		return opts, func() {}
	}
	p := progress.New(label, total)
	opts.Step = p.Step
	return opts, p.Done
}

func addChangeFlags(c *cobra.Command) {
	c.Flags().Bool(extension.FlagDryRun, false, "Show what would change without writing")
	c.Flags().Bool(extension.FlagDiff, false, "Show the change after writing")
}

func options(c *cobra.Command, source string) tags.Options {
	dryRun, _ := c.Flags().GetBool(extension.FlagDryRun)
	showDiff, _ := c.Flags().GetBool(extension.FlagDiff)
	return tags.Options{
		Source: source,
		DryRun: dryRun,
		Diff:   showDiff,
		Colour: cmd.Colour(),
	}
}
