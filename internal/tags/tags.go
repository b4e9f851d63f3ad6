// Package tags runs tag operations over a list of paths for the CLI and the
// MCP server.
//
// Each function opens a fresh store per path, applies one store operation,
// records an audit entry and reports what changed. Paths are processed in
// order. Cancellation is checked between paths. The first write failure
// stops the run and is returned with the path it occurred on, alongside the
// results for paths already done.
package tags

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/scooby/osx-tags/internal/diff"
	"github.com/scooby/osx-tags/internal/format"
	"github.com/scooby/osx-tags/internal/log"
	"github.com/scooby/osx-tags/internal/store"
	"github.com/scooby/osx-tags/internal/validate"
)

// Actions, as recorded in results and the audit log.
const (
	ActionRead  = "read"
	ActionSet   = "set"
	ActionAdd   = "add"
	ActionDel   = "del"
	ActionClear = "clear"
)

// ErrReadWithTags is returned when tags or colours are passed to read.
var ErrReadWithTags = errors.New("the --tag and --color options are invalid when reading")

// Options configures a mutating operation.
type Options struct {
	Source string // audit log source, e.g. "tags:add" or "mcp:tags_add"
	DryRun bool   // compute and print the diff, do not write
	Diff   bool   // print the diff after writing
	Colour bool   // ANSI-style plain output
	Step   func() // called after each path, for progress reporting
}

func (o Options) step() {
	if o.Step != nil {
		o.Step()
	}
}

// Result describes one path after a mutating operation.
type Result struct {
	Path   string         `json:"path"`
	Action string         `json:"action"`
	Tags   []format.Entry `json:"tags"`
	Before []format.Entry `json:"before,omitempty"`
	DryRun bool           `json:"dry_run,omitempty"`
}

// Read writes the tags of each path to w as plain lines and returns them.
func Read(ctx context.Context, w io.Writer, open store.Opener, paths []string, opts Options) ([]format.PathTags, error) {
	if err := validate.Paths(paths); err != nil {
		return nil, err
	}
	out := make([]format.PathTags, 0, len(paths))
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		got := open(p).Read()
		log.Event(opts.Source, ActionRead).Path(p).Detail("count", len(got)).Write(nil)

		fmt.Fprintln(w, format.Line(p, got, opts.Colour))
		out = append(out, format.PathTags{Path: p, Tags: format.Entries(got)})
		opts.step()
	}
	return out, nil
}

// Set replaces the tags of each path with tokens.
func Set(ctx context.Context, w io.Writer, open store.Opener, paths, tokens []string, opts Options) ([]Result, error) {
	return apply(ctx, w, open, paths, tokens, opts, operation{
		action: ActionSet,
		next:   func(_ []string) []string { return store.Union(nil, tokens) },
		run:    func(s *store.Store) error { return s.Write(tokens...) },
	})
}

// Add adds tokens to the tags of each path.
func Add(ctx context.Context, w io.Writer, open store.Opener, paths, tokens []string, opts Options) ([]Result, error) {
	return apply(ctx, w, open, paths, tokens, opts, operation{
		action: ActionAdd,
		next:   func(cur []string) []string { return store.Union(cur, tokens) },
		run:    func(s *store.Store) error { return s.Add(tokens...) },
	})
}

// Remove removes tokens from the tags of each path. Tokens match exactly,
// colour included.
func Remove(ctx context.Context, w io.Writer, open store.Opener, paths, tokens []string, opts Options) ([]Result, error) {
	return apply(ctx, w, open, paths, tokens, opts, operation{
		action: ActionDel,
		next:   func(cur []string) []string { return store.Difference(cur, tokens) },
		run:    func(s *store.Store) error { return s.Remove(tokens...) },
	})
}

// Clear removes both tag attributes from each path. It never fails on a
// path; only cancellation and invalid paths stop it.
func Clear(ctx context.Context, w io.Writer, open store.Opener, paths []string, opts Options) ([]Result, error) {
	return apply(ctx, w, open, paths, nil, opts, operation{
		action: ActionClear,
		next:   func(_ []string) []string { return nil },
		run: func(s *store.Store) error {
			s.Clear()
			return nil
		},
	})
}

// operation is one store mutation: run performs it, next predicts the
// resulting set for dry runs.
type operation struct {
	action string
	next   func(current []string) []string
	run    func(s *store.Store) error
}

func apply(ctx context.Context, w io.Writer, open store.Opener, paths, tokens []string, opts Options, op operation) ([]Result, error) {
	if err := validate.Paths(paths); err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(paths))
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		s := open(p)
		before := s.Read()
		r := Result{Path: p, Action: op.action, DryRun: opts.DryRun}

		var after []string
		if opts.DryRun {
			after = op.next(before)
		} else {
			err := op.run(s)
			log.Event(opts.Source, op.action).Path(p).Tags(tokens).Write(err)
			if err != nil {
				return results, fmt.Errorf("%s %s: %w", op.action, p, err)
			}
			after = s.Read()
		}

		if opts.DryRun || opts.Diff {
			diff.Compute(p, before, after).Print(w, opts.Colour)
			r.Before = format.Entries(before)
		}
		r.Tags = format.Entries(after)
		results = append(results, r)
		opts.step()
	}
	return results, nil
}
