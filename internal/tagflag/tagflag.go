// Package tagflag pairs repeated --tag and --color flags in command-line
// order.
//
// A colour applies to every tag that follows it until the next colour:
//
//	finder-tags add -t plain -c red -t urgent -t hot -c none -t later FILE
//
// yields "plain", "urgent\n6", "hot\n6" and "later". Both flags feed one
// shared occurrence list, so the relative order survives parsing.
package tagflag

import (
	"fmt"
	"strings"

	"github.com/scooby/osx-tags/internal/tag"
	"github.com/spf13/pflag"
)

type occurrence struct {
	color bool
	value string
}

// Pairs collects tag and colour occurrences in the order they were parsed.
type Pairs struct {
	occ []occurrence
}

// flagValue is the pflag.Value behind one of the two flags.
type flagValue struct {
	pairs *Pairs
	color bool
}

func (v *flagValue) Set(s string) error {
	v.pairs.occ = append(v.pairs.occ, occurrence{color: v.color, value: s})
	return nil
}

func (v *flagValue) String() string {
	var vals []string
	for _, o := range v.pairs.occ {
		if o.color == v.color {
			vals = append(vals, o.value)
		}
	}
	return "[" + strings.Join(vals, ",") + "]"
}

func (v *flagValue) Type() string {
	if v.color {
		return "color"
	}
	return "tag"
}

// Reset clears the shared occurrence list. Both flags share it, so
// resetting either clears both.
func (v *flagValue) Reset() { v.pairs.Reset() }

// Register installs --tag/-t and --color/-c on fs, both writing to p.
func Register(fs *pflag.FlagSet, p *Pairs) {
	fs.VarP(&flagValue{pairs: p}, "tag", "t", "tag text (repeatable)")
	fs.VarP(&flagValue{pairs: p, color: true}, "color", "c",
		"colour for the tags that follow: "+strings.Join(tag.Names(), ", "))
}

// Reset discards every occurrence.
func (p *Pairs) Reset() {
	p.occ = nil
}

// Empty reports whether no tag or colour was given.
func (p *Pairs) Empty() bool {
	return len(p.occ) == 0
}

// Tokens resolves the occurrences into tag tokens. Under colour none a tag
// value is passed through unchanged, so "work\n6" given directly keeps its
// colour.
func (p *Pairs) Tokens() ([]string, error) {
	var (
		out     []string
		current = tag.None
	)
	for _, o := range p.occ {
		if o.color {
			c, err := tag.ParseColor(o.value)
			if err != nil {
				return nil, fmt.Errorf("--color: %w", err)
			}
			current = c
			continue
		}
		if current == tag.None {
			out = append(out, o.value)
			continue
		}
		out = append(out, tag.Encode(o.value, current))
	}
	return out, nil
}
