// Package store reads and writes the tag set of a single file.
//
// Finder keeps a file's tags in two extended attributes that hold the same
// logical list: the current key and a legacy key written by older tools.
// Each holds a binary property list containing an array of tag tokens (see
// package tag). A Store treats the pair as aliases. Reads union both slots;
// writes replace both with identical blobs.
//
// A Store is a transient binding. Construct one per file on demand and drop
// it when done; it keeps no state beyond the attribute handle.
//
// # Consistency
//
// Every operation is a short sequence of synchronous attribute calls with no
// locking. Add and Remove are read-modify-write and are not atomic: a second
// process writing the same file between the read and the write loses its
// change. The two slots are written one after the other, so a failure in
// between leaves them different; readers tolerate that by taking the union.
// Callers that need more must serialise access themselves.
package store

import (
	"os"
	"slices"

	"github.com/rs/zerolog"
	"github.com/scooby/osx-tags/internal/tag"
	"github.com/scooby/osx-tags/internal/validate"
	"github.com/scooby/osx-tags/internal/xattr"
)

// Attribute keys holding the tag list, without any platform prefix.
const (
	KeyUserTags   = "com.apple.metadata:_kMDItemUserTags"
	KeyOMUserTags = "com.apple.metadata:kMDItemOMUserTags"
)

// Store binds tag operations to one file's extended attributes.
type Store struct {
	attrs  xattr.Attributes
	prefix string
	keys   []string
	log    zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithPrefix sets the namespace prefix prepended to both keys. The default
// is xattr.DefaultPrefix for the running platform.
func WithPrefix(prefix string) Option {
	return func(s *Store) { s.prefix = prefix }
}

// WithLogger sets the diagnostics logger. Skipped slots and swallowed
// removal failures are reported at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// New returns a Store over any attribute backend.
func New(attrs xattr.Attributes, opts ...Option) *Store {
	s := &Store{
		attrs:  attrs,
		prefix: xattr.DefaultPrefix,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.keys = []string{s.prefix + KeyUserTags, s.prefix + KeyOMUserTags}
	return s
}

// Open returns a Store bound to the file at path. The file is not opened or
// checked; a missing file reads as having no tags and fails on write.
func Open(path string, opts ...Option) *Store {
	return New(xattr.Path(path), opts...)
}

// FromFile returns a Store bound to an open file. The caller keeps ownership
// of f.
func FromFile(f *os.File, opts ...Option) *Store {
	return New(xattr.File(f), opts...)
}

// Opener builds stores for paths. CLI and MCP layers depend on an Opener
// rather than on Open so tests can substitute in-memory attributes.
type Opener func(path string) *Store

// NewOpener returns an Opener applying opts to every Store it builds.
func NewOpener(opts ...Option) Opener {
	return func(path string) *Store {
		return Open(path, opts...)
	}
}

// Keys returns the attribute keys of both slots, primary first.
func (s *Store) Keys() []string {
	return slices.Clone(s.keys)
}

// Read returns the normalised union of the tags in both slots, sorted.
// Slots that are absent, unreadable or undecodable contribute nothing; a file
// that was never tagged reads as an empty set, never as an error.
func (s *Store) Read() []string {
	seen := make(map[string]struct{})
	for _, key := range s.keys {
		for _, t := range s.readSlot(key) {
			seen[tag.Normalize(t)] = struct{}{}
		}
	}
	return sortedSet(seen)
}

// Write replaces the tags in both slots with tags, normalised, in the order
// given. This is last-writer-wins, not a merge. Errors from the underlying
// attribute writes are returned unchanged in kind; nothing is retried.
func (s *Store) Write(tags ...string) error {
	blob, err := encodeList(tag.NormalizeAll(tags))
	if err != nil {
		return err
	}
	return s.writeSlots(blob)
}

// Clear removes both slots. Missing slots and removal failures are ignored,
// since files commonly carry only one of the two keys.
func (s *Store) Clear() {
	for _, key := range s.keys {
		if err := s.attrs.Remove(key); err != nil {
			s.log.Debug().Str("key", key).Err(err).Msg("tag slot not removed")
		}
	}
}

// Add writes the union of the current tags and tags.
func (s *Store) Add(tags ...string) error {
	return s.Write(Union(s.Read(), tags)...)
}

// Remove writes the current tags minus tags. Comparison is by exact
// normalised token, so "work" does not remove a red "work\n6".
func (s *Store) Remove(tags ...string) error {
	return s.Write(Difference(s.Read(), tags)...)
}

// WriteValues is Write for untyped input. Any non-string value fails with
// validate.ErrNotString before an attribute is touched.
func (s *Store) WriteValues(vals ...any) error {
	tags, err := validate.Strings(vals)
	if err != nil {
		return err
	}
	return s.Write(tags...)
}

// AddValues is Add for untyped input, validated like WriteValues.
func (s *Store) AddValues(vals ...any) error {
	tags, err := validate.Strings(vals)
	if err != nil {
		return err
	}
	return s.Add(tags...)
}

// RemoveValues is Remove for untyped input, validated like WriteValues.
func (s *Store) RemoveValues(vals ...any) error {
	tags, err := validate.Strings(vals)
	if err != nil {
		return err
	}
	return s.Remove(tags...)
}

// Union returns current plus the normalised tags, deduplicated and sorted.
func Union(current, tags []string) []string {
	seen := make(map[string]struct{}, len(current)+len(tags))
	for _, t := range current {
		seen[t] = struct{}{}
	}
	for _, t := range tags {
		seen[tag.Normalize(t)] = struct{}{}
	}
	return sortedSet(seen)
}

// Difference returns current without the normalised tags, deduplicated and
// sorted.
func Difference(current, tags []string) []string {
	seen := make(map[string]struct{}, len(current))
	for _, t := range current {
		seen[t] = struct{}{}
	}
	for _, t := range tags {
		delete(seen, tag.Normalize(t))
	}
	return sortedSet(seen)
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}
