package lang

import (
	"context"
	"io"
	"iter"
	"log/slog"

	"github.com/klauspost/readahead"
)

// Stream provides lazy access to the top-level sections of a
// configuration source. Nothing is read or parsed until first access,
// and individual sections can be fetched without reconstructing the
// whole tree.
//
// Sections are cached pristine and cloned on every access, so callers
// may mutate what they receive.
type Stream struct {
	reader io.Reader
	source string
	key    string
	cfg    Config
	meta   *state
}

// NewStream creates a stream over an io.Reader. The reader is not
// consumed until the first section access.
func NewStream(r io.Reader, opts ...Option) *Stream {
	return &Stream{
		reader: r,
		cfg:    DefaultConfig().apply(opts...),
		meta:   new(state),
	}
}

// NewStreamFromString creates a stream over source text. Streams over
// identical text with identical lexical parameters share one parse.
func NewStreamFromString(source string, opts ...Option) *Stream {
	cfg := DefaultConfig().apply(opts...)
	key := sourceKey(cfg, []byte(source))

	entry := new(state)
	value, _ := globalRegistry.LoadOrStore(key, entry)

	return &Stream{
		source: source,
		key:    key,
		cfg:    cfg,
		meta:   value.(*state),
	}
}

// ensureParsed reads and parses the source on first use.
func (s *Stream) ensureParsed(ctx context.Context) error {
	s.meta.once.Do(func() {
		if s.source == "" && s.reader != nil {
			ra := readahead.NewReader(s.reader)
			defer ra.Close()

			data, err := io.ReadAll(ra)
			if err != nil {
				s.meta.err = ErrReadInput.Wrap(err).
					With(slog.String("source", "reader"))

				return
			}

			s.source = string(data)
			s.key = sourceKey(s.cfg, data)
		}

		root, err := parse(ctx, s.cfg, s.source)
		if err != nil {
			s.meta.err = err

			return
		}

		cacheTree(s.key, root, s.meta)
	})

	return s.meta.err
}

// Section returns a copy of the named top-level section, or
// [ErrMissingSection] when the source does not define it.
func (s *Stream) Section(ctx context.Context, name string) (*Section, error) {
	if err := s.ensureParsed(ctx); err != nil {
		return nil, err
	}

	if value, ok := globalCache.Load(s.key + ":" + name); ok {
		return value.(*Section).Clone(), nil
	}

	return nil, ErrMissingSection.With(slog.String("name", name))
}

// Sections returns an iterator over copies of the top-level sections
// in sorted name order. If parsing fails, the iterator yields nothing;
// use [Stream.Tree] to observe the error.
func (s *Stream) Sections(ctx context.Context) iter.Seq[*Section] {
	return func(yield func(*Section) bool) {
		if err := s.ensureParsed(ctx); err != nil {
			return
		}

		for _, name := range s.meta.names {
			value, ok := globalCache.Load(s.key + ":" + name)
			if !ok {
				continue
			}

			if !yield(value.(*Section).Clone()) {
				return
			}
		}
	}
}

// Tree returns a copy of the complete section tree.
func (s *Stream) Tree(ctx context.Context) (*Section, error) {
	if err := s.ensureParsed(ctx); err != nil {
		return nil, err
	}

	return loadTree(s.key, s.meta.names), nil
}

// SectionFrom fetches one named section from an io.Reader.
func SectionFrom(
	ctx context.Context,
	r io.Reader,
	name string,
	opts ...Option,
) (*Section, error) {
	return NewStream(r, opts...).Section(ctx, name)
}

// SectionsFrom returns an iterator over the top-level sections read
// from an io.Reader.
func SectionsFrom(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) iter.Seq[*Section] {
	return NewStream(r, opts...).Sections(ctx)
}
