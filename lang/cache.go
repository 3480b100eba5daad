package lang

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"io"
	"log/slog"
	"maps"
	"os"
	"strconv"
	"sync"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"
)

var (
	// globalCache stores pristine section clones keyed by
	// (source_hash:name), with the root's own keys under the bare
	// (source_hash:) entry. Section names are never empty, so the
	// two key forms cannot collide.
	globalCache sync.Map

	// globalRegistry tracks parse state by source hash.
	globalRegistry sync.Map
)

// state tracks the one-time parse and top-level section list for
// a source.
type state struct {
	once  sync.Once
	names []string
	err   error
}

// hashConfig encodes the lexical parameters with gob and hashes them
// with xxh3, so sources parsed under different parameters never share
// a cache entry. The logger does not affect the parse result and is
// excluded.
func hashConfig(cfg Config) uint64 {
	var buf bytes.Buffer

	enc := gob.NewEncoder(&buf)

	_ = enc.Encode(string(cfg.comment))
	_ = enc.Encode(cfg.assign)
	_ = enc.Encode(cfg.quote)
	_ = enc.Encode(cfg.cont)
	_ = enc.Encode(cfg.escape)
	_ = enc.Encode(cfg.multiline)

	return xxh3.Hash(buf.Bytes())
}

// sourceKey derives the cache key for source text parsed under cfg.
func sourceKey(cfg Config, data []byte) string {
	return strconv.FormatUint(xxh3.Hash(data)^hashConfig(cfg), 36)
}

// ParseReader parses configuration source from an io.Reader.
//
// The parse result is cached by content hash, so re-reading an
// unchanged source skips the parse. Every call returns a private
// deep copy; mutating it does not affect later calls.
func ParseReader(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) (*Section, error) {
	cfg := DefaultConfig().apply(opts...)

	// Wrap reader with async read-ahead so data is pre-fetched while
	// previous chunks are processed.
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrReadInput.Wrap(err).
			With(slog.String("source", "reader"))
	}

	cfg.logger.TraceContext(ctx, "read input",
		slog.Int("source_bytes", len(data)),
		slog.Bool("read_ahead", true),
	)

	return parseCached(ctx, cfg, string(data))
}

// ParseFile parses the configuration file at path, with the same
// caching and copy semantics as [ParseReader].
func ParseFile(
	ctx context.Context,
	path string,
	opts ...Option,
) (*Section, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ErrReadInput.Wrap(err).
			With(slog.String("path", path))
	}

	defer f.Close()

	root, err := ParseReader(ctx, f, opts...)
	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			return nil, e.With(slog.String("path", path))
		}

		return nil, err
	}

	return root, nil
}

// Load parses the configuration file at path and resolves all value
// references in the result.
func Load(
	ctx context.Context,
	path string,
	opts ...Option,
) (*Section, error) {
	root, err := ParseFile(ctx, path, opts...)
	if err != nil {
		return nil, err
	}

	if err := root.Resolve(); err != nil {
		return nil, err
	}

	return root, nil
}

// parseCached parses source text through the global cache.
func parseCached(ctx context.Context, cfg Config, source string) (*Section, error) {
	key := sourceKey(cfg, []byte(source))

	entry := new(state)
	value, cacheHit := globalRegistry.LoadOrStore(key, entry)
	meta := value.(*state)

	cfg.logger.TraceContext(ctx, "cache lookup",
		slog.String("source_key", key),
		slog.Bool("cache_hit", cacheHit),
	)

	meta.once.Do(func() {
		root, err := parse(ctx, cfg, source)
		if err != nil {
			meta.err = err

			return
		}

		cacheTree(key, root, meta)
	})

	if meta.err != nil {
		return nil, meta.err
	}

	return loadTree(key, meta.names), nil
}

// cacheTree stores pristine clones of the tree's top-level pieces.
func cacheTree(key string, root *Section, meta *state) {
	meta.names = sortedKeys(root.children)

	for name, child := range root.children {
		globalCache.Store(key+":"+name, child.Clone())
	}

	globalCache.Store(key+":", maps.Clone(root.keys))
}

// loadTree reconstructs a private section tree from cached pieces.
func loadTree(key string, names []string) *Section {
	root := NewSection("")

	if value, ok := globalCache.Load(key + ":"); ok {
		root.keys = maps.Clone(value.(map[string]string))
	}

	for _, name := range names {
		value, ok := globalCache.Load(key + ":" + name)
		if !ok {
			continue
		}

		child := value.(*Section).Clone()
		child.parent = root
		root.children[name] = child
	}

	return root
}

// ClearCache removes all cached sections and source metadata.
// This is primarily useful for testing or when memory needs to be
// reclaimed.
func ClearCache() {
	globalCache = sync.Map{}
	globalRegistry = sync.Map{}
}
