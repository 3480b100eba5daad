package lang

import (
	"log/slog"
	"maps"

	"github.com/ardnew/hini/log"
)

// builder assembles a section tree from a token stream.
//
// Every section header resets the cursor to the root, so nesting in
// the tree comes only from dotted paths used by inheritance and
// queries, never from header ordering.
type builder struct {
	root   *Section
	cursor *Section
	logger log.Logger
}

func newBuilder(logger log.Logger) *builder {
	root := NewSection("")

	return &builder{root: root, cursor: root, logger: logger}
}

// apply folds one token into the tree.
func (b *builder) apply(tok Token) error {
	switch t := tok.(type) {
	case SectionHeader:
		return b.openSection(t)
	case KeyValue:
		b.cursor.SetKey(t.Key, t.Value)
	}

	return nil
}

// openSection starts a new current section. When the header names an
// existing sibling, its keys merge into that section, later values
// winning. Inherited keys are copied from the named section before
// the merge, so keys assigned under this header override them.
func (b *builder) openSection(t SectionHeader) error {
	b.cursor = b.root

	fresh := NewSection(t.Name)

	if t.Inherit != "" {
		src, err := b.root.At(t.Inherit)
		if err != nil {
			return ErrLookup.WithPosition(t.Pos()).With(
				slog.String("inherit", t.Inherit),
				slog.String("section", t.Name),
			).Wrap(err)
		}

		maps.Copy(fresh.keys, src.keys)

		b.logger.Debug("inherited keys",
			slog.String("section", t.Name),
			slog.String("from", t.Inherit),
			slog.Int("keys", len(src.keys)),
		)
	}

	if existing, ok := b.cursor.children[t.Name]; ok {
		maps.Copy(existing.keys, fresh.keys)
		b.cursor = existing

		return nil
	}

	_ = fresh.SetParent(b.cursor)
	b.cursor = fresh

	return nil
}
