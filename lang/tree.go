package lang

import (
	"iter"
	"log/slog"
	"maps"
	"slices"
	"strings"
)

// Section is a node in a configuration tree: a named collection of
// key/value pairs and child sections. The unnamed root section anchors
// the tree and holds top-level keys.
//
// A Section and its tree are not safe for concurrent use.
type Section struct {
	name     string
	keys     map[string]string
	children map[string]*Section
	parent   *Section
}

// NewSection returns an empty section with the given name and no
// parent. An empty name denotes a root section.
func NewSection(name string) *Section {
	return &Section{
		name:     name,
		keys:     make(map[string]string),
		children: make(map[string]*Section),
	}
}

// Name returns the section name. The root section's name is empty.
func (s *Section) Name() string {
	return s.name
}

// Parent returns the enclosing section, or nil for the root.
func (s *Section) Parent() *Section {
	return s.parent
}

// IsRoot reports whether the section has no parent.
func (s *Section) IsRoot() bool {
	return s.parent == nil
}

// Root returns the topmost ancestor of the section.
func (s *Section) Root() *Section {
	r := s
	for r.parent != nil {
		r = r.parent
	}

	return r
}

// Path returns the dot-separated path from the root to the section.
// The root's path is the empty string.
func (s *Section) Path() string {
	if s.parent == nil {
		return ""
	}

	names := []string{s.name}
	for p := s.parent; p != nil && p.parent != nil; p = p.parent {
		names = append(names, p.name)
	}

	slices.Reverse(names)

	return strings.Join(names, ".")
}

// SetKey stores value under key, replacing any existing value.
func (s *Section) SetKey(key, value string) {
	s.keys[key] = value
}

// DeleteKey removes key and reports whether it was present.
func (s *Section) DeleteKey(key string) bool {
	_, ok := s.keys[key]
	delete(s.keys, key)

	return ok
}

// Len returns the number of keys defined directly in the section.
func (s *Section) Len() int {
	return len(s.keys)
}

// AddSection returns the child section with the given name, creating
// an empty one if none exists.
func (s *Section) AddSection(name string) *Section {
	if child, ok := s.children[name]; ok {
		return child
	}

	child := NewSection(name)
	child.parent = s
	s.children[name] = child

	return child
}

// RemoveSection detaches the named child from the tree and reports
// whether it was present. The detached section becomes a root.
func (s *Section) RemoveSection(name string) bool {
	child, ok := s.children[name]
	if !ok {
		return false
	}

	delete(s.children, name)
	child.parent = nil

	return true
}

// SetParent moves the section under a new parent, detaching it from
// its current one. A nil parent detaches only. Any existing child of
// the new parent with the same name is displaced and becomes a root.
//
// Moving a section underneath itself or one of its descendants fails
// with [ErrCycle] and leaves the tree unchanged.
func (s *Section) SetParent(parent *Section) error {
	for p := parent; p != nil; p = p.parent {
		if p == s {
			return ErrCycle.With(slog.String("section", s.name))
		}
	}

	if s.parent != nil {
		delete(s.parent.children, s.name)
		s.parent = nil
	}

	if parent == nil {
		return nil
	}

	if prev, ok := parent.children[s.name]; ok {
		prev.parent = nil
	}

	parent.children[s.name] = s
	s.parent = parent

	return nil
}

// Keys returns the section's key names in sorted order.
func (s *Section) Keys() []string {
	return sortedKeys(s.keys)
}

// Children returns the section's child sections sorted by name.
func (s *Section) Children() []*Section {
	names := sortedKeys(s.children)

	children := make([]*Section, len(names))
	for i, name := range names {
		children[i] = s.children[name]
	}

	return children
}

// Walk returns a depth-first iterator over the section and all of its
// descendants, visiting children in sorted name order.
func (s *Section) Walk() iter.Seq[*Section] {
	return func(yield func(*Section) bool) {
		s.walk(yield)
	}
}

func (s *Section) walk(yield func(*Section) bool) bool {
	if !yield(s) {
		return false
	}

	for _, child := range s.Children() {
		if !child.walk(yield) {
			return false
		}
	}

	return true
}

// Clone returns a deep copy of the section and its descendants.
// The copy is detached: its root has no parent.
func (s *Section) Clone() *Section {
	c := &Section{
		name:     s.name,
		keys:     maps.Clone(s.keys),
		children: make(map[string]*Section, len(s.children)),
	}

	for name, child := range s.children {
		cc := child.Clone()
		cc.parent = c
		c.children[name] = cc
	}

	return c
}
