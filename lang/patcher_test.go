package lang

import (
	"testing"

	exprAst "github.com/expr-lang/expr/ast"
)

func TestExtractHyphenChain(t *testing.T) {
	tests := []struct {
		name     string
		bin      *exprAst.BinaryNode
		wantBase bool // true = member base, false = nil (top-level)
		wantProp string
		wantOK   bool
	}{
		{
			name: "member_simple",
			bin: &exprAst.BinaryNode{
				Operator: "-",
				Left: &exprAst.MemberNode{
					Node:     &exprAst.IdentifierNode{Value: "server"},
					Property: &exprAst.StringNode{Value: "log"},
				},
				Right: &exprAst.IdentifierNode{Value: "level"},
			},
			wantBase: true,
			wantProp: "log-level",
			wantOK:   true,
		},
		{
			name: "top_level_simple",
			bin: &exprAst.BinaryNode{
				Operator: "-",
				Left:     &exprAst.IdentifierNode{Value: "log"},
				Right:    &exprAst.IdentifierNode{Value: "level"},
			},
			wantBase: false,
			wantProp: "log-level",
			wantOK:   true,
		},
		{
			name: "chained_three_segments",
			bin: &exprAst.BinaryNode{
				Operator: "-",
				Left: &exprAst.BinaryNode{
					Operator: "-",
					Left: &exprAst.MemberNode{
						Node:     &exprAst.IdentifierNode{Value: "server"},
						Property: &exprAst.StringNode{Value: "log"},
					},
					Right: &exprAst.IdentifierNode{Value: "level"},
				},
				Right: &exprAst.IdentifierNode{Value: "name"},
			},
			wantBase: true,
			wantProp: "log-level-name",
			wantOK:   true,
		},
		{
			name: "top_level_three_segments",
			bin: &exprAst.BinaryNode{
				Operator: "-",
				Left: &exprAst.BinaryNode{
					Operator: "-",
					Left:     &exprAst.IdentifierNode{Value: "a"},
					Right:    &exprAst.IdentifierNode{Value: "b"},
				},
				Right: &exprAst.IdentifierNode{Value: "c"},
			},
			wantBase: false,
			wantProp: "a-b-c",
			wantOK:   true,
		},
		{
			name: "right_not_ident",
			bin: &exprAst.BinaryNode{
				Operator: "-",
				Left:     &exprAst.IdentifierNode{Value: "a"},
				Right:    &exprAst.IntegerNode{Value: 5},
			},
			wantOK: false,
		},
		{
			name: "wrong_operator",
			bin: &exprAst.BinaryNode{
				Operator: "+",
				Left:     &exprAst.IdentifierNode{Value: "a"},
				Right:    &exprAst.IdentifierNode{Value: "b"},
			},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, prop, ok := extractHyphenChain(tt.bin)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}

			if !ok {
				return
			}

			if prop != tt.wantProp {
				t.Errorf("property = %q, want %q", prop, tt.wantProp)
			}

			if tt.wantBase && base == nil {
				t.Error("expected non-nil base, got nil")
			}

			if !tt.wantBase && base != nil {
				t.Error("expected nil base, got non-nil")
			}
		})
	}
}

func TestExtractMemberPath(t *testing.T) {
	tests := []struct {
		name     string
		node     exprAst.Node
		wantPath []string
		wantOK   bool
	}{
		{
			name:     "single_ident",
			node:     &exprAst.IdentifierNode{Value: "server"},
			wantPath: []string{"server"},
			wantOK:   true,
		},
		{
			name: "two_segments",
			node: &exprAst.MemberNode{
				Node:     &exprAst.IdentifierNode{Value: "a"},
				Property: &exprAst.StringNode{Value: "b"},
			},
			wantPath: []string{"a", "b"},
			wantOK:   true,
		},
		{
			name: "three_segments",
			node: &exprAst.MemberNode{
				Node: &exprAst.MemberNode{
					Node:     &exprAst.IdentifierNode{Value: "a"},
					Property: &exprAst.StringNode{Value: "b"},
				},
				Property: &exprAst.StringNode{Value: "c"},
			},
			wantPath: []string{"a", "b", "c"},
			wantOK:   true,
		},
		{
			name:   "not_ident_or_member",
			node:   &exprAst.IntegerNode{Value: 5},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, ok := extractMemberPath(tt.node)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}

			if !ok {
				return
			}

			if len(path) != len(tt.wantPath) {
				t.Fatalf("path len = %d, want %d", len(path), len(tt.wantPath))
			}

			for i := range path {
				if path[i] != tt.wantPath[i] {
					t.Errorf(
						"path[%d] = %q, want %q",
						i, path[i], tt.wantPath[i],
					)
				}
			}
		})
	}
}

func TestHasChild(t *testing.T) {
	root := NewSection("")
	server := root.AddSection("server")
	server.SetKey("log-level", "debug")
	server.AddSection("tls")

	p := &hyphenPatcher{root: root, env: map[string]any{}}

	if !p.hasChild([]string{"server"}, "log-level") {
		t.Error("expected to find log-level key")
	}

	if !p.hasChild([]string{"server"}, "tls") {
		t.Error("expected to find tls child section")
	}

	if p.hasChild([]string{"server"}, "nonexistent") {
		t.Error("expected miss for nonexistent child")
	}

	if p.hasChild([]string{"ghost"}, "anything") {
		t.Error("expected miss for nonexistent base path")
	}
}

func TestHasTopLevel(t *testing.T) {
	p := &hyphenPatcher{env: map[string]any{"log-level": "debug"}}

	if !p.hasTopLevel("log-level") {
		t.Error("expected to find log-level in environment")
	}

	if p.hasTopLevel("log") {
		t.Error("expected miss for bare prefix")
	}
}
