// Package lang parses hierarchical INI-style configuration into a
// section tree with inheritance and value substitution.
//
// # Grammar
//
// Source text is processed line by line. Informal EBNF:
//
//	Document  → Line*
//	Line      → Blank | Comment | Header | Assignment
//	Comment   → ('#' | ';') <rest of line>
//	Header    → '[' Name (':' Path)? ']'
//	Assignment→ Key '=' Value
//	Key       → bare text | '"' text '"'
//	Value     → multi-line | quoted | plain
//	Path      → Name ('.' Name)*
//
// Comment runes are recognized only as the first non-blank character
// of a line; inside a value they are literal text. Keys split from
// values at the first assignment rune on the line.
//
// # Example
//
//	# Top-level keys belong to the root section.
//	timeout = 30s
//
//	[server]
//	host = localhost
//	port = 8080
//	url = http://%host%:%port%
//
//	# Inherit keys from another section by dotted path.
//	[backup : server]
//	port = 9090
//
//	[client]
//	server = %.server.url%
//
// # Values
//
// A value opening with a triple quote spans lines verbatim until the
// closing triple quote. A value opening with a single quote rune ends
// at the matching quote on the same line, with \n, \t, \\, and \"
// decoded. Anything else is plain text to end of line; a trailing
// backslash joins the next line with a single space.
//
// # Substitution
//
// After parsing, [Section.Resolve] replaces %path% references in
// values. A leading dot anchors the path at the document root;
// otherwise it resolves from the section holding the value. Output of
// a replacement is not rescanned.
//
// # Expressions
//
// [Eval] runs expr-lang expressions against a document: sections
// appear as nested maps, keys as strings, alongside built-ins for the
// process environment (env), dotted-path access (get, has), host
// inspection (target, platform, hostname, user, shell, cwd), the
// filesystem (file.*, path.*), and PATH-like list editing (mung.*).
// Hyphenated names are patched back from subtraction via expr.Patch.
package lang
