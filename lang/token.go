package lang

// Token is a single meaningful line of source: a section header or a
// key/value assignment. Blank and comment lines produce no token.
type Token interface {
	// Pos returns the source position of the line that produced
	// the token.
	Pos() Position

	token()
}

// SectionHeader is a "[name]" or "[name : parent]" line.
// Inherit holds the dot-separated parent path, or "" when absent.
type SectionHeader struct {
	Name    string
	Inherit string

	pos Position
}

// Pos returns the source position of the header line.
func (t SectionHeader) Pos() Position { return t.pos }

func (SectionHeader) token() {}

// String returns the header in source form.
func (t SectionHeader) String() string {
	if t.Inherit == "" {
		return "[" + t.Name + "]"
	}

	return "[" + t.Name + " : " + t.Inherit + "]"
}

// KeyValue is a "key = value" line. Key and Value are fully decoded:
// quotes stripped, escapes and continuations applied.
type KeyValue struct {
	Key   string
	Value string

	pos Position
}

// Pos returns the source position of the assignment line. Multi-line
// and continued values report the line the assignment began on.
func (t KeyValue) Pos() Position { return t.pos }

func (KeyValue) token() {}

// String returns the assignment in source form.
func (t KeyValue) String() string {
	return t.Key + " = " + t.Value
}
