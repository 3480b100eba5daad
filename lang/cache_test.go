package lang

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.ini")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	return path
}

func TestParseFile(t *testing.T) {
	t.Cleanup(ClearCache)

	path := writeConfig(t, "[server]\nhost = localhost\n")

	root, err := ParseFile(context.Background(), path)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	server, ok := root.Child("server")
	if !ok {
		t.Fatal("missing section server")
	}

	if got := server.Get("host", ""); got != "localhost" {
		t.Errorf("host = %q", got)
	}
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile(context.Background(), filepath.Join(t.TempDir(), "absent"))
	if !errors.Is(err, ErrReadInput) {
		t.Fatalf("expected ErrReadInput, got %v", err)
	}
}

func TestParseFile_CachedCopiesAreIndependent(t *testing.T) {
	t.Cleanup(ClearCache)

	path := writeConfig(t, "top = 1\n[s]\nk = v\n")

	first, err := ParseFile(context.Background(), path)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	// Mutate the first result thoroughly.
	first.SetKey("top", "changed")
	s, _ := first.Child("s")
	s.SetKey("k", "changed")
	s.AddSection("junk")

	second, err := ParseFile(context.Background(), path)
	if err != nil {
		t.Fatalf("reparse error: %v", err)
	}

	if got := second.Get("top", ""); got != "1" {
		t.Errorf("top = %q, cache leaked a mutation", got)
	}

	s2, _ := second.Child("s")
	if got := s2.Get("k", ""); got != "v" {
		t.Errorf("k = %q, cache leaked a mutation", got)
	}

	if s2.HasSection("junk") {
		t.Error("cache leaked an added section")
	}
}

func TestParseReader(t *testing.T) {
	t.Cleanup(ClearCache)

	root, err := ParseReader(context.Background(),
		strings.NewReader("[a]\nx = 1\n"))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if _, ok := root.Child("a"); !ok {
		t.Fatal("missing section a")
	}
}

func TestParseReader_DistinctConfigsDoNotCollide(t *testing.T) {
	t.Cleanup(ClearCache)

	source := "k : a = b\n"

	def, err := ParseReader(context.Background(), strings.NewReader(source))
	if err != nil {
		t.Fatalf("default parse: %v", err)
	}

	alt, err := ParseReader(context.Background(), strings.NewReader(source),
		WithAssign(':'))
	if err != nil {
		t.Fatalf("alternate parse: %v", err)
	}

	// Under '=' the key is "k : a"; under ':' it is "k".
	if !def.HasKey("k : a") {
		t.Errorf("default keys = %v", def.Keys())
	}

	if got := alt.Get("k", ""); got != "a = b" {
		t.Errorf("alternate k = %q", got)
	}
}

func TestLoad_Resolves(t *testing.T) {
	t.Cleanup(ClearCache)

	path := writeConfig(t, "[server]\nhost = pg\ndsn = db://%host%\n")

	root, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	server, _ := root.Child("server")
	if got := server.Get("dsn", ""); got != "db://pg" {
		t.Errorf("dsn = %q", got)
	}
}

func TestLoad_ResolutionDoesNotPoisonCache(t *testing.T) {
	t.Cleanup(ClearCache)

	path := writeConfig(t, "[s]\na = x\nb = %a%\n")

	if _, err := Load(context.Background(), path); err != nil {
		t.Fatalf("load error: %v", err)
	}

	// A plain parse of the same file sees the unresolved value.
	root, err := ParseFile(context.Background(), path)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	s, _ := root.Child("s")
	if got := s.Get("b", ""); got != "%a%" {
		t.Errorf("b = %q, resolution leaked into the cache", got)
	}
}

func TestParseFile_SyntaxErrorSticks(t *testing.T) {
	t.Cleanup(ClearCache)

	path := writeConfig(t, "[broken\n")

	_, err := ParseFile(context.Background(), path)
	if !errors.Is(err, ErrSyntax) {
		t.Fatalf("expected ErrSyntax, got %v", err)
	}

	// The cached failure is returned again without reparsing.
	_, err = ParseFile(context.Background(), path)
	if !errors.Is(err, ErrSyntax) {
		t.Fatalf("second read: expected ErrSyntax, got %v", err)
	}
}

func TestHashConfig(t *testing.T) {
	base := DefaultConfig()

	if hashConfig(base) != hashConfig(DefaultConfig()) {
		t.Error("equal configs hash differently")
	}

	for name, opt := range map[string]Option{
		"comments":     WithComments('!'),
		"assign":       WithAssign(':'),
		"quote":        WithQuote('\''),
		"continuation": WithContinuation(0),
		"escapes":      WithEscapes(false),
		"multiline":    WithMultiline(false),
	} {
		if hashConfig(base.apply(opt)) == hashConfig(base) {
			t.Errorf("%s option does not affect the config hash", name)
		}
	}
}

func TestClearCache(t *testing.T) {
	source := "[s]\nk = v\n"

	first, err := ParseReader(context.Background(), strings.NewReader(source))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	ClearCache()

	second, err := ParseReader(context.Background(), strings.NewReader(source))
	if err != nil {
		t.Fatalf("reparse error: %v", err)
	}

	if !reflect.DeepEqual(first.ToMap(), second.ToMap()) {
		t.Error("results differ across cache clear")
	}
}
