package lang

import (
	"context"
	"strconv"
	"strings"
	"testing"
)

// benchDocument builds a document with n sections of 8 keys each.
func benchDocument(n int) string {
	var b strings.Builder

	for i := range n {
		b.WriteString("[section")
		b.WriteString(strconv.Itoa(i))
		b.WriteString("]\n")

		for j := range 8 {
			k := strconv.Itoa(j)
			b.WriteString("key")
			b.WriteString(k)
			b.WriteString(" = value")
			b.WriteString(k)
			b.WriteString("\n")
		}
	}

	return b.String()
}

// BenchmarkParse measures a cold parse of the full document.
func BenchmarkParse(b *testing.B) {
	source := benchDocument(50)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Parse(context.Background(), source); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkParseReader_Warm measures repeated reads of an unchanged
// source, where every iteration after the first is reconstructed from
// the cache.
func BenchmarkParseReader_Warm(b *testing.B) {
	b.Cleanup(ClearCache)

	source := benchDocument(50)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := ParseReader(context.Background(),
			strings.NewReader(source)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkParseReader_Cold measures the same read with the cache
// cleared every iteration.
func BenchmarkParseReader_Cold(b *testing.B) {
	b.Cleanup(ClearCache)

	source := benchDocument(50)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		ClearCache()

		if _, err := ParseReader(context.Background(),
			strings.NewReader(source)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSectionLookup measures direct section lookup on a parsed
// tree.
func BenchmarkSectionLookup(b *testing.B) {
	root, err := Parse(context.Background(), benchDocument(50))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := root.Value("section25.key3"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkResolve measures reference substitution across a document
// where half the keys reference the other half.
func BenchmarkResolve(b *testing.B) {
	var sb strings.Builder

	sb.WriteString("base = value\n[refs]\n")

	for i := range 100 {
		sb.WriteString("key")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(" = prefix %.base% suffix\n")
	}

	source := sb.String()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		b.StopTimer()

		root, err := Parse(context.Background(), source)
		if err != nil {
			b.Fatal(err)
		}

		b.StartTimer()

		if err := root.Resolve(); err != nil {
			b.Fatal(err)
		}
	}
}
