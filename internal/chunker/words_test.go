package chunker

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func numberedWords(n int) []string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("w%d", i)
	}
	return words
}

func mustNew(t *testing.T, cfg Config) *WordChunker {
	t.Helper()
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("New(%+v): %v", cfg, err)
	}
	return c
}

func TestChunk_SixHundredWords(t *testing.T) {
	c := mustNew(t, DefaultConfig)
	words := numberedWords(600)

	chunks := c.Chunk(strings.Join(words, " "))

	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	if chunks[0].WordCount != 500 || chunks[0].Text != strings.Join(words[0:500], " ") {
		t.Fatalf("first chunk should be words[0:500], got %d words", chunks[0].WordCount)
	}
	if chunks[1].WordCount != 150 || chunks[1].Text != strings.Join(words[450:600], " ") {
		t.Fatalf("second chunk should be words[450:600], got %d words", chunks[1].WordCount)
	}
}

func TestChunk_EmptyInput(t *testing.T) {
	c := mustNew(t, DefaultConfig)

	for _, in := range []string{"", "   \n\t "} {
		if chunks := c.Chunk(in); len(chunks) != 0 {
			t.Fatalf("expected no chunks for %q, got %d", in, len(chunks))
		}
	}
}

func TestChunk_StepDividesLength(t *testing.T) {
	c := mustNew(t, DefaultConfig)

	// 900 = 2 * 450: windows start at 0 and 450 only.
	chunks := c.Chunk(strings.Join(numberedWords(900), " "))
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	if chunks[1].WordCount != 450 {
		t.Fatalf("expected last chunk of 450 words, got %d", chunks[1].WordCount)
	}
	for _, ch := range chunks {
		if ch.WordCount == 0 || ch.Text == "" {
			t.Fatalf("empty chunk emitted: %+v", ch)
		}
	}
}

// Walks many lengths and window shapes and checks the generation rule
// directly: window k starts at k*step, holds min(size, n-start) words, and
// every word is covered.
func TestChunk_GenerationRule(t *testing.T) {
	configs := []Config{
		{ChunkSize: 5, Overlap: 0},
		{ChunkSize: 5, Overlap: 2},
		{ChunkSize: 5, Overlap: 4},
		{ChunkSize: 1, Overlap: 0},
		{ChunkSize: 7, Overlap: 3},
	}
	for _, cfg := range configs {
		c := mustNew(t, cfg)
		step := cfg.Step()
		for n := 1; n <= 40; n++ {
			words := numberedWords(n)
			chunks := c.Chunk(strings.Join(words, " "))

			covered := make([]bool, n)
			for k, ch := range chunks {
				if ch.ID != k {
					t.Fatalf("cfg=%+v n=%d: chunk %d has id %d", cfg, n, k, ch.ID)
				}
				start := k * step
				if start >= n {
					t.Fatalf("cfg=%+v n=%d: chunk %d starts past the end", cfg, n, k)
				}
				end := min(start+cfg.ChunkSize, n)
				if ch.Text != strings.Join(words[start:end], " ") {
					t.Fatalf("cfg=%+v n=%d: chunk %d text mismatch", cfg, n, k)
				}
				if ch.WordCount != end-start {
					t.Fatalf("cfg=%+v n=%d: chunk %d word count %d, want %d", cfg, n, k, ch.WordCount, end-start)
				}
				if k < len(chunks)-1 && ch.WordCount != cfg.ChunkSize {
					t.Fatalf("cfg=%+v n=%d: non-final chunk %d has %d words", cfg, n, k, ch.WordCount)
				}
				for i := start; i < end; i++ {
					covered[i] = true
				}
			}
			for i, ok := range covered {
				if !ok {
					t.Fatalf("cfg=%+v n=%d: word %d not covered", cfg, n, i)
				}
			}
			if next := len(chunks) * step; next < n {
				t.Fatalf("cfg=%+v n=%d: stopped early, next start %d", cfg, n, next)
			}
		}
	}
}

func TestChunk_NormalizesWhitespace(t *testing.T) {
	c := mustNew(t, Config{ChunkSize: 10, Overlap: 0})

	chunks := c.Chunk("  alpha\tbeta\n\ngamma  ")
	if len(chunks) != 1 || chunks[0].Text != "alpha beta gamma" || chunks[0].WordCount != 3 {
		t.Fatalf("unexpected chunks: %+v", chunks)
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	cases := []Config{
		{ChunkSize: 0, Overlap: 0},
		{ChunkSize: 10, Overlap: -1},
		{ChunkSize: 10, Overlap: 10},
		{ChunkSize: 10, Overlap: 20},
	}
	for _, cfg := range cases {
		if _, err := New(cfg); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("New(%+v): expected ErrInvalidConfig, got %v", cfg, err)
		}
	}
}
