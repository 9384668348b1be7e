package rag

import (
	"context"
	"strings"
	"testing"

	"docchat/internal/chunker"
	"docchat/internal/kb"
)

type fakeCompleter struct {
	calls  int
	system string
	user   string
	answer string
}

func (f *fakeCompleter) Complete(_ context.Context, system, user string) string {
	f.calls++
	f.system = system
	f.user = user
	return f.answer
}

func newKB(texts ...string) *kb.KnowledgeBase {
	chunks := make([]chunker.Chunk, len(texts))
	for i, text := range texts {
		chunks[i] = chunker.Chunk{ID: i, Text: text, WordCount: len(strings.Fields(text))}
	}
	return kb.New("doc.txt", chunks)
}

func ids(results []ScoredChunk) []int {
	out := make([]int, len(results))
	for i, r := range results {
		out[i] = r.Chunk.ID
	}
	return out
}

func TestRetrieve_NoOverlap(t *testing.T) {
	base := newKB("the quick brown fox", "jumps over the lazy dog")

	if got := Retrieve("kubernetes operators", base, 3); len(got) != 0 {
		t.Fatalf("expected no results, got %v", ids(got))
	}
}

func TestRetrieve_UniqueMatchFirst(t *testing.T) {
	base := newKB("apples and pears", "invoices are due monthly", "bananas and kiwis")

	got := Retrieve("When are INVOICES due?", base, 3)
	if len(got) == 0 || got[0].Chunk.ID != 1 {
		t.Fatalf("expected chunk 1 first, got %v", ids(got))
	}
	if got[0].Score != 2 {
		t.Fatalf("expected score 2 (invoices, are), got %d", got[0].Score)
	}
}

func TestRetrieve_CountsDistinctWords(t *testing.T) {
	base := newKB("go go go go", "go rust")

	got := Retrieve("go go rust", base, 3)
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %v", ids(got))
	}
	if got[0].Chunk.ID != 1 || got[0].Score != 2 || got[1].Score != 1 {
		t.Fatalf("unexpected ranking: %+v", got)
	}
}

func TestRetrieve_TopKAndStableTies(t *testing.T) {
	base := newKB(
		"alpha one",
		"alpha beta two",
		"alpha three",
		"alpha four",
		"alpha beta five",
	)

	got := Retrieve("alpha beta", base, 3)
	want := []int{1, 4, 0}
	if len(got) != len(want) {
		t.Fatalf("expected %d results, got %v", len(want), ids(got))
	}
	for i := range want {
		if got[i].Chunk.ID != want[i] {
			t.Fatalf("expected order %v, got %v", want, ids(got))
		}
	}
}

func TestRetrieve_DefaultTopK(t *testing.T) {
	base := newKB("x a", "x b", "x c", "x d", "x e")

	if got := Retrieve("x", base, 0); len(got) != DefaultTopK {
		t.Fatalf("expected %d results, got %d", DefaultTopK, len(got))
	}
}

func TestRetrieve_NilKnowledgeBase(t *testing.T) {
	if got := Retrieve("anything", nil, 3); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt("What is due?", []chunker.Chunk{
		{ID: 2, Text: "second best"},
		{ID: 0, Text: "best match"},
	})

	if !strings.Contains(p.System, "strictly based on the provided document content") {
		t.Fatalf("unexpected system prompt: %s", p.System)
	}
	if !strings.Contains(p.System, Refusal) {
		t.Fatalf("system prompt should carry the refusal sentence")
	}
	wantContext := "Context from the document:\nsecond best\n\nbest match\n\nQuestion: What is due?\n\n"
	if !strings.HasPrefix(p.User, wantContext) {
		t.Fatalf("unexpected user prompt:\n%s", p.User)
	}
	if !strings.Contains(p.User, "Answer based ONLY on the context above") || !strings.Contains(p.User, Refusal) {
		t.Fatalf("user prompt should repeat the refusal instruction:\n%s", p.User)
	}
}

func TestEngine_RefusesWithoutCallingCompleter(t *testing.T) {
	fake := &fakeCompleter{answer: "should not be used"}
	engine := NewEngine(fake, 3)

	answer := engine.Answer(context.Background(), "quantum chromodynamics", newKB("cats sleep a lot"))

	if answer != Refusal {
		t.Fatalf("expected refusal, got %q", answer)
	}
	if fake.calls != 0 {
		t.Fatalf("expected zero completer calls, got %d", fake.calls)
	}
}

func TestEngine_ForwardsContext(t *testing.T) {
	fake := &fakeCompleter{answer: "They sleep."}
	engine := NewEngine(fake, 3)

	answer := engine.Answer(context.Background(), "what do cats do", newKB("dogs bark", "cats sleep a lot"))

	if answer != "They sleep." {
		t.Fatalf("unexpected answer %q", answer)
	}
	if fake.calls != 1 {
		t.Fatalf("expected one completer call, got %d", fake.calls)
	}
	if !strings.Contains(fake.user, "cats sleep a lot") || strings.Contains(fake.user, "dogs bark") {
		t.Fatalf("unexpected context:\n%s", fake.user)
	}
	if fake.system != systemPrompt {
		t.Fatalf("expected fixed system prompt")
	}
}
