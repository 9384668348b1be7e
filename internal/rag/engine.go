package rag

import (
	"context"
	"log"

	"docchat/internal/chunker"
	"docchat/internal/kb"
)

// Completer turns a prompt into answer text. Implementations report upstream
// failures inside the returned text.
type Completer interface {
	Complete(ctx context.Context, system, user string) string
}

type Engine struct {
	completer Completer
	topK      int
}

func NewEngine(completer Completer, topK int) *Engine {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Engine{completer: completer, topK: topK}
}

// Answer retrieves context for query from base and asks the completer. When
// nothing matches, Refusal is returned without calling the completer.
func (e *Engine) Answer(ctx context.Context, query string, base *kb.KnowledgeBase) string {
	results := Retrieve(query, base, e.topK)
	log.Printf("🔍 Found %d relevant chunks", len(results))

	if len(results) == 0 {
		return Refusal
	}

	chunks := make([]chunker.Chunk, len(results))
	for i, r := range results {
		chunks[i] = r.Chunk
	}

	prompt := BuildPrompt(query, chunks)
	log.Printf("🤖 Asking LLM...")
	return e.completer.Complete(ctx, prompt.System, prompt.User)
}
