package rag

import (
	"sort"
	"strings"

	"docchat/internal/chunker"
	"docchat/internal/kb"
)

const DefaultTopK = 3

// ScoredChunk is a retrieval hit. Score counts the distinct lowercase words
// shared by the query and the chunk.
type ScoredChunk struct {
	Chunk chunker.Chunk
	Score int
}

// Retrieve returns up to topK chunks sharing at least one word with the
// query, best first. Equal scores keep chunk order.
func Retrieve(query string, base *kb.KnowledgeBase, topK int) []ScoredChunk {
	if base == nil {
		return nil
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	queryWords := wordSet(query)
	if len(queryWords) == 0 {
		return nil
	}

	var scored []ScoredChunk
	for _, ch := range base.Chunks {
		score := overlap(queryWords, ch.Text)
		if score == 0 {
			continue
		}
		scored = append(scored, ScoredChunk{Chunk: ch, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > topK {
		scored = scored[:topK]
	}
	return scored
}

func wordSet(text string) map[string]struct{} {
	words := strings.Fields(strings.ToLower(text))
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func overlap(queryWords map[string]struct{}, text string) int {
	seen := make(map[string]struct{})
	n := 0
	for _, w := range strings.Fields(strings.ToLower(text)) {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		if _, ok := queryWords[w]; ok {
			n++
		}
	}
	return n
}
