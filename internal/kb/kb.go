package kb

import "docchat/internal/chunker"

// KnowledgeBase is the chunk set of one uploaded document. It is never
// modified after New returns it.
type KnowledgeBase struct {
	Filename    string          `json:"filename"`
	TotalChunks int             `json:"total_chunks"`
	Chunks      []chunker.Chunk `json:"chunks"`
}

func New(filename string, chunks []chunker.Chunk) *KnowledgeBase {
	return &KnowledgeBase{
		Filename:    filename,
		TotalChunks: len(chunks),
		Chunks:      chunks,
	}
}
