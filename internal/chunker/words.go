package chunker

import (
	"fmt"
	"log"
	"strings"
)

// WordChunker emits fixed-size word windows that overlap by Config.Overlap words.
type WordChunker struct {
	config Config
}

// New validates cfg and returns a chunker. A step below one would never
// advance, so it is rejected here rather than looping at chunk time.
func New(cfg Config) (*WordChunker, error) {
	if cfg.ChunkSize < 1 {
		return nil, fmt.Errorf("%w: chunk size %d", ErrInvalidConfig, cfg.ChunkSize)
	}
	if cfg.Overlap < 0 {
		return nil, fmt.Errorf("%w: negative overlap %d", ErrInvalidConfig, cfg.Overlap)
	}
	if cfg.Step() < 1 {
		return nil, fmt.Errorf("%w: overlap %d leaves no step for chunk size %d", ErrInvalidConfig, cfg.Overlap, cfg.ChunkSize)
	}
	return &WordChunker{config: cfg}, nil
}

func (w *WordChunker) Name() string {
	return "words"
}

func (w *WordChunker) Chunk(text string) []Chunk {
	words := strings.Fields(text)
	step := w.config.Step()

	var chunks []Chunk
	for i := 0; i < len(words); i += step {
		end := min(i+w.config.ChunkSize, len(words))
		chunks = append(chunks, CreateChunk(len(chunks), words[i:end]))
	}

	log.Printf("✅ [%s] Created %d chunks from %d words", w.Name(), len(chunks), len(words))
	return chunks
}

// CreateChunk joins words with single spaces.
func CreateChunk(id int, words []string) Chunk {
	return Chunk{
		ID:        id,
		Text:      strings.Join(words, " "),
		WordCount: len(words),
	}
}
