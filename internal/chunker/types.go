package chunker

import "errors"

// Chunk is one window of a document's words.
type Chunk struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	WordCount int    `json:"word_count"`
}

// Chunker splits normalized text into ordered chunks.
type Chunker interface {
	Chunk(text string) []Chunk

	// Name is used for logging.
	Name() string
}

// Config holds window parameters, both measured in words.
type Config struct {
	ChunkSize int
	Overlap   int
}

// DefaultConfig is 500-word windows overlapping by 50 words.
var DefaultConfig = Config{ChunkSize: 500, Overlap: 50}

var ErrInvalidConfig = errors.New("invalid chunker config")

// Step is how far the window start advances between chunks.
func (c Config) Step() int {
	return c.ChunkSize - c.Overlap
}
