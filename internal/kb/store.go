package kb

import "sync"

// Store holds the current knowledge base, if any.
type Store interface {
	Set(kb *KnowledgeBase)
	// Get returns nil when nothing has been uploaded or after Clear.
	Get() *KnowledgeBase
	Clear()
}

// MemoryStore keeps the current knowledge base in process memory.
//
// Only the pointer swap is synchronized. An upload that is still extracting
// does not block chat requests, and two concurrent uploads race: the last Set
// wins.
type MemoryStore struct {
	mu      sync.RWMutex
	current *KnowledgeBase
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Set(kb *KnowledgeBase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = kb
}

func (s *MemoryStore) Get() *KnowledgeBase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}
