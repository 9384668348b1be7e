package kb

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
)

const lockName = ".kb.lock"

// FileName returns the artifact name for an uploaded file: the name without
// its last extension, suffixed with "_kb.json".
func FileName(filename string) string {
	base := filename
	if i := strings.LastIndex(base, "."); i >= 0 {
		base = base[:i]
	}
	return base + "_kb.json"
}

// Save writes kb as indented JSON under dir and returns the written path.
// Writers in other processes sharing dir are serialized by a lock file.
func Save(dir string, kb *KnowledgeBase) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create knowledge base dir: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(kb); err != nil {
		return "", fmt.Errorf("failed to encode knowledge base: %w", err)
	}

	lock := flock.New(filepath.Join(dir, lockName))
	if err := lock.Lock(); err != nil {
		return "", fmt.Errorf("cannot acquire knowledge base lock: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	path := filepath.Join(dir, FileName(kb.Filename))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("failed to write knowledge base: %w", err)
	}
	return path, nil
}
