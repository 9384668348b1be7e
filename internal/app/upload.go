package app

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"docchat/internal/document"
	"docchat/internal/kb"
)

const (
	minTextLength = 10
	previewLength = 200

	msgNoFile       = "No file provided"
	msgNoSelection  = "No file selected"
	msgInvalidType  = "Invalid file type. Only PDF and TXT allowed"
	msgTooShort     = "Could not extract text from file or file is too short"
	msgUploadedDone = "File processed successfully"
)

var errTooShort = errors.New(msgTooShort)

type uploadResponse struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
	Chunks   int    `json:"chunks"`
	Preview  string `json:"preview"`
}

func (a *App) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(a.cfg.MaxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, msgUploadTooLarge)
			return
		}
		writeError(w, http.StatusBadRequest, msgNoFile)
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	files := r.MultipartForm.File["file"]
	if len(files) == 0 {
		// multipart keeps a part with an empty filename as a plain value
		if _, ok := r.MultipartForm.Value["file"]; ok {
			writeError(w, http.StatusBadRequest, msgNoSelection)
			return
		}
		writeError(w, http.StatusBadRequest, msgNoFile)
		return
	}
	header := files[0]
	if header.Filename == "" {
		writeError(w, http.StatusBadRequest, msgNoSelection)
		return
	}

	filename := secureFilename(header.Filename)
	kind, ok := document.KindFromFilename(filename)
	if !ok {
		writeError(w, http.StatusBadRequest, msgInvalidType)
		return
	}

	resp, err := a.processUpload(header, filename, kind)
	if errors.Is(err, errTooShort) {
		writeError(w, http.StatusBadRequest, msgTooShort)
		return
	}
	if err != nil {
		log.Printf("❌ Processing failed: %v", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Error processing file: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// processUpload runs extract, chunk, persist and finally replaces the current
// knowledge base. The stored upload is removed on every path.
func (a *App) processUpload(header *multipart.FileHeader, filename string, kind document.Kind) (*uploadResponse, error) {
	path, err := a.saveUpload(header, filename)
	if err != nil {
		return nil, err
	}
	defer a.removeUpload(path)

	log.Printf("📄 File received: %s (%d bytes)", filename, header.Size)

	text, err := document.Extract(path, kind)
	if err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(strings.TrimSpace(text)) < minTextLength {
		return nil, errTooShort
	}

	chunks := a.chunker.Chunk(text)
	base := kb.New(filename, chunks)

	kbPath, err := kb.Save(a.cfg.KnowledgeBaseDir, base)
	if err != nil {
		return nil, err
	}
	log.Printf("💾 Knowledge base saved to: %s", kbPath)

	a.store.Set(base)
	log.Printf("📦 %s split into %d chunks", filename, len(chunks))

	return &uploadResponse{
		Message:  msgUploadedDone,
		Filename: filename,
		Chunks:   len(chunks),
		Preview:  preview(text),
	}, nil
}

// saveUpload copies the uploaded part under the upload dir with a unique prefix.
func (a *App) saveUpload(header *multipart.FileHeader, filename string) (string, error) {
	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(a.cfg.UploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	path := filepath.Join(a.cfg.UploadDir, uuid.NewString()+"_"+filename)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to save upload: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to save upload: %w", err)
	}
	return path, nil
}

func (a *App) removeUpload(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("⚠️  Failed to remove upload %s: %v", path, err)
	}
}

func preview(text string) string {
	if utf8.RuneCountInString(text) <= previewLength {
		return text
	}
	return string([]rune(text)[:previewLength]) + "..."
}
