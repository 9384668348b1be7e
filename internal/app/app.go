package app

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"docchat/internal/chunker"
	"docchat/internal/config"
	"docchat/internal/kb"
	"docchat/internal/rag"
)

type App struct {
	cfg     *config.Config
	store   kb.Store
	engine  *rag.Engine
	chunker chunker.Chunker
}

// New wires the upload and chat pipelines around store and completer.
func New(cfg *config.Config, store kb.Store, completer rag.Completer) (*App, error) {
	ch, err := chunker.New(chunker.Config{
		ChunkSize: cfg.ChunkSize,
		Overlap:   cfg.ChunkOverlap,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create chunker: %w", err)
	}

	return &App{
		cfg:     cfg,
		store:   store,
		engine:  rag.NewEngine(completer, cfg.TopK),
		chunker: ch,
	}, nil
}

// Init creates the upload and knowledge base directories.
func (a *App) Init() error {
	for _, dir := range []string{a.cfg.UploadDir, a.cfg.KnowledgeBaseDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	log.Printf("Upload directory: %s", a.cfg.UploadDir)
	log.Printf("Knowledge base directory: %s", a.cfg.KnowledgeBaseDir)
	return nil
}

// Handler returns the HTTP API with middleware applied.
func (a *App) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", a.handleHealth)
	mux.Handle("POST /upload", recoverWith("Error processing file", http.HandlerFunc(a.handleUpload)))
	mux.Handle("POST /chat", recoverWith("Error generating response", http.HandlerFunc(a.handleChat)))
	mux.HandleFunc("POST /reset", a.handleReset)
	mux.HandleFunc("GET /status", a.handleStatus)

	var h http.Handler = mux
	h = limitBody(a.cfg.MaxUploadBytes, h)
	h = cors(a.cfg.CORSAllowOrigin, h)
	h = logRequests(h)
	return h
}
