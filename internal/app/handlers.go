package app

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
)

const (
	msgNoDocument     = "No document uploaded. Please upload a document first."
	msgNoMessage      = "No message provided"
	msgEmptyMessage   = "Message cannot be empty"
	msgResetDone      = "Knowledge base reset successfully"
	msgUploadTooLarge = "File too large"
)

type errorResponse struct {
	Error string `json:"error"`
}

type chatRequest struct {
	Message *string `json:"message"`
}

type chatResponse struct {
	Response string `json:"response"`
	Source   string `json:"source"`
}

type statusResponse struct {
	HasDocument bool   `json:"has_document"`
	Filename    string `json:"filename,omitempty"`
	Chunks      int    `json:"chunks,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("⚠️  Failed to write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (a *App) handleChat(w http.ResponseWriter, r *http.Request) {
	// One snapshot serves the whole request, even if an upload replaces it meanwhile.
	base := a.store.Get()
	if base == nil {
		writeError(w, http.StatusBadRequest, msgNoDocument)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == nil {
		writeError(w, http.StatusBadRequest, msgNoMessage)
		return
	}
	if strings.TrimSpace(*req.Message) == "" {
		writeError(w, http.StatusBadRequest, msgEmptyMessage)
		return
	}

	answer := a.engine.Answer(r.Context(), *req.Message, base)

	writeJSON(w, http.StatusOK, chatResponse{
		Response: answer,
		Source:   base.Filename,
	})
}

func (a *App) handleReset(w http.ResponseWriter, r *http.Request) {
	a.store.Clear()
	log.Printf("🧹 Knowledge base reset")
	writeJSON(w, http.StatusOK, messageResponse{Message: msgResetDone})
}

func (a *App) handleStatus(w http.ResponseWriter, r *http.Request) {
	base := a.store.Get()
	if base == nil {
		writeJSON(w, http.StatusOK, statusResponse{HasDocument: false})
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{
		HasDocument: true,
		Filename:    base.Filename,
		Chunks:      base.TotalChunks,
	})
}
