package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"textlens-backend/internal/models"
)

type analysisService interface {
	Analyze(ctx context.Context, input string, opts models.AnalysisOptions) (*models.AnalysisResult, error)
}

type documentExtractor interface {
	ExtractText(filename string, data []byte) (string, error)
}

type AnalyzeHandler struct {
	analysis       analysisService
	extractor      documentExtractor
	maxUploadBytes int64
}

func NewAnalyzeHandler(analysis analysisService, extractor documentExtractor, maxUploadBytes int64) *AnalyzeHandler {
	return &AnalyzeHandler{
		analysis:       analysis,
		extractor:      extractor,
		maxUploadBytes: maxUploadBytes,
	}
}

func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	opts := models.AnalysisOptions{}
	if req.Options != nil {
		opts = *req.Options
	}

	result, err := h.analysis.Analyze(r.Context(), req.Text, opts)
	if err != nil {
		log.Printf("analyze failed: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// AnalyzeDocument accepts a multipart "document" upload (pdf or plain text),
// extracts its text, and runs it through the same analysis pipeline.
func (h *AnalyzeHandler) AnalyzeDocument(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "No document uploaded")
		return
	}

	file, header, err := r.FormFile("document")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No document uploaded")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("document read failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to analyze document")
		return
	}

	text, err := h.extractor.ExtractText(header.Filename, data)
	if err != nil {
		log.Printf("document extraction failed (%s): %v", header.Filename, err)
		writeError(w, http.StatusBadRequest, "Could not extract text from document")
		return
	}

	opts := models.AnalysisOptions{}
	if raw := r.FormValue("options"); raw != "" {
		json.Unmarshal([]byte(raw), &opts)
	}

	result, err := h.analysis.Analyze(r.Context(), text, opts)
	if err != nil {
		log.Printf("document analysis failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to analyze document")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"result":        result,
		"extractedText": text,
	})
}
