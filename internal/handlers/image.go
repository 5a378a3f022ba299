package handlers

import (
	"io"
	"log"
	"net/http"
)

type ocrService interface {
	ExtractText(image []byte) (string, error)
}

type ImageHandler struct {
	ocr            ocrService
	maxUploadBytes int64
}

func NewImageHandler(ocr ocrService, maxUploadBytes int64) *ImageHandler {
	return &ImageHandler{ocr: ocr, maxUploadBytes: maxUploadBytes}
}

// AnalyzeImage runs OCR over an uploaded screenshot and returns the extracted
// text. The extracted text is not re-analyzed; clients feed it back through
// /api/analyze themselves.
func (h *ImageHandler) AnalyzeImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "No image uploaded")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No image uploaded")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("image read failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to analyze image")
		return
	}

	text, err := h.ocr.ExtractText(data)
	if err != nil {
		log.Printf("OCR failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to analyze image")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"feedback":      "Image analysis complete. Extracted text is included below.",
		"extractedText": text,
	})
}
