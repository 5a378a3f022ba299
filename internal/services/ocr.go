package services

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// OCRService extracts text from image bytes via Tesseract. The language model
// is fixed at construction. Tesseract and its language data must be installed
// on the host (tesseract-ocr, tesseract-ocr-<lang>).
type OCRService struct {
	language string
}

func NewOCRService(language string) *OCRService {
	if language == "" {
		language = "eng"
	}
	return &OCRService{language: language}
}

// ExtractText runs a fresh Tesseract client over the raw bytes. One client
// per call keeps the cgo handle out of shared state.
func (s *OCRService) ExtractText(image []byte) (string, error) {
	if len(image) == 0 {
		return "", fmt.Errorf("image payload is empty")
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(s.language); err != nil {
		return "", fmt.Errorf("failed to set OCR language %q: %w", s.language, err)
	}
	if err := client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("failed to load image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}
