package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"textlens-backend/internal/models"
)

// ─── Stubs ───

type stubAnalysis struct {
	result *models.AnalysisResult
	err    error
	calls  int
}

func (s *stubAnalysis) Analyze(ctx context.Context, input string, opts models.AnalysisOptions) (*models.AnalysisResult, error) {
	s.calls++
	return s.result, s.err
}

type stubExtractor struct {
	text  string
	err   error
	calls int
}

func (s *stubExtractor) ExtractText(filename string, data []byte) (string, error) {
	s.calls++
	return s.text, s.err
}

type stubOCR struct {
	text  string
	err   error
	calls int
}

func (s *stubOCR) ExtractText(image []byte) (string, error) {
	s.calls++
	return s.text, s.err
}

type stubSummarizer struct {
	summary *models.Summary
	err     error
	calls   int
}

func (s *stubSummarizer) Summarize(ctx context.Context, text string) (*models.Summary, error) {
	s.calls++
	return s.summary, s.err
}

type stubSummaryReader struct {
	summary   *models.Summary
	summaries []*models.Summary
	err       error
}

func (s *stubSummaryReader) GetByID(ctx context.Context, id int64) (*models.Summary, error) {
	return s.summary, s.err
}

func (s *stubSummaryReader) List(ctx context.Context, limit, offset int) ([]*models.Summary, int, error) {
	return s.summaries, len(s.summaries), s.err
}

// ─── Analyze ───

func TestAnalyze_ReturnsResult(t *testing.T) {
	analysis := &stubAnalysis{result: &models.AnalysisResult{
		Score:        75,
		Feedback:     "Solid work.",
		Strengths:    []string{"Clear"},
		Improvements: []string{"Tighten"},
	}}
	h := NewAnalyzeHandler(analysis, &stubExtractor{}, 10<<20)

	body, _ := json.Marshal(map[string]string{"text": "some prose"})
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	h.Analyze(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var result models.AnalysisResult
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatal(err)
	}
	if result.Score != 75 {
		t.Errorf("expected score 75, got %d", result.Score)
	}
}

func TestAnalyze_ServiceErrorIs500(t *testing.T) {
	analysis := &stubAnalysis{err: errors.New("input text is empty")}
	h := NewAnalyzeHandler(analysis, &stubExtractor{}, 10<<20)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{"text":""}`))
	rr := httptest.NewRecorder()

	h.Analyze(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}

	var resp map[string]string
	json.NewDecoder(rr.Body).Decode(&resp)
	if resp["error"] == "" {
		t.Error("expected a flat {error: message} body")
	}
}

func TestAnalyze_InvalidJSONIs400(t *testing.T) {
	h := NewAnalyzeHandler(&stubAnalysis{}, &stubExtractor{}, 10<<20)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()

	h.Analyze(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

// ─── Analyze image ───

func TestAnalyzeImage_NoFileIs400(t *testing.T) {
	ocr := &stubOCR{}
	h := NewImageHandler(ocr, 10<<20)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze-image", nil)
	rr := httptest.NewRecorder()

	h.AnalyzeImage(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}

	var resp map[string]string
	json.NewDecoder(rr.Body).Decode(&resp)
	if resp["error"] != "No image uploaded" {
		t.Errorf("unexpected error message: %q", resp["error"])
	}
	if ocr.calls != 0 {
		t.Error("OCR must not run when no file is attached")
	}
}

func TestAnalyzeImage_ExtractsText(t *testing.T) {
	ocr := &stubOCR{text: "hello from a screenshot"}
	h := NewImageHandler(ocr, 10<<20)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, _ := mw.CreateFormFile("image", "shot.png")
	fw.Write([]byte{0x89, 0x50, 0x4e, 0x47})
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/analyze-image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()

	h.AnalyzeImage(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp map[string]string
	json.NewDecoder(rr.Body).Decode(&resp)
	if resp["extractedText"] != "hello from a screenshot" {
		t.Errorf("unexpected extractedText: %q", resp["extractedText"])
	}
	if resp["feedback"] == "" {
		t.Error("expected a feedback string alongside the extracted text")
	}
}

func TestAnalyzeImage_OCRFailureIs500(t *testing.T) {
	h := NewImageHandler(&stubOCR{err: errors.New("tesseract not installed")}, 10<<20)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, _ := mw.CreateFormFile("image", "shot.png")
	fw.Write([]byte{1, 2, 3})
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/analyze-image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()

	h.AnalyzeImage(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}

	var resp map[string]string
	json.NewDecoder(rr.Body).Decode(&resp)
	if resp["error"] != "Failed to analyze image" {
		t.Errorf("unexpected error message: %q", resp["error"])
	}
}

// ─── Summarize ───

func TestSummarize_MissingTextIs400(t *testing.T) {
	summarizer := &stubSummarizer{}
	h := NewSummarizeHandler(summarizer, &stubSummaryReader{})

	for _, body := range []string{`{}`, `{"text":""}`, `{"text":"   "}`} {
		req := httptest.NewRequest(http.MethodPost, "/api/summarize", strings.NewReader(body))
		rr := httptest.NewRecorder()

		h.Summarize(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, rr.Code)
		}

		var resp map[string]string
		json.NewDecoder(rr.Body).Decode(&resp)
		if resp["error"] != "Text is required" {
			t.Errorf("body %s: unexpected error message %q", body, resp["error"])
		}
	}

	if summarizer.calls != 0 {
		t.Error("summarize service must not be called for missing text")
	}
}

func TestSummarize_ReturnsStoredRecord(t *testing.T) {
	now := time.Now()
	summarizer := &stubSummarizer{summary: &models.Summary{
		ID:         1,
		InputText:  "hello",
		OutputText: "Hi.",
		CreatedAt:  now,
	}}
	h := NewSummarizeHandler(summarizer, &stubSummaryReader{})

	req := httptest.NewRequest(http.MethodPost, "/api/summarize", strings.NewReader(`{"text":"hello"}`))
	rr := httptest.NewRecorder()

	h.Summarize(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp models.Summary
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.ID != 1 || resp.InputText != "hello" || resp.OutputText != "Hi." {
		t.Errorf("unexpected record: %+v", resp)
	}
	if resp.CreatedAt.IsZero() {
		t.Error("expected createdAt in the response")
	}
}

func TestSummarize_ServiceFailureIs500(t *testing.T) {
	h := NewSummarizeHandler(&stubSummarizer{err: errors.New("boom")}, &stubSummaryReader{})

	req := httptest.NewRequest(http.MethodPost, "/api/summarize", strings.NewReader(`{"text":"hello"}`))
	rr := httptest.NewRecorder()

	h.Summarize(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}

	var resp map[string]string
	json.NewDecoder(rr.Body).Decode(&resp)
	if resp["error"] != "Something went wrong" {
		t.Errorf("unexpected error message: %q", resp["error"])
	}
}

// ─── Summary reads ───

func TestGetSummary_InvalidIDIs400(t *testing.T) {
	h := NewSummarizeHandler(&stubSummarizer{}, &stubSummaryReader{})

	req := httptest.NewRequest(http.MethodGet, "/api/summaries/abc", nil)
	rr := httptest.NewRecorder()

	h.Get(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestListSummaries_DefaultsLimit(t *testing.T) {
	reader := &stubSummaryReader{summaries: []*models.Summary{
		{ID: 2, InputText: "b", OutputText: "B"},
		{ID: 1, InputText: "a", OutputText: "A"},
	}}
	h := NewSummarizeHandler(&stubSummarizer{}, reader)

	req := httptest.NewRequest(http.MethodGet, "/api/summaries", nil)
	rr := httptest.NewRecorder()

	h.List(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp struct {
		Summaries []*models.Summary `json:"summaries"`
		Total     int               `json:"total"`
		Limit     int               `json:"limit"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Total != 2 || len(resp.Summaries) != 2 {
		t.Errorf("unexpected list payload: total=%d len=%d", resp.Total, len(resp.Summaries))
	}
	if resp.Limit != 20 {
		t.Errorf("expected default limit 20, got %d", resp.Limit)
	}
}

// ─── Analyze document ───

func TestAnalyzeDocument_NoFileIs400(t *testing.T) {
	extractor := &stubExtractor{}
	h := NewAnalyzeHandler(&stubAnalysis{}, extractor, 10<<20)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze-document", nil)
	rr := httptest.NewRecorder()

	h.AnalyzeDocument(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if extractor.calls != 0 {
		t.Error("extractor must not run when no file is attached")
	}
}

func TestAnalyzeDocument_AnalyzesExtractedText(t *testing.T) {
	analysis := &stubAnalysis{result: &models.AnalysisResult{Score: 80}}
	extractor := &stubExtractor{text: "document body"}
	h := NewAnalyzeHandler(analysis, extractor, 10<<20)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, _ := mw.CreateFormFile("document", "notes.txt")
	fw.Write([]byte("document body"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/analyze-document", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()

	h.AnalyzeDocument(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if analysis.calls != 1 {
		t.Errorf("expected one analysis call, got %d", analysis.calls)
	}

	var resp struct {
		Result        *models.AnalysisResult `json:"result"`
		ExtractedText string                 `json:"extractedText"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.ExtractedText != "document body" {
		t.Errorf("unexpected extractedText: %q", resp.ExtractedText)
	}
	if resp.Result == nil || resp.Result.Score != 80 {
		t.Errorf("unexpected result: %+v", resp.Result)
	}
}
