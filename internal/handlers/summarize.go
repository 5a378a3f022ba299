package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"textlens-backend/internal/models"
)

type summarizeService interface {
	Summarize(ctx context.Context, text string) (*models.Summary, error)
}

type summaryReader interface {
	GetByID(ctx context.Context, id int64) (*models.Summary, error)
	List(ctx context.Context, limit, offset int) ([]*models.Summary, int, error)
}

type SummarizeHandler struct {
	summarize summarizeService
	summaries summaryReader
}

func NewSummarizeHandler(summarize summarizeService, summaries summaryReader) *SummarizeHandler {
	return &SummarizeHandler{summarize: summarize, summaries: summaries}
}

func (h *SummarizeHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req models.SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Text is required")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "Text is required")
		return
	}

	summary, err := h.summarize.Summarize(r.Context(), req.Text)
	if err != nil {
		log.Printf("summarize failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (h *SummarizeHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	if limit <= 0 || limit > 50 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	summaries, total, err := h.summaries.List(r.Context(), limit, offset)
	if err != nil {
		log.Printf("list summaries failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"summaries": summaries,
		"total":     total,
		"limit":     limit,
		"offset":    offset,
	})
}

func (h *SummarizeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid summary ID")
		return
	}

	summary, err := h.summaries.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Summary not found")
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
