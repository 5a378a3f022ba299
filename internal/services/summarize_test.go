package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"textlens-backend/internal/models"
)

type stubSummaryStore struct {
	created *models.Summary
	err     error
}

func (s *stubSummaryStore) Create(ctx context.Context, summary *models.Summary) error {
	if s.err != nil {
		return s.err
	}
	summary.ID = 1
	summary.CreatedAt = time.Now()
	s.created = summary
	return nil
}

func TestSummarize_PersistsPair(t *testing.T) {
	ai := &stubCompleter{reply: "Hi."}
	store := &stubSummaryStore{}
	svc := NewSummarizeService(ai, store)

	summary, err := svc.Summarize(context.Background(), "hello")
	if err != nil {
		t.Fatal(err)
	}

	if summary.InputText != "hello" || summary.OutputText != "Hi." {
		t.Errorf("unexpected pair: %q -> %q", summary.InputText, summary.OutputText)
	}
	if summary.ID == 0 {
		t.Error("expected a generated id")
	}
	if summary.CreatedAt.IsZero() {
		t.Error("expected a created_at timestamp")
	}
	if store.created == nil {
		t.Error("expected the record to reach the store")
	}
}

func TestSummarize_EmptyReplyNotPersisted(t *testing.T) {
	store := &stubSummaryStore{}
	svc := NewSummarizeService(&stubCompleter{reply: "  "}, store)

	if _, err := svc.Summarize(context.Background(), "hello"); err == nil {
		t.Fatal("expected error for empty AI reply")
	}
	if store.created != nil {
		t.Error("nothing should be persisted on an empty reply")
	}
}

func TestSummarize_StoreErrorSurfaces(t *testing.T) {
	store := &stubSummaryStore{err: errors.New("connection refused")}
	svc := NewSummarizeService(&stubCompleter{reply: "Hi."}, store)

	if _, err := svc.Summarize(context.Background(), "hello"); err == nil {
		t.Fatal("expected store error to surface")
	}
}
