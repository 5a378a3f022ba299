package models

import "time"

// Summary is a persisted (input, output) summarization pair. Records are
// append-only: the service never updates or deletes them.
type Summary struct {
	ID         int64     `json:"id"`
	InputText  string    `json:"inputText"`
	OutputText string    `json:"outputText"`
	CreatedAt  time.Time `json:"createdAt"`
}

type SummarizeRequest struct {
	Text string `json:"text"`
}
