package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"textlens-backend/internal/models"
)

type SummaryRepo struct {
	pool *pgxpool.Pool
}

func NewSummaryRepo(pool *pgxpool.Pool) *SummaryRepo {
	return &SummaryRepo{pool: pool}
}

func (r *SummaryRepo) Create(ctx context.Context, s *models.Summary) error {
	query := `INSERT INTO summaries (input_text, output_text)
		VALUES ($1, $2) RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query, s.InputText, s.OutputText).Scan(&s.ID, &s.CreatedAt)
}

func (r *SummaryRepo) GetByID(ctx context.Context, id int64) (*models.Summary, error) {
	s := &models.Summary{}
	query := `SELECT id, input_text, output_text, created_at FROM summaries WHERE id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(&s.ID, &s.InputText, &s.OutputText, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SummaryRepo) List(ctx context.Context, limit, offset int) ([]*models.Summary, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM summaries").Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, input_text, output_text, created_at FROM summaries
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var summaries []*models.Summary
	for rows.Next() {
		s := &models.Summary{}
		if err := rows.Scan(&s.ID, &s.InputText, &s.OutputText, &s.CreatedAt); err != nil {
			return nil, 0, err
		}
		summaries = append(summaries, s)
	}

	return summaries, total, rows.Err()
}
