package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hppyapp/hppy-backend/internal/domain/repository"
)

type RecommendedRepository struct {
	pool *pgxpool.Pool
}

func NewRecommendedRepository(pool *pgxpool.Pool) *RecommendedRepository {
	return &RecommendedRepository{pool: pool}
}

func (r *RecommendedRepository) List(ctx context.Context, userID int64) ([]string, error) {
	return listRecommended(ctx, r.pool, userID)
}

func (r *RecommendedRepository) ReplaceAll(ctx context.Context, userID int64, names []string) ([]string, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
		DELETE FROM recommended_activities WHERE user_id = $1
	`, userID); err != nil {
		return nil, err
	}

	for _, name := range names {
		// Duplicates collapse on the (user_id, activity_name) constraint.
		if _, err := tx.Exec(ctx, `
			INSERT INTO recommended_activities (user_id, activity_name)
			VALUES ($1, $2)
			ON CONFLICT (user_id, activity_name) DO NOTHING
		`, userID, name); err != nil {
			return nil, err
		}
	}

	saved, err := listRecommended(ctx, tx, userID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return saved, nil
}

func listRecommended(ctx context.Context, q querier, userID int64) ([]string, error) {
	rows, err := q.Query(ctx, `
		SELECT activity_name
		FROM recommended_activities
		WHERE user_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

var _ repository.RecommendedRepository = (*RecommendedRepository)(nil)
