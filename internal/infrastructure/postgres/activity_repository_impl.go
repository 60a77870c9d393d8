package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hppyapp/hppy-backend/internal/domain/entity"
	"github.com/hppyapp/hppy-backend/internal/domain/repository"
)

type ActivityRepository struct {
	pool *pgxpool.Pool
}

func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{pool: pool}
}

func (r *ActivityRepository) CreateWithReward(ctx context.Context, a *entity.Activity, reward int) (int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		INSERT INTO activities (user_id, name, happiness, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, a.UserID, a.Name, a.Happiness, a.CreatedAt)
	if err := row.Scan(&a.ID); err != nil {
		// a live token for a deleted account trips the user_id FK
		if isForeignKeyViolation(err) {
			return 0, repository.ErrNotFound
		}
		return 0, err
	}

	var coins int
	row = tx.QueryRow(ctx, `
		UPDATE users SET coins = coins + $2 WHERE id = $1 RETURNING coins
	`, a.UserID, reward)
	if err := row.Scan(&coins); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, repository.ErrNotFound
		}
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return coins, nil
}

func (r *ActivityRepository) ListByUser(ctx context.Context, userID int64) ([]entity.Activity, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, name, happiness, created_at
		FROM activities
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := []entity.Activity{}
	for rows.Next() {
		var a entity.Activity
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.Happiness, &a.CreatedAt); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

func (r *ActivityRepository) Update(ctx context.Context, userID, id int64, name *string, happiness *int) (*entity.Activity, error) {
	a := &entity.Activity{}

	row := r.pool.QueryRow(ctx, `
		UPDATE activities
		SET name      = COALESCE($3, name),
		    happiness = COALESCE($4, happiness)
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, name, happiness, created_at
	`, id, userID, name, happiness)

	if err := row.Scan(&a.ID, &a.UserID, &a.Name, &a.Happiness, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *ActivityRepository) Delete(ctx context.Context, userID, id int64) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM activities WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ActivityRepository = (*ActivityRepository)(nil)
