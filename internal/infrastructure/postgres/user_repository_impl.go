package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hppyapp/hppy-backend/internal/domain/entity"
	"github.com/hppyapp/hppy-backend/internal/domain/repository"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx so the collection
// readers can run standalone or inside a purchase transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (phone, password_hash)
		VALUES ($1, $2)
		RETURNING id, notification_frequency, has_hatched, coins, created_at
	`, u.Phone, u.PasswordHash)

	if err := row.Scan(&u.ID, &u.NotificationFrequency, &u.HasHatched, &u.Coins, &u.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrConflict
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.getUser(ctx, `WHERE id = $1`, id)
}

func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (*entity.User, error) {
	return r.getUser(ctx, `WHERE phone = $1`, phone)
}

func (r *UserRepository) getUser(ctx context.Context, where string, arg any) (*entity.User, error) {
	u := &entity.User{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, phone, password_hash, notification_frequency, has_hatched, coins, created_at
		FROM users
	`+where, arg)

	if err := row.Scan(&u.ID, &u.Phone, &u.PasswordHash, &u.NotificationFrequency,
		&u.HasHatched, &u.Coins, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return u, nil
}

func (r *UserRepository) Settings(ctx context.Context, userID int64) (*entity.Settings, error) {
	return loadSettings(ctx, r.pool, userID)
}

func (r *UserRepository) UpdateSettings(ctx context.Context, userID int64, in repository.SettingsUpdate) (*entity.Settings, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Lock the row so concurrent settings writes serialize per user.
	row := tx.QueryRow(ctx, `
		UPDATE users
		SET notification_frequency = COALESCE($2, notification_frequency),
		    has_hatched            = COALESCE($3, has_hatched)
		WHERE id = $1
		RETURNING id
	`, userID, in.NotificationFrequency, in.HasHatched)
	var id int64
	if err := row.Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	if in.Animals != nil {
		if err := replaceAnimals(ctx, tx, userID, *in.Animals); err != nil {
			return nil, err
		}
	}
	if in.Items != nil {
		if err := replaceItems(ctx, tx, userID, *in.Items); err != nil {
			return nil, err
		}
	}

	s, err := loadSettings(ctx, tx, userID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *UserRepository) PurchaseItem(ctx context.Context, userID int64, item entity.InventoryItem, price int) (int, []entity.InventoryItem, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	coins, err := lockCoins(ctx, tx, userID)
	if err != nil {
		return 0, nil, err
	}
	if coins < price {
		return 0, nil, repository.ErrInsufficientFunds
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO user_items (user_id, item_id, name, equipped, animal, purchased_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, userID, item.ID, item.Name, item.Equipped, item.Animal, item.PurchaseTime); err != nil {
		return 0, nil, err
	}
	if _, err := tx.Exec(ctx, `UPDATE users SET coins = coins - $2 WHERE id = $1`, userID, price); err != nil {
		return 0, nil, err
	}

	items, err := loadItems(ctx, tx, userID)
	if err != nil {
		return 0, nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, nil, err
	}
	return coins - price, items, nil
}

func (r *UserRepository) PurchaseEgg(ctx context.Context, userID int64, price int, draw func(owned []string) (string, error)) (int, []string, string, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, nil, "", err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	coins, err := lockCoins(ctx, tx, userID)
	if err != nil {
		return 0, nil, "", err
	}
	if coins < price {
		return 0, nil, "", repository.ErrInsufficientFunds
	}

	owned, err := loadAnimals(ctx, tx, userID)
	if err != nil {
		return 0, nil, "", err
	}
	hatched, err := draw(owned)
	if err != nil {
		return 0, nil, "", err
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO user_animals (user_id, animal) VALUES ($1, $2)
	`, userID, hatched); err != nil {
		return 0, nil, "", err
	}
	if _, err := tx.Exec(ctx, `UPDATE users SET coins = coins - $2 WHERE id = $1`, userID, price); err != nil {
		return 0, nil, "", err
	}

	animals, err := loadAnimals(ctx, tx, userID)
	if err != nil {
		return 0, nil, "", err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, nil, "", err
	}
	return coins - price, animals, hatched, nil
}

// lockCoins reads the user's balance under FOR UPDATE, serializing every
// read-modify-write on the same user for the rest of the transaction.
func lockCoins(ctx context.Context, q querier, userID int64) (int, error) {
	var coins int
	row := q.QueryRow(ctx, `SELECT coins FROM users WHERE id = $1 FOR UPDATE`, userID)
	if err := row.Scan(&coins); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, repository.ErrNotFound
		}
		return 0, err
	}
	return coins, nil
}

func loadSettings(ctx context.Context, q querier, userID int64) (*entity.Settings, error) {
	s := &entity.Settings{}
	row := q.QueryRow(ctx, `
		SELECT notification_frequency, has_hatched, coins
		FROM users
		WHERE id = $1
	`, userID)
	if err := row.Scan(&s.NotificationFrequency, &s.HasHatched, &s.Coins); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	var err error
	if s.Animals, err = loadAnimals(ctx, q, userID); err != nil {
		return nil, err
	}
	if s.Items, err = loadItems(ctx, q, userID); err != nil {
		return nil, err
	}
	return s, nil
}

func loadAnimals(ctx context.Context, q querier, userID int64) ([]string, error) {
	rows, err := q.Query(ctx, `
		SELECT animal FROM user_animals WHERE user_id = $1 ORDER BY id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	animals := []string{}
	for rows.Next() {
		var a string
		if err := rows.Scan(&a); err != nil {
			return nil, err
		}
		animals = append(animals, a)
	}
	return animals, rows.Err()
}

func loadItems(ctx context.Context, q querier, userID int64) ([]entity.InventoryItem, error) {
	rows, err := q.Query(ctx, `
		SELECT item_id, name, equipped, animal, purchased_at
		FROM user_items
		WHERE user_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []entity.InventoryItem{}
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Equipped, &it.Animal, &it.PurchaseTime); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func replaceAnimals(ctx context.Context, q querier, userID int64, animals []string) error {
	if _, err := q.Exec(ctx, `DELETE FROM user_animals WHERE user_id = $1`, userID); err != nil {
		return err
	}
	for _, a := range animals {
		if _, err := q.Exec(ctx, `
			INSERT INTO user_animals (user_id, animal) VALUES ($1, $2)
			ON CONFLICT (user_id, animal) DO NOTHING
		`, userID, a); err != nil {
			return err
		}
	}
	return nil
}

func replaceItems(ctx context.Context, q querier, userID int64, items []entity.InventoryItem) error {
	if _, err := q.Exec(ctx, `DELETE FROM user_items WHERE user_id = $1`, userID); err != nil {
		return err
	}
	for _, it := range items {
		if _, err := q.Exec(ctx, `
			INSERT INTO user_items (user_id, item_id, name, equipped, animal, purchased_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, userID, it.ID, it.Name, it.Equipped, it.Animal, it.PurchaseTime); err != nil {
			return err
		}
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
