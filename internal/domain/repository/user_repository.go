package repository

import (
	"context"
	"errors"

	"github.com/hppyapp/hppy-backend/internal/domain/entity"
)

// Storage-level sentinels. Services translate these into user-facing errors.
var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// SettingsUpdate is a partial settings write. Nil fields are left untouched;
// a non-nil Animals or Items replaces the stored collection wholesale.
type SettingsUpdate struct {
	NotificationFrequency *string
	HasHatched            *bool
	Animals               *[]string
	Items                 *[]entity.InventoryItem
}

// Empty reports whether the update carries no fields at all.
func (u SettingsUpdate) Empty() bool {
	return u.NotificationFrequency == nil && u.HasHatched == nil && u.Animals == nil && u.Items == nil
}

// UserRepository defines account and user-economy database operations.
//
// PurchaseItem and PurchaseEgg run inside a single transaction that locks
// the user row, so concurrent purchases for the same user serialize and at
// most one can succeed per balance check. The draw callback passed to
// PurchaseEgg receives the animals the user already owns and either picks
// the hatched one or returns an error to abort the purchase.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByPhone(ctx context.Context, phone string) (*entity.User, error)

	Settings(ctx context.Context, userID int64) (*entity.Settings, error)
	UpdateSettings(ctx context.Context, userID int64, in SettingsUpdate) (*entity.Settings, error)

	PurchaseItem(ctx context.Context, userID int64, item entity.InventoryItem, price int) (coins int, items []entity.InventoryItem, err error)
	PurchaseEgg(ctx context.Context, userID int64, price int, draw func(owned []string) (string, error)) (coins int, animals []string, hatched string, err error)
}
