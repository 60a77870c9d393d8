package repository

import (
	"context"

	"github.com/hppyapp/hppy-backend/internal/domain/entity"
)

// ActivityRepository defines activity-ledger database operations.
// CreateWithReward inserts the entry and credits the user's coin balance in
// the same transaction, returning the balance after the credit.
type ActivityRepository interface {
	CreateWithReward(ctx context.Context, a *entity.Activity, reward int) (coins int, err error)
	ListByUser(ctx context.Context, userID int64) ([]entity.Activity, error)
	Update(ctx context.Context, userID, id int64, name *string, happiness *int) (*entity.Activity, error)
	Delete(ctx context.Context, userID, id int64) error
}
