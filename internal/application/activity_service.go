package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hppyapp/hppy-backend/internal/domain/entity"
	repo "github.com/hppyapp/hppy-backend/internal/domain/repository"
)

type ActivityService struct {
	Activities  repo.ActivityRepository
	RewardCoins int
	Logger      *logrus.Logger
}

func NewActivityService(activities repo.ActivityRepository, rewardCoins int, logger *logrus.Logger) *ActivityService {
	return &ActivityService{Activities: activities, RewardCoins: rewardCoins, Logger: logger}
}

// LogActivityInput carries a new ledger entry. CreatedAt is the client's
// local timestamp when supplied (offline logging); nil means server time.
type LogActivityInput struct {
	Name      string
	Happiness int
	CreatedAt *time.Time
}

// Log appends an entry and credits the activity reward in one transaction.
// Returns the stored entry and the balance after the credit so the client
// can update without a second round trip.
func (s *ActivityService) Log(ctx context.Context, userID int64, in LogActivityInput) (*entity.Activity, int, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, 0, ErrNameRequired
	}
	if in.Happiness < 0 || in.Happiness > 100 {
		return nil, 0, ErrHappinessRange
	}

	ts := time.Now().UTC()
	if in.CreatedAt != nil {
		ts = *in.CreatedAt
	}

	a := &entity.Activity{UserID: userID, Name: in.Name, Happiness: in.Happiness, CreatedAt: ts}
	coins, err := s.Activities.CreateWithReward(ctx, a, s.RewardCoins)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, 0, ErrUserNotFound
		}
		return nil, 0, err
	}
	return a, coins, nil
}

// List returns the user's entries, newest first.
func (s *ActivityService) List(ctx context.Context, userID int64) ([]entity.Activity, error) {
	return s.Activities.ListByUser(ctx, userID)
}

// Update changes name and/or happiness of an entry the user owns. Nil fields
// are left unchanged; both nil is an error.
func (s *ActivityService) Update(ctx context.Context, userID, id int64, name *string, happiness *int) (*entity.Activity, error) {
	if name == nil && happiness == nil {
		return nil, ErrNoFields
	}
	if happiness != nil && (*happiness < 0 || *happiness > 100) {
		return nil, ErrHappinessRange
	}

	a, err := s.Activities.Update(ctx, userID, id, name, happiness)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}
	return a, nil
}

// Delete removes an entry the user owns.
func (s *ActivityService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.Activities.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrActivityNotFound
		}
		return err
	}
	return nil
}
