package application

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hppyapp/hppy-backend/internal/domain/entity"
	repo "github.com/hppyapp/hppy-backend/internal/domain/repository"
)

type EconomyService struct {
	Users  repo.UserRepository
	Logger *logrus.Logger
	Intn   func(n int) int // rand source for egg draws
}

func NewEconomyService(users repo.UserRepository, logger *logrus.Logger) *EconomyService {
	return &EconomyService{Users: users, Logger: logger, Intn: rand.Intn}
}

// Settings returns preferences, coin balance and collections for a user.
func (s *EconomyService) Settings(ctx context.Context, userID int64) (*entity.Settings, error) {
	settings, err := s.Users.Settings(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return settings, nil
}

// UpdateSettings applies a partial settings write. A provided animals or
// items list replaces the stored collection wholesale; callers resend the
// full desired list even to flip one equipped flag.
func (s *EconomyService) UpdateSettings(ctx context.Context, userID int64, in repo.SettingsUpdate) (*entity.Settings, error) {
	if in.Empty() {
		return nil, ErrNoFields
	}
	settings, err := s.Users.UpdateSettings(ctx, userID, in)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return settings, nil
}

// PurchaseResult is the post-purchase state the client needs. Exactly one of
// Items (regular purchase) or Animals+HatchedAnimal (egg) is populated.
type PurchaseResult struct {
	Coins         int
	Items         []entity.InventoryItem
	Animals       []string
	HatchedAnimal string
}

// Purchase debits the price and credits either a hatched animal (egg) or an
// inventory item. The repository serializes purchases per user, so a balance
// can never be spent twice by racing requests.
func (s *EconomyService) Purchase(ctx context.Context, userID int64, itemID int, itemName string, price int) (*PurchaseResult, error) {
	if itemID == EggItemID {
		coins, animals, hatched, err := s.Users.PurchaseEgg(ctx, userID, price, func(owned []string) (string, error) {
			return DrawEggAnimal(owned, s.Intn)
		})
		if err != nil {
			return nil, s.mapPurchaseErr(err)
		}
		return &PurchaseResult{Coins: coins, Animals: animals, HatchedAnimal: hatched}, nil
	}

	item := entity.InventoryItem{
		ID:           itemID,
		Name:         itemName,
		Equipped:     false,
		Animal:       nil,
		PurchaseTime: time.Now().UTC(),
	}
	coins, items, err := s.Users.PurchaseItem(ctx, userID, item, price)
	if err != nil {
		return nil, s.mapPurchaseErr(err)
	}
	return &PurchaseResult{Coins: coins, Items: items}, nil
}

func (s *EconomyService) mapPurchaseErr(err error) error {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return ErrUserNotFound
	case errors.Is(err, repo.ErrInsufficientFunds):
		return ErrInsufficientCoins
	default:
		return err
	}
}
