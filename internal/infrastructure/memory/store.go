// Package memory holds an in-memory implementation of the repository
// interfaces. It backs the service and handler tests and is handy for
// running the API without Postgres during client development.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/hppyapp/hppy-backend/internal/domain/entity"
	"github.com/hppyapp/hppy-backend/internal/domain/repository"
)

// Store implements UserRepository, ActivityRepository and
// RecommendedRepository over plain maps. A single mutex stands in for the
// row locking the Postgres implementation gets from FOR UPDATE.
type Store struct {
	mu           sync.Mutex
	nextUser     int64
	nextActivity int64
	users        map[int64]*entity.User
	animals      map[int64][]string
	items        map[int64][]entity.InventoryItem
	activities   map[int64][]entity.Activity
	recommended  map[int64][]string
}

func NewStore() *Store {
	return &Store{
		users:       map[int64]*entity.User{},
		animals:     map[int64][]string{},
		items:       map[int64][]entity.InventoryItem{},
		activities:  map[int64][]entity.Activity{},
		recommended: map[int64][]string{},
	}
}

func (s *Store) Create(_ context.Context, u *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Phone == u.Phone {
			return repository.ErrConflict
		}
	}
	s.nextUser++
	u.ID = s.nextUser
	if u.NotificationFrequency == "" {
		u.NotificationFrequency = "daily"
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (s *Store) GetByID(_ context.Context, id int64) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *Store) GetByPhone(_ context.Context, phone string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Phone == phone {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *Store) Settings(_ context.Context, userID int64) (*entity.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settingsLocked(userID)
}

func (s *Store) settingsLocked(userID int64) (*entity.Settings, error) {
	u, ok := s.users[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &entity.Settings{
		NotificationFrequency: u.NotificationFrequency,
		HasHatched:            u.HasHatched,
		Animals:               append([]string{}, s.animals[userID]...),
		Items:                 append([]entity.InventoryItem{}, s.items[userID]...),
		Coins:                 u.Coins,
	}, nil
}

func (s *Store) UpdateSettings(_ context.Context, userID int64, in repository.SettingsUpdate) (*entity.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if in.NotificationFrequency != nil {
		u.NotificationFrequency = *in.NotificationFrequency
	}
	if in.HasHatched != nil {
		u.HasHatched = *in.HasHatched
	}
	if in.Animals != nil {
		seen := map[string]struct{}{}
		animals := []string{}
		for _, a := range *in.Animals {
			if _, dup := seen[a]; dup {
				continue
			}
			seen[a] = struct{}{}
			animals = append(animals, a)
		}
		s.animals[userID] = animals
	}
	if in.Items != nil {
		s.items[userID] = append([]entity.InventoryItem{}, *in.Items...)
	}
	return s.settingsLocked(userID)
}

func (s *Store) PurchaseItem(_ context.Context, userID int64, item entity.InventoryItem, price int) (int, []entity.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return 0, nil, repository.ErrNotFound
	}
	if u.Coins < price {
		return 0, nil, repository.ErrInsufficientFunds
	}
	u.Coins -= price
	s.items[userID] = append(s.items[userID], item)
	return u.Coins, append([]entity.InventoryItem{}, s.items[userID]...), nil
}

func (s *Store) PurchaseEgg(_ context.Context, userID int64, price int, draw func(owned []string) (string, error)) (int, []string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return 0, nil, "", repository.ErrNotFound
	}
	if u.Coins < price {
		return 0, nil, "", repository.ErrInsufficientFunds
	}
	hatched, err := draw(append([]string{}, s.animals[userID]...))
	if err != nil {
		return 0, nil, "", err
	}
	u.Coins -= price
	s.animals[userID] = append(s.animals[userID], hatched)
	return u.Coins, append([]string{}, s.animals[userID]...), hatched, nil
}

func (s *Store) CreateWithReward(_ context.Context, a *entity.Activity, reward int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[a.UserID]
	if !ok {
		return 0, repository.ErrNotFound
	}
	s.nextActivity++
	a.ID = s.nextActivity
	s.activities[a.UserID] = append(s.activities[a.UserID], *a)
	u.Coins += reward
	return u.Coins, nil
}

func (s *Store) ListByUser(_ context.Context, userID int64) ([]entity.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := append([]entity.Activity{}, s.activities[userID]...)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *Store) Update(_ context.Context, userID, id int64, name *string, happiness *int) (*entity.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.activities[userID]
	for i := range list {
		if list[i].ID != id {
			continue
		}
		if name != nil {
			list[i].Name = *name
		}
		if happiness != nil {
			list[i].Happiness = *happiness
		}
		cp := list[i]
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (s *Store) Delete(_ context.Context, userID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.activities[userID]
	for i := range list {
		if list[i].ID == id {
			s.activities[userID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *Store) List(_ context.Context, userID int64) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.recommended[userID]...), nil
}

func (s *Store) ReplaceAll(_ context.Context, userID int64, names []string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := map[string]struct{}{}
	saved := []string{}
	for _, n := range names {
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		saved = append(saved, n)
	}
	s.recommended[userID] = saved
	return append([]string{}, saved...), nil
}

var (
	_ repository.UserRepository        = (*Store)(nil)
	_ repository.ActivityRepository    = (*Store)(nil)
	_ repository.RecommendedRepository = (*Store)(nil)
)
