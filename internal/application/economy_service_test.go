package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hppyapp/hppy-backend/internal/domain/entity"
	repo "github.com/hppyapp/hppy-backend/internal/domain/repository"
	"github.com/hppyapp/hppy-backend/internal/infrastructure/memory"
)

func newEconomyFixture(t *testing.T, coins int) (*EconomyService, *memory.Store, int64) {
	t.Helper()
	store := memory.NewStore()
	u := &entity.User{Phone: "5550100000", PasswordHash: "x"}
	if err := store.Create(context.Background(), u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if coins > 0 {
		// fund the account through the ledger path
		acts := NewActivityService(store, coins, testLogger())
		if _, _, err := acts.Log(context.Background(), u.ID, LogActivityInput{Name: "seed", Happiness: 50}); err != nil {
			t.Fatalf("fund account: %v", err)
		}
	}
	return NewEconomyService(store, testLogger()), store, u.ID
}

func TestSettingsDefaults(t *testing.T) {
	svc, _, userID := newEconomyFixture(t, 0)

	s, err := svc.Settings(context.Background(), userID)
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}
	if s.NotificationFrequency != "daily" {
		t.Errorf("notification_frequency = %q, want %q", s.NotificationFrequency, "daily")
	}
	if s.HasHatched {
		t.Error("has_hatched = true for a fresh account")
	}
	if s.Coins != 0 {
		t.Errorf("coins = %d, want 0", s.Coins)
	}
	if s.Animals == nil || len(s.Animals) != 0 {
		t.Errorf("animals = %#v, want empty non-nil slice", s.Animals)
	}
	if s.Items == nil || len(s.Items) != 0 {
		t.Errorf("items = %#v, want empty non-nil slice", s.Items)
	}

	if _, err := svc.Settings(context.Background(), 9999); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("missing user err = %v, want ErrUserNotFound", err)
	}
}

func TestUpdateSettingsPartial(t *testing.T) {
	svc, _, userID := newEconomyFixture(t, 0)

	freq := "weekly"
	s, err := svc.UpdateSettings(context.Background(), userID, repo.SettingsUpdate{NotificationFrequency: &freq})
	if err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	if s.NotificationFrequency != "weekly" {
		t.Errorf("notification_frequency = %q, want %q", s.NotificationFrequency, "weekly")
	}
	if s.HasHatched {
		t.Error("has_hatched changed by an unrelated update")
	}

	hatched := true
	animals := []string{"platypus"}
	s, err = svc.UpdateSettings(context.Background(), userID, repo.SettingsUpdate{HasHatched: &hatched, Animals: &animals})
	if err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	if !s.HasHatched {
		t.Error("has_hatched not updated")
	}
	if len(s.Animals) != 1 || s.Animals[0] != "platypus" {
		t.Errorf("animals = %#v, want [platypus]", s.Animals)
	}
	if s.NotificationFrequency != "weekly" {
		t.Error("notification_frequency lost by a later partial update")
	}
}

func TestUpdateSettingsItemsReplaceWholesale(t *testing.T) {
	svc, _, userID := newEconomyFixture(t, 0)

	animal := "cat"
	items := []entity.InventoryItem{
		{ID: 2, Name: "Red hat", Equipped: false, PurchaseTime: time.Now().UTC()},
		{ID: 3, Name: "Scarf", Equipped: false, PurchaseTime: time.Now().UTC()},
	}
	if _, err := svc.UpdateSettings(context.Background(), userID, repo.SettingsUpdate{Items: &items}); err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}

	// flip one equipped flag by resending the full list
	items[0].Equipped = true
	items[0].Animal = &animal
	s, err := svc.UpdateSettings(context.Background(), userID, repo.SettingsUpdate{Items: &items})
	if err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	if len(s.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(s.Items))
	}
	if !s.Items[0].Equipped || s.Items[0].Animal == nil || *s.Items[0].Animal != "cat" {
		t.Errorf("item 0 = %+v, want equipped on cat", s.Items[0])
	}
	if s.Items[1].Equipped {
		t.Errorf("item 1 = %+v, want unequipped", s.Items[1])
	}
}

func TestUpdateSettingsNoFields(t *testing.T) {
	svc, _, userID := newEconomyFixture(t, 0)

	if _, err := svc.UpdateSettings(context.Background(), userID, repo.SettingsUpdate{}); !errors.Is(err, ErrNoFields) {
		t.Errorf("empty update err = %v, want ErrNoFields", err)
	}
}

func TestPurchaseItem(t *testing.T) {
	svc, _, userID := newEconomyFixture(t, 100)

	res, err := svc.Purchase(context.Background(), userID, 2, "Red hat", 30)
	if err != nil {
		t.Fatalf("Purchase: %v", err)
	}
	if res.Coins != 70 {
		t.Errorf("coins = %d, want 70", res.Coins)
	}
	if len(res.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(res.Items))
	}
	item := res.Items[0]
	if item.ID != 2 || item.Name != "Red hat" || item.Equipped || item.Animal != nil {
		t.Errorf("item = %+v, want unequipped Red hat with no animal", item)
	}
	if item.PurchaseTime.IsZero() {
		t.Error("purchase not timestamped")
	}
	if res.HatchedAnimal != "" || res.Animals != nil {
		t.Errorf("regular purchase returned egg fields: %+v", res)
	}
}

func TestPurchaseInsufficientCoins(t *testing.T) {
	svc, store, userID := newEconomyFixture(t, 20)

	if _, err := svc.Purchase(context.Background(), userID, 2, "Red hat", 30); !errors.Is(err, ErrInsufficientCoins) {
		t.Errorf("err = %v, want ErrInsufficientCoins", err)
	}

	// failed purchase must not change state
	s, err := store.Settings(context.Background(), userID)
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}
	if s.Coins != 20 {
		t.Errorf("coins after failed purchase = %d, want 20", s.Coins)
	}
	if len(s.Items) != 0 {
		t.Errorf("items after failed purchase = %d, want 0", len(s.Items))
	}
}

func TestPurchaseEgg(t *testing.T) {
	svc, store, userID := newEconomyFixture(t, 200)
	svc.Intn = func(n int) int { return 0 }

	res, err := svc.Purchase(context.Background(), userID, EggItemID, "Egg", 200)
	if err != nil {
		t.Fatalf("Purchase: %v", err)
	}
	if res.Coins != 0 {
		t.Errorf("coins = %d, want 0", res.Coins)
	}
	if res.HatchedAnimal != "cat" {
		t.Errorf("hatched = %q, want %q", res.HatchedAnimal, "cat")
	}
	if len(res.Animals) != 1 || res.Animals[0] != "cat" {
		t.Errorf("animals = %#v, want [cat]", res.Animals)
	}
	if res.Items != nil {
		t.Errorf("egg purchase returned items: %#v", res.Items)
	}

	s, err := store.Settings(context.Background(), userID)
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}
	if len(s.Animals) != 1 || s.Animals[0] != "cat" {
		t.Errorf("stored animals = %#v, want [cat]", s.Animals)
	}
}

func TestPurchaseEggNeverDrawsOwned(t *testing.T) {
	svc, _, userID := newEconomyFixture(t, 600)
	svc.Intn = func(n int) int { return 0 }

	seen := map[string]bool{}
	for i := 0; i < len(EggAnimals); i++ {
		res, err := svc.Purchase(context.Background(), userID, EggItemID, "Egg", 200)
		if err != nil {
			t.Fatalf("egg %d: %v", i, err)
		}
		if seen[res.HatchedAnimal] {
			t.Fatalf("hatched %q twice", res.HatchedAnimal)
		}
		seen[res.HatchedAnimal] = true
	}
}

func TestPurchaseEggAllCollected(t *testing.T) {
	svc, store, userID := newEconomyFixture(t, 200)
	svc.Intn = func(n int) int { return 0 }

	animals := append([]string{}, EggAnimals...)
	if _, err := svc.UpdateSettings(context.Background(), userID, repo.SettingsUpdate{Animals: &animals}); err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}

	if _, err := svc.Purchase(context.Background(), userID, EggItemID, "Egg", 200); !errors.Is(err, ErrAllAnimalsCollected) {
		t.Errorf("err = %v, want ErrAllAnimalsCollected", err)
	}

	// aborted draw must not debit
	s, err := store.Settings(context.Background(), userID)
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}
	if s.Coins != 200 {
		t.Errorf("coins after aborted egg = %d, want 200", s.Coins)
	}
}

func TestConcurrentPurchasesCannotOverspend(t *testing.T) {
	svc, store, userID := newEconomyFixture(t, 30)

	const attempts = 10
	errs := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		go func() {
			_, err := svc.Purchase(context.Background(), userID, 2, "Red hat", 30)
			errs <- err
		}()
	}

	succeeded := 0
	for i := 0; i < attempts; i++ {
		if err := <-errs; err == nil {
			succeeded++
		} else if !errors.Is(err, ErrInsufficientCoins) {
			t.Errorf("unexpected err: %v", err)
		}
	}
	if succeeded != 1 {
		t.Errorf("successful purchases = %d, want exactly 1", succeeded)
	}

	s, err := store.Settings(context.Background(), userID)
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}
	if s.Coins != 0 {
		t.Errorf("final balance = %d, want 0", s.Coins)
	}
	if len(s.Items) != 1 {
		t.Errorf("items = %d, want 1", len(s.Items))
	}
}

func TestPurchaseUnknownUser(t *testing.T) {
	svc, _, _ := newEconomyFixture(t, 0)

	if _, err := svc.Purchase(context.Background(), 9999, 2, "Red hat", 10); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
	if _, err := svc.Purchase(context.Background(), 9999, EggItemID, "Egg", 10); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("egg err = %v, want ErrUserNotFound", err)
	}
}
