package application

import (
	"errors"
	"testing"
)

func TestDrawEggAnimalPicksFromUnowned(t *testing.T) {
	// first unowned with no owned animals is "cat"
	got, err := DrawEggAnimal(nil, func(n int) int { return 0 })
	if err != nil {
		t.Fatalf("DrawEggAnimal: %v", err)
	}
	if got != "cat" {
		t.Errorf("draw = %q, want %q", got, "cat")
	}

	got, err = DrawEggAnimal(nil, func(n int) int { return n - 1 })
	if err != nil {
		t.Fatalf("DrawEggAnimal: %v", err)
	}
	if got != "raccoon" {
		t.Errorf("draw = %q, want %q", got, "raccoon")
	}
}

func TestDrawEggAnimalExcludesOwned(t *testing.T) {
	for i := 0; i < len(EggAnimals); i++ {
		i := i
		got, err := DrawEggAnimal([]string{"cat"}, func(n int) int { return i % n })
		if err != nil {
			t.Fatalf("DrawEggAnimal: %v", err)
		}
		if got == "cat" {
			t.Fatal("drew an animal the user already owns")
		}
	}
}

func TestDrawEggAnimalIgnoresNonEggAnimals(t *testing.T) {
	// owning the platypus must not shrink the egg pool
	got, err := DrawEggAnimal([]string{"platypus"}, func(n int) int {
		if n != len(EggAnimals) {
			t.Fatalf("pool size = %d, want %d", n, len(EggAnimals))
		}
		return 0
	})
	if err != nil {
		t.Fatalf("DrawEggAnimal: %v", err)
	}
	if got != "cat" {
		t.Errorf("draw = %q, want %q", got, "cat")
	}
}

func TestDrawEggAnimalAllCollected(t *testing.T) {
	owned := append([]string{"platypus"}, EggAnimals...)
	_, err := DrawEggAnimal(owned, func(n int) int { return 0 })
	if !errors.Is(err, ErrAllAnimalsCollected) {
		t.Errorf("err = %v, want ErrAllAnimalsCollected", err)
	}
}
