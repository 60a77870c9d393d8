package application

// EggItemID is the shop catalog id of the egg. Every other id purchases a
// regular inventory item.
const EggItemID = 1

// EggAnimals is the pool an egg can hatch into. The platypus is granted by
// profile completion, never by an egg.
var EggAnimals = []string{"cat", "dinosaur", "raccoon"}

// DrawEggAnimal picks uniformly at random an egg animal the user does not
// own yet. intn must behave like rand.Intn; it is injected so the draw is
// deterministic under test.
func DrawEggAnimal(owned []string, intn func(n int) int) (string, error) {
	ownedSet := make(map[string]struct{}, len(owned))
	for _, a := range owned {
		ownedSet[a] = struct{}{}
	}

	unowned := make([]string, 0, len(EggAnimals))
	for _, a := range EggAnimals {
		if _, ok := ownedSet[a]; !ok {
			unowned = append(unowned, a)
		}
	}

	if len(unowned) == 0 {
		return "", ErrAllAnimalsCollected
	}
	return unowned[intn(len(unowned))], nil
}
