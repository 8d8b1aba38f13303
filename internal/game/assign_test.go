package game

import (
	"math/rand"
	"testing"
)

func TestAssignProducesDistinctNumbersInRange(t *testing.T) {
	a := NewAssigner()
	for count := MinPlayers; count <= MaxPlayers; count++ {
		names := make([]string, count)
		for i := range names {
			names[i] = DefaultPlayerName(i+1, "en")
		}

		players, err := a.Assign(names)
		if err != nil {
			t.Fatalf("count %d: unexpected error: %v", count, err)
		}
		if len(players) != count {
			t.Fatalf("count %d: expected %d players, got %d", count, count, len(players))
		}

		seen := make(map[int]bool)
		for i, p := range players {
			if p.Name != names[i] {
				t.Fatalf("count %d: expected name %s at %d, got %s", count, names[i], i, p.Name)
			}
			if p.ID == "" {
				t.Fatalf("count %d: player %d has empty id", count, i)
			}
			if p.Number < 1 || p.Number > NumberRange {
				t.Fatalf("count %d: number %d out of range", count, p.Number)
			}
			if seen[p.Number] {
				t.Fatalf("count %d: duplicate number %d", count, p.Number)
			}
			seen[p.Number] = true
		}
	}
}

func TestAssignRejectsInvalidCount(t *testing.T) {
	a := NewAssigner()

	if _, err := a.Assign([]string{"A", "B"}); err != ErrPlayerCountRange {
		t.Fatalf("expected ErrPlayerCountRange for 2 players, got %v", err)
	}

	names := make([]string, MaxPlayers+1)
	for i := range names {
		names[i] = DefaultPlayerName(i+1, "en")
	}
	if _, err := a.Assign(names); err != ErrPlayerCountRange {
		t.Fatalf("expected ErrPlayerCountRange for 11 players, got %v", err)
	}
}

func TestAssignDeterministicWithFixedSeed(t *testing.T) {
	names := []string{"Amy", "Bo", "Cy", "Dee"}

	first, err := NewAssignerFrom(rand.NewSource(42)).Assign(names)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := NewAssignerFrom(rand.NewSource(42)).Assign(names)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range first {
		if first[i].Number != second[i].Number {
			t.Fatalf("position %d: %d != %d under same seed", i, first[i].Number, second[i].Number)
		}
	}
}
