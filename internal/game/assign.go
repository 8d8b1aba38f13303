package game

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Assigner draws unique secret numbers for a roster.
type Assigner struct {
	rng *rand.Rand
}

func NewAssigner() *Assigner {
	return NewAssignerFrom(rand.NewSource(time.Now().UnixNano()))
}

// NewAssignerFrom uses the given source, so tests can fix the shuffle.
func NewAssignerFrom(src rand.Source) *Assigner {
	return &Assigner{rng: rand.New(src)}
}

// Assign maps each name to a distinct number in [1,NumberRange].
// The full pool is shuffled and the prefix taken, so distinctness
// holds without rejection sampling for any valid roster size.
func (a *Assigner) Assign(names []string) ([]Player, error) {
	if len(names) < MinPlayers || len(names) > MaxPlayers {
		return nil, ErrPlayerCountRange
	}
	pool := make([]int, NumberRange)
	for i := range pool {
		pool[i] = i + 1
	}
	a.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	players := make([]Player, len(names))
	for i, name := range names {
		players[i] = Player{ID: uuid.NewString(), Name: name, Number: pool[i]}
	}
	return players, nil
}
