package game

import "sort"

// CorrectOrder returns player ids sorted ascending by assigned number.
// Numbers are distinct by construction; a tie means the assigner is
// broken and surfaces as an invariant violation.
func CorrectOrder(players []Player) ([]string, error) {
	sorted := make([]Player, len(players))
	copy(sorted, players)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Number < sorted[j].Number })

	ids := make([]string, len(sorted))
	for i, p := range sorted {
		if i > 0 && sorted[i-1].Number == p.Number {
			return nil, invariant(ErrDuplicateNumber)
		}
		ids[i] = p.ID
	}
	return ids, nil
}

// Score compares a submitted order against the correct one position by
// position. Comparison is by player identity at each index, not by
// number value: a player counts only in the exact rank it was placed.
func Score(submitted, correct []string) (Result, error) {
	if len(submitted) != len(correct) {
		return Result{}, invariant(ErrLengthMismatch)
	}
	per := make([]bool, len(submitted))
	hits := 0
	for i := range submitted {
		if submitted[i] == correct[i] {
			per[i] = true
			hits++
		}
	}
	rate := 0.0
	if len(submitted) > 0 {
		rate = float64(hits) / float64(len(submitted))
	}
	return Result{
		PerPosition: per,
		MatchRate:   rate,
		AllCorrect:  rate == 1.0,
		RatingTier:  RatingTier(rate),
	}, nil
}

// RatingTier maps a match rate to a presentation tier. Boundaries are
// closed on the lower end.
func RatingTier(rate float64) int {
	pct := rate * 100
	switch {
	case pct >= 100:
		return 5
	case pct >= 80:
		return 4
	case pct >= 60:
		return 3
	case pct >= 40:
		return 2
	case pct >= 20:
		return 1
	default:
		return 0
	}
}
