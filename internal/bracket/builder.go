package bracket

import (
	"errors"
	"math"
	"math/rand/v2"

	"github.com/AdamBeresnev/federation-brackets/internal/federation"
	"github.com/google/uuid"
)

var ErrNotEnoughAthletes = errors.New("at least two athletes are needed to generate a bracket")

// Gets the nearest power of 2 while rounding up, so with input 5 it returns 8 and so on
func calcBracketSize(count int) int {
	if count <= 0 {
		return 0
	}

	// Log2 -> Ceil -> 2^^log2 to round up
	log2 := math.Ceil(math.Log2(float64(count)))
	return int(math.Pow(2, log2))
}

// Build draws a new single elimination bracket from the athletes using the
// shared random source. Every call produces a different draw.
func Build(athletes []federation.Registration) (Rounds, error) {
	return build(athletes, rand.IntN)
}

// BuildWith is Build with an explicit random source, for reproducible draws.
func BuildWith(athletes []federation.Registration, r *rand.Rand) (Rounds, error) {
	return build(athletes, r.IntN)
}

func build(athletes []federation.Registration, intN func(int) int) (Rounds, error) {
	n := len(athletes)
	if n < 2 {
		return nil, ErrNotEnoughAthletes
	}

	// The caller's slice is left untouched
	shuffled := make([]federation.Registration, n)
	copy(shuffled, athletes)
	for i := n - 1; i > 0; i-- {
		j := intN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	slots := make([]*federation.Registration, calcBracketSize(n))
	for i := range shuffled {
		slots[i] = &shuffled[i]
	}

	var rounds Rounds
	entrants := len(slots)
	for entrants >= 2 {
		round := make(Round, 0, entrants/2)
		for i := 0; i < entrants; i += 2 {
			m := Match{ID: uuid.New()}
			// Only the first round knows its players
			if len(rounds) == 0 {
				m.Player1 = slots[i]
				m.Player2 = slots[i+1]
			}
			round = append(round, m)
		}
		rounds = append(rounds, round)
		entrants = len(round)
	}

	return rounds, nil
}
