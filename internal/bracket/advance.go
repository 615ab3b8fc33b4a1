package bracket

import (
	"errors"

	"github.com/google/uuid"
)

// Result entry is not part of drawing a bracket. AdvanceWinner is an optional
// extension on top of the drawn structure; Build never calls it.

var (
	ErrMatchNotFound    = errors.New("match not found in bracket")
	ErrWinnerNotInMatch = errors.New("winner is not part of this match")
	ErrMatchNotReady    = errors.New("match does not have its players yet")
	ErrMatchDecided     = errors.New("match already has a winner")
)

// AdvanceWinner records the winner of a match and moves the winner into the
// next round. Match i of a round feeds match i/2 of the next one, as player1
// when i is even and player2 when i is odd. The input is not modified.
func AdvanceWinner(rounds Rounds, matchID, winnerID uuid.UUID) (Rounds, error) {
	r, i, ok := find(rounds, matchID)
	if !ok {
		return nil, ErrMatchNotFound
	}

	m := rounds[r][i]
	if m.Winner != nil {
		return nil, ErrMatchDecided
	}
	if !ready(rounds, r, i) {
		return nil, ErrMatchNotReady
	}
	if !m.Has(winnerID) {
		return nil, ErrWinnerNotInMatch
	}

	out := rounds.Clone()
	winner := m.Player1
	if m.Player1 == nil || m.Player1.ID != winnerID {
		winner = m.Player2
	}
	out[r][i].Winner = winner

	if r+1 < len(out) {
		next := &out[r+1][i/2]
		if i%2 == 0 {
			next.Player1 = winner
		} else {
			next.Player2 = winner
		}
	}

	return out, nil
}

// Champion returns the winner of the final, if decided.
func (r Rounds) Champion() (uuid.UUID, bool) {
	if len(r) == 0 || len(r[len(r)-1]) != 1 {
		return uuid.Nil, false
	}
	final := r[len(r)-1][0]
	if final.Winner == nil {
		return uuid.Nil, false
	}
	return final.Winner.ID, true
}

// ready reports whether every slot of the match that can ever be filled is
// filled. Round 1 byes are decided with a single player.
func ready(rounds Rounds, r, i int) bool {
	m := rounds[r][i]
	if m.Player1 == nil && m.Player2 == nil {
		return false
	}
	if r == 0 {
		return true
	}
	if m.Player1 == nil && reachable(rounds, r-1, 2*i) {
		return false
	}
	if m.Player2 == nil && reachable(rounds, r-1, 2*i+1) {
		return false
	}
	return true
}

// reachable reports whether the match can ever produce a winner.
func reachable(rounds Rounds, r, i int) bool {
	if r == 0 {
		m := rounds[0][i]
		return m.Player1 != nil || m.Player2 != nil
	}
	return reachable(rounds, r-1, 2*i) || reachable(rounds, r-1, 2*i+1)
}

func find(rounds Rounds, matchID uuid.UUID) (int, int, bool) {
	for r, round := range rounds {
		for i, m := range round {
			if m.ID == matchID {
				return r, i, true
			}
		}
	}
	return 0, 0, false
}
