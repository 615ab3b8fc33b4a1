package views

import (
	"fmt"

	"github.com/AdamBeresnev/federation-brackets/internal/bracket"
	"github.com/AdamBeresnev/federation-brackets/internal/federation"
	"github.com/AdamBeresnev/federation-brackets/internal/utils"
)

type PlayerView struct {
	Name         string
	Organization string
	Winner       bool
}

type MatchView struct {
	ID      string
	Player1 *PlayerView
	Player2 *PlayerView
	Bye     bool
}

type RoundView struct {
	Label   string
	Matches []MatchView
}

type BracketData struct {
	Title  string
	Code   string
	Draft  bool
	Rounds []RoundView
}

func PrepareBracketData(title, code string, rounds bracket.Rounds, draft bool) BracketData {
	data := BracketData{Title: title, Code: code, Draft: draft}

	for i, round := range rounds {
		rv := RoundView{Label: roundLabel(i, len(rounds))}
		for _, m := range round {
			rv.Matches = append(rv.Matches, MatchView{
				ID:      m.ID.String(),
				Player1: playerView(m.Player1, m.Winner),
				Player2: playerView(m.Player2, m.Winner),
				Bye:     i == 0 && m.IsBye(),
			})
		}
		data.Rounds = append(data.Rounds, rv)
	}
	return data
}

func playerView(p, winner *federation.Registration) *PlayerView {
	if p == nil {
		return nil
	}
	return &PlayerView{
		Name:         p.FullName,
		Organization: utils.OrZero(p.OrganizationName),
		Winner:       winner != nil && winner.ID == p.ID,
	}
}

func roundLabel(index, total int) string {
	switch total - index {
	case 1:
		return "Final"
	case 2:
		return "Semifinal"
	case 3:
		return "Quartas de final"
	case 4:
		return "Oitavas de final"
	}
	return fmt.Sprintf("Rodada %d", index+1)
}
