// Package draft keeps generated brackets in the user's session until they are
// saved or discarded.
package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/AdamBeresnev/federation-brackets/internal/bracket"
	"github.com/alexedwards/scs/v2"
)

var ErrNoDraft = errors.New("no generated bracket for this category")

type Store struct {
	sessions *scs.SessionManager
}

func New(sessions *scs.SessionManager) *Store {
	return &Store{sessions: sessions}
}

func key(championshipID, categoryKey string) string {
	return fmt.Sprintf("draft:%s:%s", championshipID, categoryKey)
}

// Put replaces the draft of a category.
func (s *Store) Put(ctx context.Context, championshipID, categoryKey string, rounds bracket.Rounds) error {
	data, err := json.Marshal(rounds)
	if err != nil {
		return err
	}
	s.sessions.Put(ctx, key(championshipID, categoryKey), data)
	return nil
}

func (s *Store) Get(ctx context.Context, championshipID, categoryKey string) (bracket.Rounds, error) {
	data := s.sessions.GetBytes(ctx, key(championshipID, categoryKey))
	if data == nil {
		return nil, ErrNoDraft
	}
	var rounds bracket.Rounds
	if err := json.Unmarshal(data, &rounds); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	return rounds, nil
}

func (s *Store) Discard(ctx context.Context, championshipID, categoryKey string) {
	s.sessions.Remove(ctx, key(championshipID, categoryKey))
}
