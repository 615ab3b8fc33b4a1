package bracket

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/AdamBeresnev/federation-brackets/internal/federation"
	"github.com/google/uuid"
)

// Match pairs two registration snapshots. A nil player is a bye (round 1) or a
// slot nobody has advanced into yet (later rounds).
type Match struct {
	ID      uuid.UUID                `json:"id"`
	Player1 *federation.Registration `json:"player1"`
	Player2 *federation.Registration `json:"player2"`
	Winner  *federation.Registration `json:"winner"`
}

func (m *Match) IsBye() bool {
	return (m.Player1 == nil) != (m.Player2 == nil)
}

func (m *Match) Has(registrationID uuid.UUID) bool {
	return (m.Player1 != nil && m.Player1.ID == registrationID) ||
		(m.Player2 != nil && m.Player2.ID == registrationID)
}

type Round []Match

// Rounds is the bracket_data payload, first round first.
type Rounds []Round

func (r Rounds) Value() (driver.Value, error) {
	if r == nil {
		return nil, nil
	}
	b, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (r *Rounds) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*r = nil
		return nil
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	}
	return fmt.Errorf("bracket: cannot scan %T into Rounds", src)
}

// Athletes returns every player placed in the first round, in slot order.
func (r Rounds) Athletes() []federation.Registration {
	if len(r) == 0 {
		return nil
	}
	var out []federation.Registration
	for _, m := range r[0] {
		if m.Player1 != nil {
			out = append(out, *m.Player1)
		}
		if m.Player2 != nil {
			out = append(out, *m.Player2)
		}
	}
	return out
}

func (r Rounds) Clone() Rounds {
	if r == nil {
		return nil
	}
	out := make(Rounds, len(r))
	for i, round := range r {
		out[i] = append(Round(nil), round...)
	}
	return out
}
