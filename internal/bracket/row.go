package bracket

import (
	"time"

	"github.com/AdamBeresnev/federation-brackets/internal/federation"
	"github.com/google/uuid"
)

// Row is a persisted bracket. It is identified by ClassificationID when set,
// otherwise by the embedded category attribute ids.
type Row struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	ChampionshipID   uuid.UUID  `db:"championship_id" json:"championship_id"`
	ClassificationID *uuid.UUID `db:"classification_id" json:"classification_id"`

	federation.CategoryParams

	BracketData Rounds    `db:"bracket_data" json:"bracket_data"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
