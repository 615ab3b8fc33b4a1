package federation

import (
	"time"

	"github.com/google/uuid"
)

type Gender string

const (
	Male   Gender = "M"
	Female Gender = "F"
)

func (g Gender) Valid() bool {
	return g == Male || g == Female
}

func (g Gender) Label() string {
	switch g {
	case Male:
		return "Masculino"
	case Female:
		return "Feminino"
	}
	return string(g)
}

const (
	MinBeltLevel = 1
	MaxBeltLevel = 11
)

// Registration is an athlete entry in a championship. It is also the snapshot
// stored inside bracket payloads, so the json tags are part of the stored format.
type Registration struct {
	ID             uuid.UUID `db:"id" json:"id"`
	ChampionshipID uuid.UUID `db:"championship_id" json:"championship_id"`
	FullName       string    `db:"full_name" json:"full_name"`
	Age            int       `db:"age" json:"age"`
	Gender         Gender    `db:"gender" json:"gender"`
	Weight         *float64  `db:"weight" json:"weight"`
	BeltLevel      int       `db:"belt_level" json:"belt_level"`

	ModalityID     *uuid.UUID `db:"modality_id" json:"modality_id"`
	OrganizationID *uuid.UUID `db:"organization_id" json:"organization_id"`

	WeightCategoryID *uuid.UUID `db:"weight_category_id" json:"weight_category_id"`
	AgeCategoryID    *uuid.UUID `db:"age_category_id" json:"age_category_id"`
	BeltCategoryID   *uuid.UUID `db:"belt_category_id" json:"belt_category_id"`

	// Filled from lookup tables when loaded, for display only
	ModalityName     *string `db:"modality_name" json:"modality_name,omitempty"`
	OrganizationName *string `db:"organization_name" json:"organization_name,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Params returns the raw category attribute tuple of the registration.
func (r Registration) Params() CategoryParams {
	return CategoryParams{
		ModalityID:       r.ModalityID,
		AgeCategoryID:    r.AgeCategoryID,
		WeightCategoryID: r.WeightCategoryID,
		BeltCategoryID:   r.BeltCategoryID,
	}
}
