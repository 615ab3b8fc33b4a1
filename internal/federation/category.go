package federation

import (
	"time"

	"github.com/google/uuid"
)

// CategoryParams identifies a category by its raw attribute records. It is the
// fallback identity of a bucket (and of a bracket row) when no classification
// applies.
type CategoryParams struct {
	ModalityID       *uuid.UUID `db:"modality_id" json:"modality_id"`
	AgeCategoryID    *uuid.UUID `db:"age_category_id" json:"age_category_id"`
	WeightCategoryID *uuid.UUID `db:"weight_category_id" json:"weight_category_id"`
	BeltCategoryID   *uuid.UUID `db:"belt_category_id" json:"belt_category_id"`
}

func (p CategoryParams) Equal(o CategoryParams) bool {
	return sameID(p.ModalityID, o.ModalityID) &&
		sameID(p.AgeCategoryID, o.AgeCategoryID) &&
		sameID(p.WeightCategoryID, o.WeightCategoryID) &&
		sameID(p.BeltCategoryID, o.BeltCategoryID)
}

// Complete reports whether all four references are set.
func (p CategoryParams) Complete() bool {
	return p.ModalityID != nil && p.AgeCategoryID != nil && p.WeightCategoryID != nil && p.BeltCategoryID != nil
}

func sameID(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

type WeightCategory struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	ModalityID *uuid.UUID `db:"modality_id" json:"modality_id"`
	Name       string     `db:"name" json:"name"`
	Code       string     `db:"code" json:"code"`
	MinWeight  float64    `db:"min_weight" json:"min_weight"`
	MaxWeight  float64    `db:"max_weight" json:"max_weight"`
}

// Classification is a coded competition bucket. AgeCategory, Gender, BeltGroup
// and WeightCategoryID together identify an active classification.
type Classification struct {
	ID               uuid.UUID `db:"id" json:"id"`
	Name             string    `db:"name" json:"name"`
	Code             string    `db:"code" json:"code"`
	AgeCategory      string    `db:"age_category" json:"age_category"`
	Gender           Gender    `db:"gender" json:"gender"`
	BeltGroup        int       `db:"belt_group" json:"belt_group"`
	WeightCategoryID uuid.UUID `db:"weight_category_id" json:"weight_category_id"`
	MinWeight        float64   `db:"min_weight" json:"min_weight"`
	MaxWeight        float64   `db:"max_weight" json:"max_weight"`
	Active           bool      `db:"active" json:"active"`

	WeightCategoryName *string `db:"weight_category_name" json:"weight_category_name,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Championship struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	Name      string     `db:"name" json:"name"`
	EventDate *time.Time `db:"event_date" json:"event_date"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}

type Modality struct {
	ID   uuid.UUID `db:"id" json:"id"`
	Name string    `db:"name" json:"name"`
}

type Organization struct {
	ID   uuid.UUID `db:"id" json:"id"`
	Name string    `db:"name" json:"name"`
}
