package classify

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/AdamBeresnev/federation-brackets/internal/federation"
	"github.com/google/uuid"
)

var (
	ErrInvalidClassification   = errors.New("invalid classification")
	ErrDuplicateClassification = errors.New("an active classification already exists for this age, gender, belt group and weight category")
)

type ClassificationInput struct {
	Name             string    `json:"name"`
	AgeCategory      string    `json:"age_category"`
	Gender           string    `json:"gender"`
	BeltGroup        int       `json:"belt_group"`
	WeightCategoryID uuid.UUID `json:"weight_category_id"`
}

// NewClassification validates the input against the existing classifications
// and builds the record, copying the weight range from the weight category.
// Two active classifications may not share age category, gender, belt group
// and weight category.
func NewClassification(in ClassificationInput, wc federation.WeightCategory, existing []federation.Classification) (*federation.Classification, error) {
	gender := federation.Gender(strings.ToUpper(strings.TrimSpace(in.Gender)))
	if !gender.Valid() {
		return nil, fmt.Errorf("%w: gender must be M or F", ErrInvalidClassification)
	}
	if _, ok := ageCode(in.AgeCategory); !ok {
		return nil, fmt.Errorf("%w: unknown age category %q", ErrInvalidClassification, in.AgeCategory)
	}
	if in.BeltGroup < MinBeltGroup || in.BeltGroup > MaxBeltGroup {
		return nil, fmt.Errorf("%w: belt group must be between %d and %d", ErrInvalidClassification, MinBeltGroup, MaxBeltGroup)
	}
	if in.WeightCategoryID != wc.ID {
		return nil, fmt.Errorf("%w: weight category mismatch", ErrInvalidClassification)
	}

	for _, c := range existing {
		if c.Active && c.AgeCategory == in.AgeCategory && c.Gender == gender &&
			c.BeltGroup == in.BeltGroup && c.WeightCategoryID == wc.ID {
			return nil, fmt.Errorf("%w (%s)", ErrDuplicateClassification, c.Code)
		}
	}

	code := Code(in.AgeCategory, gender, in.BeltGroup, wc)
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = fmt.Sprintf("%s %s %s %s", in.AgeCategory, gender.Label(), BeltGroupLabel(in.BeltGroup), wc.Name)
	}

	return &federation.Classification{
		ID:                 uuid.New(),
		Name:               name,
		Code:               code,
		AgeCategory:        in.AgeCategory,
		Gender:             gender,
		BeltGroup:          in.BeltGroup,
		WeightCategoryID:   wc.ID,
		MinWeight:          wc.MinWeight,
		MaxWeight:          wc.MaxWeight,
		Active:             true,
		WeightCategoryName: &wc.Name,
	}, nil
}

// Code concatenates age code, gender, belt group and weight code, e.g. "ADM2-66".
func Code(ageCategory string, gender federation.Gender, beltGroup int, wc federation.WeightCategory) string {
	age, ok := ageCode(ageCategory)
	if !ok {
		age = strings.ToUpper(ageCategory)
	}
	return fmt.Sprintf("%s%s%d%s", age, gender, beltGroup, weightCode(wc))
}

func weightCode(wc federation.WeightCategory) string {
	if code := strings.TrimSpace(wc.Code); code != "" {
		return code
	}
	return fmt.Sprintf("%d", int(math.Round(wc.MaxWeight)))
}
