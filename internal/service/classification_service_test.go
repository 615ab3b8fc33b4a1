package service

import (
	"context"
	"testing"

	"github.com/AdamBeresnev/federation-brackets/internal/classify"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClassification(t *testing.T) {
	f := newFixture(t, classify.Options{})
	ctx := context.Background()

	c := f.classification(t, classify.Infantil, "F", 1, f.light)
	assert.Equal(t, "INF1-66", c.Code)
	assert.Equal(t, f.light.MaxWeight, c.MaxWeight)

	_, err := f.classes.CreateClassification(ctx, classify.ClassificationInput{
		AgeCategory:      classify.Infantil,
		Gender:           "F",
		BeltGroup:        1,
		WeightCategoryID: f.light.ID,
	})
	assert.ErrorIs(t, err, classify.ErrDuplicateClassification)

	_, err = f.classes.CreateClassification(ctx, classify.ClassificationInput{
		AgeCategory:      classify.Infantil,
		Gender:           "F",
		BeltGroup:        1,
		WeightCategoryID: uuid.New(),
	})
	assert.ErrorIs(t, err, classify.ErrInvalidClassification)

	cs, err := f.classes.GetClassifications(ctx)
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Equal(t, c.ID, cs[0].ID)

	wcs, err := f.classes.GetWeightCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, wcs, 2)
}
