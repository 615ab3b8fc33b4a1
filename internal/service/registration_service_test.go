package service

import (
	"context"
	"strings"
	"testing"

	"github.com/AdamBeresnev/federation-brackets/internal/classify"
	"github.com/AdamBeresnev/federation-brackets/internal/federation"
	"github.com/AdamBeresnev/federation-brackets/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	f := newFixture(t, classify.Options{})
	ctx := context.Background()

	reg, err := f.registrations.Register(ctx, f.championship.ID.String(), RegistrationInput{
		FullName:  "  Joana Silva ",
		Age:       17,
		Gender:    "f",
		BeltLevel: 6,
		Weight:    utils.Ptr(58.2),
	})
	require.NoError(t, err)
	assert.Equal(t, "Joana Silva", reg.FullName)
	assert.Equal(t, federation.Female, reg.Gender)

	regs, err := f.federation.GetRegistrations(ctx, f.championship.ID.String())
	require.NoError(t, err)
	require.Len(t, regs, 1)
	assert.Equal(t, reg.ID, regs[0].ID)
}

func TestRegister_Invalid(t *testing.T) {
	f := newFixture(t, classify.Options{})
	ctx := context.Background()

	valid := RegistrationInput{FullName: "Rui", Age: 20, Gender: "M", BeltLevel: 1}

	testCases := []struct {
		name   string
		modify func(in *RegistrationInput)
	}{
		{"empty name", func(in *RegistrationInput) { in.FullName = "  " }},
		{"long name", func(in *RegistrationInput) { in.FullName = strings.Repeat("a", 121) }},
		{"negative age", func(in *RegistrationInput) { in.Age = -1 }},
		{"bad gender", func(in *RegistrationInput) { in.Gender = "X" }},
		{"belt too low", func(in *RegistrationInput) { in.BeltLevel = 0 }},
		{"belt too high", func(in *RegistrationInput) { in.BeltLevel = 12 }},
		{"zero weight", func(in *RegistrationInput) { in.Weight = utils.Ptr(0.0) }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.modify(&in)
			_, err := f.registrations.Register(ctx, f.championship.ID.String(), in)
			assert.ErrorIs(t, err, ErrInvalidRegistration)
		})
	}

	_, err := f.registrations.Register(ctx, uuid.NewString(), valid)
	assert.ErrorIs(t, err, ErrChampionshipNotFound)
}
