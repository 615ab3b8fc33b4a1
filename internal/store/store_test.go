package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/AdamBeresnev/federation-brackets/internal/bracket"
	"github.com/AdamBeresnev/federation-brackets/internal/config"
	"github.com/AdamBeresnev/federation-brackets/internal/db"
	"github.com/AdamBeresnev/federation-brackets/internal/federation"
	"github.com/AdamBeresnev/federation-brackets/internal/utils"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory SQLite database and applies migrations
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := sqlx.Connect("sqlite3", "file::memory:")
	require.NoError(t, err, "Failed to connect to in-memory DB")

	// Every connection to :memory: is a separate database
	database.SetMaxOpenConns(1)

	_, err = database.Exec("PRAGMA foreign_keys = ON;")
	require.NoError(t, err)

	require.NoError(t, db.RunMigrations(database.DB, config.SQLite), "Failed to apply migrations")

	return database
}

func createChampionship(t *testing.T, s *FederationStore) *federation.Championship {
	t.Helper()
	c := &federation.Championship{ID: uuid.New(), Name: "Estadual", CreatedAt: time.Now().UTC()}
	require.NoError(t, s.CreateChampionship(context.Background(), c))
	return c
}

func TestRegistrations(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	ctx := context.Background()
	s := NewFederationStore(database)
	championship := createChampionship(t, s)

	modality := &federation.Modality{ID: uuid.New(), Name: "Kata"}
	require.NoError(t, s.CreateModality(ctx, modality))
	org := &federation.Organization{ID: uuid.New(), Name: "Dojo Central"}
	require.NoError(t, s.CreateOrganization(ctx, org))

	start := time.Now().UTC()
	names := []string{"Zeca", "Ana", "Mia"}
	for i, name := range names {
		reg := &federation.Registration{
			ID:             uuid.New(),
			ChampionshipID: championship.ID,
			FullName:       name,
			Age:            20 + i,
			Gender:         federation.Female,
			BeltLevel:      3,
			CreatedAt:      start.Add(time.Duration(i) * time.Millisecond),
		}
		if i == 0 {
			reg.Weight = utils.Ptr(61.5)
			reg.ModalityID = &modality.ID
			reg.OrganizationID = &org.ID
		}
		require.NoError(t, s.CreateRegistration(ctx, reg))
	}

	regs, err := s.GetRegistrations(ctx, championship.ID.String())
	require.NoError(t, err)
	require.Len(t, regs, 3)

	for i, name := range names {
		assert.Equal(t, name, regs[i].FullName, "registrations keep arrival order")
	}
	require.NotNil(t, regs[0].Weight)
	assert.Equal(t, 61.5, *regs[0].Weight)
	require.NotNil(t, regs[0].ModalityName)
	assert.Equal(t, "Kata", *regs[0].ModalityName)
	require.NotNil(t, regs[0].OrganizationName)
	assert.Equal(t, "Dojo Central", *regs[0].OrganizationName)

	assert.Nil(t, regs[1].Weight)
	assert.Nil(t, regs[1].ModalityID)
	assert.Nil(t, regs[1].ModalityName)

	other, err := s.GetRegistrations(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestClassifications(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	ctx := context.Background()
	s := NewFederationStore(database)

	wc := &federation.WeightCategory{ID: uuid.New(), Name: "Leve", Code: "-66", MinWeight: 60, MaxWeight: 66}
	require.NoError(t, s.CreateWeightCategory(ctx, wc))

	wcs, err := s.GetWeightCategories(ctx)
	require.NoError(t, err)
	require.Len(t, wcs, 1)
	assert.Equal(t, wc.Code, wcs[0].Code)

	c := &federation.Classification{
		ID:               uuid.New(),
		Name:             "Adulto Masculino Leve",
		Code:             "ADM2-66",
		AgeCategory:      "Adulto",
		Gender:           federation.Male,
		BeltGroup:        2,
		WeightCategoryID: wc.ID,
		MinWeight:        wc.MinWeight,
		MaxWeight:        wc.MaxWeight,
		Active:           true,
		CreatedAt:        time.Now().UTC(),
	}

	tx, err := database.BeginTxx(ctx, nil)
	require.NoError(t, err)
	fetchedWC, err := s.GetWeightCategoryTx(ctx, tx, wc.ID.String())
	require.NoError(t, err)
	assert.Equal(t, wc.Name, fetchedWC.Name)
	require.NoError(t, s.CreateClassification(ctx, tx, c))
	require.NoError(t, tx.Commit())

	cs, err := s.GetActiveClassifications(ctx)
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Equal(t, c.ID, cs[0].ID)
	assert.Equal(t, c.Code, cs[0].Code)
	assert.True(t, cs[0].Active)
	require.NotNil(t, cs[0].WeightCategoryName)
	assert.Equal(t, "Leve", *cs[0].WeightCategoryName)

	// The schema refuses a second active classification with the same tuple
	dup := *c
	dup.ID = uuid.New()
	tx, err = database.BeginTxx(ctx, nil)
	require.NoError(t, err)
	assert.Error(t, s.CreateClassification(ctx, tx, &dup))
	require.NoError(t, tx.Rollback())
}

func TestBrackets(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	ctx := context.Background()
	fs := NewFederationStore(database)
	s := NewBracketStore(database)
	championship := createChampionship(t, fs)

	athletes := []federation.Registration{
		{ID: uuid.New(), FullName: "A", Gender: federation.Male},
		{ID: uuid.New(), FullName: "B", Gender: federation.Male},
		{ID: uuid.New(), FullName: "C", Gender: federation.Male},
	}
	rounds, err := bracket.Build(athletes)
	require.NoError(t, err)

	now := time.Now().UTC()
	row := &bracket.Row{
		ID:             uuid.New(),
		ChampionshipID: championship.ID,
		CategoryParams: federation.CategoryParams{ModalityID: utils.Ptr(uuid.New())},
		BracketData:    rounds,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	tx, err := database.BeginTxx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, s.CreateBracket(ctx, tx, row))
	fetched, err := s.GetBracketTx(ctx, tx, championship.ID.String(), row.ID.String())
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.Nil(t, fetched.ClassificationID)
	require.NotNil(t, fetched.ModalityID)
	assert.Equal(t, *row.ModalityID, *fetched.ModalityID)
	assert.Nil(t, fetched.BeltCategoryID)
	require.Len(t, fetched.BracketData, 2)
	assert.ElementsMatch(t, athletes, fetched.BracketData.Athletes())

	// Update the payload in place
	rebuilt, err := bracket.Build(athletes[:2])
	require.NoError(t, err)
	row.BracketData = rebuilt
	row.UpdatedAt = now.Add(time.Second)

	tx, err = database.BeginTxx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, s.UpdateBracketData(ctx, tx, row))
	require.NoError(t, tx.Commit())

	rows, err := s.GetBrackets(ctx, championship.ID.String())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, row.ID, rows[0].ID)
	assert.Len(t, rows[0].BracketData, 1)
	assert.True(t, rows[0].UpdatedAt.After(rows[0].CreatedAt))

	// Unknown rows are reported, not inserted
	missing := *row
	missing.ID = uuid.New()
	tx, err = database.BeginTxx(ctx, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, s.UpdateBracketData(ctx, tx, &missing), sql.ErrNoRows)
	require.NoError(t, tx.Rollback())
}
