package service

import (
	"context"
	"testing"
	"time"

	"github.com/AdamBeresnev/federation-brackets/internal/classify"
	"github.com/AdamBeresnev/federation-brackets/internal/config"
	"github.com/AdamBeresnev/federation-brackets/internal/db"
	"github.com/AdamBeresnev/federation-brackets/internal/federation"
	"github.com/AdamBeresnev/federation-brackets/internal/store"
	"github.com/AdamBeresnev/federation-brackets/internal/utils"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
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

type fixture struct {
	db            *sqlx.DB
	federation    *store.FederationStore
	categories    *CategoryService
	brackets      *BracketService
	registrations *RegistrationService
	classes       *ClassificationService

	championship *federation.Championship
	light        *federation.WeightCategory
	heavy        *federation.WeightCategory
}

func newFixture(t *testing.T, opts classify.Options) *fixture {
	t.Helper()
	ctx := context.Background()
	logger := zaptest.NewLogger(t)

	database := setupTestDB(t)
	t.Cleanup(func() { database.Close() })

	fs := store.NewFederationStore(database)
	bs := store.NewBracketStore(database)
	categories := NewCategoryService(fs, bs, logger, opts)

	f := &fixture{
		db:            database,
		federation:    fs,
		categories:    categories,
		brackets:      NewBracketService(database, bs, categories, logger),
		registrations: NewRegistrationService(fs, logger),
		classes:       NewClassificationService(database, fs, logger),
		championship:  &federation.Championship{ID: uuid.New(), Name: "Copa Estadual", CreatedAt: time.Now().UTC()},
		light:         &federation.WeightCategory{ID: uuid.New(), Name: "Leve", Code: "-66", MinWeight: 0, MaxWeight: 66},
		heavy:         &federation.WeightCategory{ID: uuid.New(), Name: "Pesado", Code: "+66", MinWeight: 66.01, MaxWeight: 150},
	}

	require.NoError(t, fs.CreateChampionship(ctx, f.championship))
	require.NoError(t, fs.CreateWeightCategory(ctx, f.light))
	require.NoError(t, fs.CreateWeightCategory(ctx, f.heavy))
	return f
}

func (f *fixture) classification(t *testing.T, age, gender string, belt int, wc *federation.WeightCategory) *federation.Classification {
	t.Helper()
	c, err := f.classes.CreateClassification(context.Background(), classify.ClassificationInput{
		AgeCategory:      age,
		Gender:           gender,
		BeltGroup:        belt,
		WeightCategoryID: wc.ID,
	})
	require.NoError(t, err)
	return c
}

func (f *fixture) register(t *testing.T, name string, age int, gender string, belt int, weight float64) *federation.Registration {
	t.Helper()
	reg, err := f.registrations.Register(context.Background(), f.championship.ID.String(), RegistrationInput{
		FullName:  name,
		Age:       age,
		Gender:    gender,
		BeltLevel: belt,
		Weight:    utils.Ptr(weight),
	})
	require.NoError(t, err)
	return reg
}
