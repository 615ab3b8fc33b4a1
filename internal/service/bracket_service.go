package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/AdamBeresnev/federation-brackets/internal/bracket"
	"github.com/AdamBeresnev/federation-brackets/internal/classify"
	"github.com/AdamBeresnev/federation-brackets/internal/store"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type BracketService struct {
	db         *sqlx.DB
	store      *store.BracketStore
	categories *CategoryService
	logger     *zap.Logger
}

func NewBracketService(db *sqlx.DB, store *store.BracketStore, categories *CategoryService, logger *zap.Logger) *BracketService {
	return &BracketService{db: db, store: store, categories: categories, logger: logger}
}

// Generate draws a fresh bracket for a category. Nothing is stored; a
// previously saved bracket stays until the draw is saved over it.
func (s *BracketService) Generate(ctx context.Context, championshipID, key string) (*classify.Bucket, bracket.Rounds, error) {
	b, err := s.categories.GetBucket(ctx, championshipID, key)
	if err != nil {
		return nil, nil, err
	}

	rounds, err := bracket.Build(b.Athletes)
	if err != nil {
		return b, nil, err
	}
	return b, rounds, nil
}

// SaveBracket stores rounds for the category identified by key and returns the
// bucket as it is after the save.
func (s *BracketService) SaveBracket(ctx context.Context, championshipID, key string, rounds bracket.Rounds) (*classify.Bucket, error) {
	championship, b, err := s.categories.bucket(ctx, championshipID, key)
	if err != nil {
		return nil, err
	}
	return s.Save(ctx, championship.ID, b, rounds)
}

// Save upserts the bracket row of a bucket: the row the bucket already carries
// is updated, otherwise a new row is inserted. The returned bucket is a copy
// holding the rounds and the row id; the input bucket is never modified, so on
// error the caller still holds the state from before the attempt.
func (s *BracketService) Save(ctx context.Context, championshipID uuid.UUID, b *classify.Bucket, rounds bracket.Rounds) (*classify.Bucket, error) {
	if len(rounds) == 0 {
		return nil, bracket.ErrNotEnoughAthletes
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	row := &bracket.Row{
		ChampionshipID:   championshipID,
		ClassificationID: b.ClassificationID,
		CategoryParams:   b.Params,
		BracketData:      rounds,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if b.BracketID != nil {
		row.ID = *b.BracketID
		if err := s.store.UpdateBracketData(ctx, tx, row); err != nil {
			s.logger.Error("failed to update bracket", zap.String("bracket_id", row.ID.String()), zap.Error(err))
			return nil, fmt.Errorf("failed to update bracket: %w", err)
		}
	} else {
		row.ID = uuid.New()
		if err := s.store.CreateBracket(ctx, tx, row); err != nil {
			s.logger.Error("failed to create bracket", zap.String("category", b.Key), zap.Error(err))
			return nil, fmt.Errorf("failed to create bracket: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	saved := *b
	saved.BracketID = &row.ID
	saved.Bracket = rounds
	return &saved, nil
}

// AdvanceWinner records a result in the saved bracket of a category. The
// stored row is read and updated in one transaction so concurrent results do
// not overwrite each other. Result entry is an extension on top of drawing
// brackets.
func (s *BracketService) AdvanceWinner(ctx context.Context, championshipID, key string, matchID, winnerID uuid.UUID) (*classify.Bucket, error) {
	b, err := s.categories.GetBucket(ctx, championshipID, key)
	if err != nil {
		return nil, err
	}
	if b.BracketID == nil {
		return nil, ErrNoBracket
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	row, err := s.store.GetBracketTx(ctx, tx, championshipID, b.BracketID.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoBracket
		}
		return nil, fmt.Errorf("failed to get bracket: %w", err)
	}

	rounds, err := bracket.AdvanceWinner(row.BracketData, matchID, winnerID)
	if err != nil {
		return nil, err
	}
	row.BracketData = rounds
	row.UpdatedAt = time.Now().UTC()

	if err := s.store.UpdateBracketData(ctx, tx, row); err != nil {
		s.logger.Error("failed to update bracket", zap.String("bracket_id", row.ID.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to update bracket: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("winner recorded",
		zap.String("bracket_id", row.ID.String()),
		zap.String("match_id", matchID.String()),
		zap.String("winner_id", winnerID.String()))

	saved := *b
	saved.Bracket = rounds
	return &saved, nil
}
