package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/AdamBeresnev/federation-brackets/internal/classify"
	"github.com/AdamBeresnev/federation-brackets/internal/federation"
	"github.com/AdamBeresnev/federation-brackets/internal/store"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type ClassificationService struct {
	db     *sqlx.DB
	store  *store.FederationStore
	logger *zap.Logger
}

func NewClassificationService(db *sqlx.DB, store *store.FederationStore, logger *zap.Logger) *ClassificationService {
	return &ClassificationService{db: db, store: store, logger: logger}
}

func (s *ClassificationService) GetClassifications(ctx context.Context) ([]federation.Classification, error) {
	return s.store.GetActiveClassifications(ctx)
}

func (s *ClassificationService) GetWeightCategories(ctx context.Context) ([]federation.WeightCategory, error) {
	return s.store.GetWeightCategories(ctx)
}

// CreateClassification validates the input against the active
// classifications inside one transaction and stores the new record.
func (s *ClassificationService) CreateClassification(ctx context.Context, in classify.ClassificationInput) (*federation.Classification, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	wc, err := s.store.GetWeightCategoryTx(ctx, tx, in.WeightCategoryID.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: weight category not found", classify.ErrInvalidClassification)
		}
		return nil, fmt.Errorf("failed to get weight category: %w", err)
	}

	existing, err := s.store.GetActiveClassificationsTx(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to get classifications: %w", err)
	}

	c, err := classify.NewClassification(in, *wc, existing)
	if err != nil {
		return nil, err
	}
	c.CreatedAt = time.Now().UTC()

	if err := s.store.CreateClassification(ctx, tx, c); err != nil {
		return nil, fmt.Errorf("failed to create classification: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("classification created", zap.String("id", c.ID.String()), zap.String("code", c.Code))
	return c, nil
}
