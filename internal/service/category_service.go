package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AdamBeresnev/federation-brackets/internal/bracket"
	"github.com/AdamBeresnev/federation-brackets/internal/classify"
	"github.com/AdamBeresnev/federation-brackets/internal/federation"
	"github.com/AdamBeresnev/federation-brackets/internal/store"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type CategoryService struct {
	federation *store.FederationStore
	brackets   *store.BracketStore
	logger     *zap.Logger
	opts       classify.Options
}

func NewCategoryService(federation *store.FederationStore, brackets *store.BracketStore, logger *zap.Logger, opts classify.Options) *CategoryService {
	return &CategoryService{federation: federation, brackets: brackets, logger: logger, opts: opts}
}

type Categories struct {
	Championship *federation.Championship
	*classify.Grouping
	// Reads that failed; the categories are built from what loaded
	Warnings []string
}

// GetCategories groups a championship's registrations into categories. A
// failed read is reported in Warnings and the data from the other reads is
// still used.
func (s *CategoryService) GetCategories(ctx context.Context, championshipID string) (*Categories, error) {
	return s.load(ctx, championshipID, false)
}

// GetBucket returns one category. All reads must succeed, since the bracket
// row id it carries decides between insert and update on save.
func (s *CategoryService) GetBucket(ctx context.Context, championshipID, key string) (*classify.Bucket, error) {
	_, b, err := s.bucket(ctx, championshipID, key)
	return b, err
}

func (s *CategoryService) bucket(ctx context.Context, championshipID, key string) (*federation.Championship, *classify.Bucket, error) {
	categories, err := s.load(ctx, championshipID, true)
	if err != nil {
		return nil, nil, err
	}
	b, ok := categories.Bucket(key)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, key)
	}
	return categories.Championship, b, nil
}

func (s *CategoryService) load(ctx context.Context, championshipID string, strict bool) (*Categories, error) {
	championship, err := s.federation.GetChampionship(ctx, championshipID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrChampionshipNotFound
		}
		return nil, fmt.Errorf("failed to get championship: %w", err)
	}

	var (
		registrations   []federation.Registration
		classifications []federation.Classification
		rows            []bracket.Row
		regErr          error
		classErr        error
		rowErr          error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		registrations, regErr = s.federation.GetRegistrations(gctx, championshipID)
		return strictErr(strict, "registrations", regErr)
	})
	g.Go(func() error {
		classifications, classErr = s.federation.GetActiveClassifications(gctx)
		return strictErr(strict, "classifications", classErr)
	})
	g.Go(func() error {
		rows, rowErr = s.brackets.GetBrackets(gctx, championshipID)
		return strictErr(strict, "brackets", rowErr)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	categories := &Categories{Championship: championship}
	for _, read := range []struct {
		name string
		err  error
	}{
		{"registrations", regErr},
		{"classifications", classErr},
		{"brackets", rowErr},
	} {
		if read.err != nil {
			s.logger.Error("failed to load", zap.String("collection", read.name), zap.String("championship_id", championshipID), zap.Error(read.err))
			categories.Warnings = append(categories.Warnings, fmt.Sprintf("failed to load %s", read.name))
		}
	}

	categories.Grouping = classify.Group(registrations, classifications, rows, s.opts)

	for _, reg := range categories.Unclassified {
		s.logger.Debug("registration has no classification",
			zap.String("registration_id", reg.ID.String()),
			zap.Int("age", reg.Age),
			zap.String("gender", string(reg.Gender)),
			zap.Int("belt_level", reg.BeltLevel))
	}
	for _, sup := range categories.Superseded {
		s.logger.Warn("several brackets stored for one category",
			zap.String("category", sup.BucketKey),
			zap.String("ignored_bracket_id", sup.RowID.String()),
			zap.String("bracket_id", sup.ByRowID.String()))
	}

	return categories, nil
}

func strictErr(strict bool, name string, err error) error {
	if strict && err != nil {
		return fmt.Errorf("failed to get %s: %w", name, err)
	}
	return nil
}
