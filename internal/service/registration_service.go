package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AdamBeresnev/federation-brackets/internal/federation"
	"github.com/AdamBeresnev/federation-brackets/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxNameLength = 120

type RegistrationService struct {
	store  *store.FederationStore
	logger *zap.Logger
}

func NewRegistrationService(store *store.FederationStore, logger *zap.Logger) *RegistrationService {
	return &RegistrationService{store: store, logger: logger}
}

type RegistrationInput struct {
	FullName  string   `json:"full_name"`
	Age       int      `json:"age"`
	Gender    string   `json:"gender"`
	Weight    *float64 `json:"weight"`
	BeltLevel int      `json:"belt_level"`

	ModalityID       *uuid.UUID `json:"modality_id"`
	OrganizationID   *uuid.UUID `json:"organization_id"`
	WeightCategoryID *uuid.UUID `json:"weight_category_id"`
	AgeCategoryID    *uuid.UUID `json:"age_category_id"`
	BeltCategoryID   *uuid.UUID `json:"belt_category_id"`
}

func (in RegistrationInput) validate() error {
	name := strings.TrimSpace(in.FullName)
	switch {
	case name == "":
		return fmt.Errorf("%w: full name is required", ErrInvalidRegistration)
	case len(name) > maxNameLength:
		return fmt.Errorf("%w: full name exceeds %d characters", ErrInvalidRegistration, maxNameLength)
	case in.Age < 0 || in.Age > 120:
		return fmt.Errorf("%w: age must be between 0 and 120", ErrInvalidRegistration)
	case !federation.Gender(strings.ToUpper(in.Gender)).Valid():
		return fmt.Errorf("%w: gender must be M or F", ErrInvalidRegistration)
	case in.BeltLevel < federation.MinBeltLevel || in.BeltLevel > federation.MaxBeltLevel:
		return fmt.Errorf("%w: belt level must be between %d and %d", ErrInvalidRegistration, federation.MinBeltLevel, federation.MaxBeltLevel)
	case in.Weight != nil && *in.Weight <= 0:
		return fmt.Errorf("%w: weight must be positive", ErrInvalidRegistration)
	}
	return nil
}

// Register stores a public self-registration for a championship.
func (s *RegistrationService) Register(ctx context.Context, championshipID string, in RegistrationInput) (*federation.Registration, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	championship, err := s.store.GetChampionship(ctx, championshipID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrChampionshipNotFound
		}
		return nil, fmt.Errorf("failed to get championship: %w", err)
	}

	reg := &federation.Registration{
		ID:               uuid.New(),
		ChampionshipID:   championship.ID,
		FullName:         strings.TrimSpace(in.FullName),
		Age:              in.Age,
		Gender:           federation.Gender(strings.ToUpper(in.Gender)),
		Weight:           in.Weight,
		BeltLevel:        in.BeltLevel,
		ModalityID:       in.ModalityID,
		OrganizationID:   in.OrganizationID,
		WeightCategoryID: in.WeightCategoryID,
		AgeCategoryID:    in.AgeCategoryID,
		BeltCategoryID:   in.BeltCategoryID,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.store.CreateRegistration(ctx, reg); err != nil {
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}

	s.logger.Info("registration created", zap.String("id", reg.ID.String()), zap.String("championship_id", championshipID))
	return reg, nil
}
