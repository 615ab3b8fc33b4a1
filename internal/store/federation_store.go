package store

import (
	"context"

	"github.com/AdamBeresnev/federation-brackets/internal/federation"
	"github.com/jmoiron/sqlx"
)

type FederationStore struct {
	db *sqlx.DB
}

const (
	getChampionshipQuery    = "SELECT * FROM championships WHERE id = ?"
	createChampionshipQuery = `
		INSERT INTO championships (id, name, event_date, created_at)
		VALUES (:id, :name, :event_date, :created_at)
	`
	getRegistrationsQuery = `
		SELECT r.*, m.name AS modality_name, o.name AS organization_name
		FROM registrations r
		LEFT JOIN modalities m ON m.id = r.modality_id
		LEFT JOIN organizations o ON o.id = r.organization_id
		WHERE r.championship_id = ?
		ORDER BY r.created_at ASC, r.id ASC
	`
	createRegistrationQuery = `
		INSERT INTO registrations (id, championship_id, full_name, age, gender, weight, belt_level,
			modality_id, organization_id, weight_category_id, age_category_id, belt_category_id, created_at)
		VALUES (:id, :championship_id, :full_name, :age, :gender, :weight, :belt_level,
			:modality_id, :organization_id, :weight_category_id, :age_category_id, :belt_category_id, :created_at)
	`
	getActiveClassificationsQuery = `
		SELECT c.*, w.name AS weight_category_name
		FROM classifications c
		LEFT JOIN weight_categories w ON w.id = c.weight_category_id
		WHERE c.active = TRUE
		ORDER BY c.created_at ASC, c.id ASC
	`
	createClassificationQuery = `
		INSERT INTO classifications (id, name, code, age_category, gender, belt_group, weight_category_id, min_weight, max_weight, active, created_at)
		VALUES (:id, :name, :code, :age_category, :gender, :belt_group, :weight_category_id, :min_weight, :max_weight, :active, :created_at)
	`
	getWeightCategoryQuery    = "SELECT * FROM weight_categories WHERE id = ?"
	getWeightCategoriesQuery  = "SELECT * FROM weight_categories ORDER BY min_weight ASC, name ASC"
	createWeightCategoryQuery = `
		INSERT INTO weight_categories (id, modality_id, name, code, min_weight, max_weight)
		VALUES (:id, :modality_id, :name, :code, :min_weight, :max_weight)
	`
	createModalityQuery     = "INSERT INTO modalities (id, name) VALUES (:id, :name)"
	createOrganizationQuery = "INSERT INTO organizations (id, name) VALUES (:id, :name)"
)

func NewFederationStore(db *sqlx.DB) *FederationStore {
	return &FederationStore{db: db}
}

func (s *FederationStore) GetChampionship(ctx context.Context, id string) (*federation.Championship, error) {
	var c federation.Championship
	if err := s.db.GetContext(ctx, &c, s.db.Rebind(getChampionshipQuery), id); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *FederationStore) CreateChampionship(ctx context.Context, c *federation.Championship) error {
	_, err := s.db.NamedExecContext(ctx, createChampionshipQuery, c)
	return err
}

// GetRegistrations returns a championship's registrations in arrival order.
func (s *FederationStore) GetRegistrations(ctx context.Context, championshipID string) ([]federation.Registration, error) {
	var regs []federation.Registration
	err := s.db.SelectContext(ctx, &regs, s.db.Rebind(getRegistrationsQuery), championshipID)
	return regs, err
}

func (s *FederationStore) CreateRegistration(ctx context.Context, reg *federation.Registration) error {
	_, err := s.db.NamedExecContext(ctx, createRegistrationQuery, reg)
	return err
}

func (s *FederationStore) GetActiveClassifications(ctx context.Context) ([]federation.Classification, error) {
	var cs []federation.Classification
	err := s.db.SelectContext(ctx, &cs, getActiveClassificationsQuery)
	return cs, err
}

func (s *FederationStore) GetActiveClassificationsTx(ctx context.Context, tx *sqlx.Tx) ([]federation.Classification, error) {
	var cs []federation.Classification
	err := tx.SelectContext(ctx, &cs, getActiveClassificationsQuery)
	return cs, err
}

func (s *FederationStore) CreateClassification(ctx context.Context, tx *sqlx.Tx, c *federation.Classification) error {
	_, err := tx.NamedExecContext(ctx, createClassificationQuery, c)
	return err
}

func (s *FederationStore) GetWeightCategoryTx(ctx context.Context, tx *sqlx.Tx, id string) (*federation.WeightCategory, error) {
	var wc federation.WeightCategory
	if err := tx.GetContext(ctx, &wc, tx.Rebind(getWeightCategoryQuery), id); err != nil {
		return nil, err
	}
	return &wc, nil
}

func (s *FederationStore) GetWeightCategories(ctx context.Context) ([]federation.WeightCategory, error) {
	var wcs []federation.WeightCategory
	err := s.db.SelectContext(ctx, &wcs, getWeightCategoriesQuery)
	return wcs, err
}

func (s *FederationStore) CreateWeightCategory(ctx context.Context, wc *federation.WeightCategory) error {
	_, err := s.db.NamedExecContext(ctx, createWeightCategoryQuery, wc)
	return err
}

func (s *FederationStore) CreateModality(ctx context.Context, m *federation.Modality) error {
	_, err := s.db.NamedExecContext(ctx, createModalityQuery, m)
	return err
}

func (s *FederationStore) CreateOrganization(ctx context.Context, o *federation.Organization) error {
	_, err := s.db.NamedExecContext(ctx, createOrganizationQuery, o)
	return err
}
