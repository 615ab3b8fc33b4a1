package store

import (
	"context"
	"database/sql"

	"github.com/AdamBeresnev/federation-brackets/internal/bracket"
	"github.com/jmoiron/sqlx"
)

type BracketStore struct {
	db *sqlx.DB
}

const (
	getBracketsQuery   = "SELECT * FROM brackets WHERE championship_id = ? ORDER BY created_at ASC, id ASC"
	getBracketQuery    = "SELECT * FROM brackets WHERE id = ? AND championship_id = ?"
	createBracketQuery = `
		INSERT INTO brackets (id, championship_id, classification_id, modality_id, age_category_id, weight_category_id, belt_category_id, bracket_data, created_at, updated_at)
		VALUES (:id, :championship_id, :classification_id, :modality_id, :age_category_id, :weight_category_id, :belt_category_id, :bracket_data, :created_at, :updated_at)
	`
	updateBracketDataQuery = `
		UPDATE brackets SET
		bracket_data = :bracket_data,
		updated_at = :updated_at
		WHERE id = :id AND championship_id = :championship_id
	`
)

func NewBracketStore(db *sqlx.DB) *BracketStore {
	return &BracketStore{db: db}
}

// GetBrackets returns the bracket rows of a championship, oldest first.
func (s *BracketStore) GetBrackets(ctx context.Context, championshipID string) ([]bracket.Row, error) {
	var rows []bracket.Row
	err := s.db.SelectContext(ctx, &rows, s.db.Rebind(getBracketsQuery), championshipID)
	return rows, err
}

// GetBracketTx reads a row inside tx, scoped to its championship.
func (s *BracketStore) GetBracketTx(ctx context.Context, tx *sqlx.Tx, championshipID, id string) (*bracket.Row, error) {
	var row bracket.Row
	if err := tx.GetContext(ctx, &row, tx.Rebind(getBracketQuery), id, championshipID); err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *BracketStore) CreateBracket(ctx context.Context, tx *sqlx.Tx, row *bracket.Row) error {
	_, err := tx.NamedExecContext(ctx, createBracketQuery, row)
	return err
}

// UpdateBracketData replaces the payload of an existing row. It returns
// sql.ErrNoRows when the row does not exist in the championship.
func (s *BracketStore) UpdateBracketData(ctx context.Context, tx *sqlx.Tx, row *bracket.Row) error {
	res, err := tx.NamedExecContext(ctx, updateBracketDataQuery, row)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
