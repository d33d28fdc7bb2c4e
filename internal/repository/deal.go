package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/alfieapp/quarterly/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrDealNotFound = errors.New("deal not found")
)

type DealRepository interface {
	Create(deal *model.Deal) error
	ByID(userID, quarterID, dealID string) (*model.Deal, error)
	ByQuarter(userID, quarterID string) ([]*model.Deal, error)
	UpdateValue(userID, quarterID, dealID string, value float64) error
	Delete(userID, quarterID, dealID string) error
}

type dealRepository struct {
	db *sqlx.DB
}

func NewDealRepository(db *sqlx.DB) DealRepository {
	return &dealRepository{db: db}
}

func (r *dealRepository) Create(deal *model.Deal) error {
	query := `INSERT INTO deals (id, user_id, quarter_id, name, value, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(query,
		deal.ID,
		deal.UserID,
		deal.QuarterID,
		deal.Name,
		deal.Value,
		deal.CreatedAt,
		deal.UpdatedAt,
	)

	return err
}

func (r *dealRepository) ByID(userID, quarterID, dealID string) (*model.Deal, error) {
	deal := &model.Deal{}
	query := `SELECT * FROM deals WHERE id = $1 AND user_id = $2 AND quarter_id = $3`

	err := r.db.Get(deal, query, dealID, userID, quarterID)
	if err == sql.ErrNoRows {
		return nil, ErrDealNotFound
	}

	return deal, err
}

// ByQuarter lists all deals for (user, quarter), newest first.
func (r *dealRepository) ByQuarter(userID, quarterID string) ([]*model.Deal, error) {
	var deals []*model.Deal
	query := `SELECT * FROM deals WHERE user_id = $1 AND quarter_id = $2 ORDER BY created_at DESC`

	err := r.db.Select(&deals, query, userID, quarterID)
	if err != nil {
		return nil, err
	}

	return deals, nil
}

func (r *dealRepository) UpdateValue(userID, quarterID, dealID string, value float64) error {
	query := `UPDATE deals SET value = $1, updated_at = $2 WHERE id = $3 AND user_id = $4 AND quarter_id = $5`

	result, err := r.db.Exec(query, value, time.Now(), dealID, userID, quarterID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrDealNotFound
	}

	return nil
}

func (r *dealRepository) Delete(userID, quarterID, dealID string) error {
	query := `DELETE FROM deals WHERE id = $1 AND user_id = $2 AND quarter_id = $3`

	result, err := r.db.Exec(query, dealID, userID, quarterID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrDealNotFound
	}

	return nil
}
