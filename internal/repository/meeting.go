package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/alfieapp/quarterly/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrMeetingNotFound = errors.New("meeting not found")
)

type MeetingRepository interface {
	Create(meeting *model.Meeting) error
	ByID(userID, quarterID, meetingID string) (*model.Meeting, error)
	ByQuarter(userID, quarterID string) ([]*model.Meeting, error)
	Update(meeting *model.Meeting) error
	Delete(userID, quarterID, meetingID string) error
}

type meetingRepository struct {
	db *sqlx.DB
}

func NewMeetingRepository(db *sqlx.DB) MeetingRepository {
	return &meetingRepository{db: db}
}

func (r *meetingRepository) Create(meeting *model.Meeting) error {
	query := `INSERT INTO meetings (id, user_id, quarter_id, contact_name, company_name, meeting_date, outcome, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(query,
		meeting.ID,
		meeting.UserID,
		meeting.QuarterID,
		meeting.ContactName,
		meeting.CompanyName,
		meeting.MeetingDate,
		meeting.Outcome,
		meeting.CreatedAt,
		meeting.UpdatedAt,
	)

	return err
}

func (r *meetingRepository) ByID(userID, quarterID, meetingID string) (*model.Meeting, error) {
	meeting := &model.Meeting{}
	query := `SELECT * FROM meetings WHERE id = $1 AND user_id = $2 AND quarter_id = $3`

	err := r.db.Get(meeting, query, meetingID, userID, quarterID)
	if err == sql.ErrNoRows {
		return nil, ErrMeetingNotFound
	}

	return meeting, err
}

// ByQuarter lists all meetings for (user, quarter) ordered by meeting date
// descending; creation time breaks ties so fresh rows sort first.
func (r *meetingRepository) ByQuarter(userID, quarterID string) ([]*model.Meeting, error) {
	var meetings []*model.Meeting
	query := `SELECT * FROM meetings WHERE user_id = $1 AND quarter_id = $2
	          ORDER BY meeting_date DESC, created_at DESC`

	err := r.db.Select(&meetings, query, userID, quarterID)
	if err != nil {
		return nil, err
	}

	return meetings, nil
}

func (r *meetingRepository) Update(meeting *model.Meeting) error {
	query := `UPDATE meetings
	          SET contact_name = $1, company_name = $2, meeting_date = $3, outcome = $4, updated_at = $5
	          WHERE id = $6 AND user_id = $7 AND quarter_id = $8`

	result, err := r.db.Exec(query,
		meeting.ContactName,
		meeting.CompanyName,
		meeting.MeetingDate,
		meeting.Outcome,
		time.Now(),
		meeting.ID,
		meeting.UserID,
		meeting.QuarterID,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrMeetingNotFound
	}

	return nil
}

func (r *meetingRepository) Delete(userID, quarterID, meetingID string) error {
	query := `DELETE FROM meetings WHERE id = $1 AND user_id = $2 AND quarter_id = $3`

	result, err := r.db.Exec(query, meetingID, userID, quarterID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrMeetingNotFound
	}

	return nil
}
