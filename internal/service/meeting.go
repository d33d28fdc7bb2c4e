package service

import (
	"fmt"
	"time"

	"github.com/alfieapp/quarterly/internal/model"
	"github.com/alfieapp/quarterly/internal/repository"
	"github.com/alfieapp/quarterly/internal/validation"
	"github.com/google/uuid"
)

// MeetingInput carries the user-supplied fields for a meeting.
type MeetingInput struct {
	ContactName string
	CompanyName string
	MeetingDate time.Time
	Outcome     string
}

type MeetingService struct {
	repo repository.MeetingRepository
}

func NewMeetingService(repo repository.MeetingRepository) *MeetingService {
	return &MeetingService{repo: repo}
}

// Meetings lists the quarter's meetings ordered by meeting date descending.
func (s *MeetingService) Meetings(userID, quarterID string) ([]*model.Meeting, error) {
	return s.repo.ByQuarter(userID, quarterID)
}

func (s *MeetingService) Create(userID, quarterID string, in MeetingInput) (*model.Meeting, error) {
	err := validation.ValidateMeeting(in.ContactName, in.CompanyName, in.MeetingDate, in.Outcome)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	meeting := &model.Meeting{
		ID:          uuid.New().String(),
		UserID:      userID,
		QuarterID:   quarterID,
		ContactName: in.ContactName,
		CompanyName: in.CompanyName,
		MeetingDate: in.MeetingDate,
		Outcome:     in.Outcome,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.repo.Create(meeting)
	if err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}

	return meeting, nil
}

// UpdateOutcome changes just the outcome of one meeting; this is the only
// field the composed row UI ever edits.
func (s *MeetingService) UpdateOutcome(userID, quarterID, meetingID, outcome string) (*model.Meeting, error) {
	if !model.ValidOutcome(outcome) {
		return nil, fmt.Errorf("invalid outcome %q", outcome)
	}

	meeting, err := s.repo.ByID(userID, quarterID, meetingID)
	if err != nil {
		return nil, err
	}

	meeting.Outcome = outcome
	meeting.UpdatedAt = time.Now()

	err = s.repo.Update(meeting)
	if err != nil {
		return nil, err
	}

	return meeting, nil
}

// Update replaces every editable field of a meeting. Alternate full-record
// path; the dashboard row only exercises UpdateOutcome.
func (s *MeetingService) Update(userID, quarterID, meetingID string, in MeetingInput) (*model.Meeting, error) {
	err := validation.ValidateMeeting(in.ContactName, in.CompanyName, in.MeetingDate, in.Outcome)
	if err != nil {
		return nil, err
	}

	meeting, err := s.repo.ByID(userID, quarterID, meetingID)
	if err != nil {
		return nil, err
	}

	meeting.ContactName = in.ContactName
	meeting.CompanyName = in.CompanyName
	meeting.MeetingDate = in.MeetingDate
	meeting.Outcome = in.Outcome
	meeting.UpdatedAt = time.Now()

	err = s.repo.Update(meeting)
	if err != nil {
		return nil, err
	}

	return meeting, nil
}

func (s *MeetingService) Delete(userID, quarterID, meetingID string) error {
	return s.repo.Delete(userID, quarterID, meetingID)
}
