package service

import (
	"fmt"
	"time"

	"github.com/alfieapp/quarterly/internal/model"
	"github.com/alfieapp/quarterly/internal/repository"
	"github.com/alfieapp/quarterly/internal/validation"
	"github.com/google/uuid"
)

type GoalsService struct {
	repo repository.GoalsRepository
}

func NewGoalsService(repo repository.GoalsRepository) *GoalsService {
	return &GoalsService{repo: repo}
}

// ByQuarter fetches the quarter's goals row. Returns
// repository.ErrGoalsNotFound when the quarter has no goals yet; callers
// treat that as "targets unset", not as a failure.
func (s *GoalsService) ByQuarter(userID, quarterID string) (*model.Goals, error) {
	return s.repo.ByQuarter(userID, quarterID)
}

// Upsert writes both targets for (user, quarter), inserting or updating in
// place, and returns the stored row.
func (s *GoalsService) Upsert(userID, quarterID string, meetingGoal int, mmrGoal float64) (*model.Goals, error) {
	err := validation.ValidateGoals(meetingGoal, mmrGoal)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	goals := &model.Goals{
		ID:          uuid.New().String(),
		UserID:      userID,
		QuarterID:   quarterID,
		MeetingGoal: meetingGoal,
		MMRGoal:     mmrGoal,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.repo.Upsert(goals)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert goals: %w", err)
	}

	// Re-read so the caller sees the canonical row (original id and
	// created_at survive an update).
	return s.repo.ByQuarter(userID, quarterID)
}
