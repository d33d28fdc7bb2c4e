package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/alfieapp/quarterly/internal/model"
	"github.com/alfieapp/quarterly/internal/repository"
	"github.com/alfieapp/quarterly/internal/validation"
	"github.com/google/uuid"
)

var (
	ErrOnboardingRequired = errors.New("no quarters exist, onboarding required")
)

type QuarterService struct {
	repo repository.QuarterRepository
}

func NewQuarterService(repo repository.QuarterRepository) *QuarterService {
	return &QuarterService{repo: repo}
}

// Resolve determines the user's current quarter. No quarters at all means
// onboarding; an active quarter is selected as-is; quarters without an
// active flag get the most recently created one promoted and persisted
// (repair of an inconsistent remote state). A failed list is returned to the
// caller unchanged so it is never mistaken for "no quarters".
func (s *QuarterService) Resolve(userID string) (*model.Quarter, error) {
	quarters, err := s.repo.ByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quarters: %w", err)
	}

	if len(quarters) == 0 {
		return nil, ErrOnboardingRequired
	}

	for _, quarter := range quarters {
		if quarter.IsActive {
			return quarter, nil
		}
	}

	// Quarters exist but none is active: promote the most recent one.
	mostRecent := quarters[0]
	err = s.repo.ActivateExclusive(userID, mostRecent.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to activate quarter: %w", err)
	}

	mostRecent.IsActive = true
	slog.Info("promoted most recent quarter to active", "user_id", userID, "quarter_id", mostRecent.ID)
	return mostRecent, nil
}

// Quarters lists the user's quarters, most recently created first.
func (s *QuarterService) Quarters(userID string) ([]*model.Quarter, error) {
	return s.repo.ByUser(userID)
}

// Create adds a new active quarter, deactivating the others.
func (s *QuarterService) Create(userID, name string) (*model.Quarter, error) {
	name = strings.TrimSpace(name)
	err := validation.ValidateQuarterName(name)
	if err != nil {
		return nil, err
	}

	quarter := &model.Quarter{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      name,
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	err = s.repo.CreateActive(quarter)
	if err != nil {
		return nil, fmt.Errorf("failed to create quarter: %w", err)
	}

	return quarter, nil
}

// CreateWithGoals is the onboarding write: a new active quarter plus its
// goals row in a single transaction, so a failure leaves nothing behind.
func (s *QuarterService) CreateWithGoals(userID, name string, meetingGoal int, mmrGoal float64) (*model.Quarter, error) {
	name = strings.TrimSpace(name)
	err := validation.ValidateQuarterName(name)
	if err != nil {
		return nil, err
	}

	err = validation.ValidateGoals(meetingGoal, mmrGoal)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	quarter := &model.Quarter{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      name,
		IsActive:  true,
		CreatedAt: now,
	}
	goals := &model.Goals{
		ID:          uuid.New().String(),
		UserID:      userID,
		QuarterID:   quarter.ID,
		MeetingGoal: meetingGoal,
		MMRGoal:     mmrGoal,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.repo.CreateActiveWithGoals(quarter, goals)
	if err != nil {
		return nil, fmt.Errorf("failed to create quarter with goals: %w", err)
	}

	slog.Info("onboarding quarter created", "user_id", userID, "quarter_id", quarter.ID, "name", name)
	return quarter, nil
}

// Select makes the given quarter the user's active one.
func (s *QuarterService) Select(userID, quarterID string) error {
	err := s.repo.ActivateExclusive(userID, quarterID)
	if err != nil {
		return fmt.Errorf("failed to select quarter: %w", err)
	}
	return nil
}
